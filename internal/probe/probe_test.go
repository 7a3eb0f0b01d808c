package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"errpages_api/internal/logger"
)

func delayedServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("timeout"))
		select {
		case <-r.Context().Done():
			return
		case <-time.After(100 * time.Millisecond):
		}
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRun_ConcurrentRequestsOverlap(t *testing.T) {
	logger.Logger = zaptest.NewLogger(t)
	srv := delayedServer(t, http.StatusGatewayTimeout)

	sum, err := Run(context.Background(), Options{
		URL:            srv.URL + "/timeout",
		DelaySeconds:   1,
		Concurrency:    8,
		ExpectedStatus: http.StatusGatewayTimeout,
	})
	require.NoError(t, err)

	assert.Len(t, sum.Results, 8)
	assert.GreaterOrEqual(t, sum.Min, 100*time.Millisecond)
	assert.GreaterOrEqual(t, sum.Max, sum.Min)
	assert.False(t, sum.Serialized(100*time.Millisecond))
}

func TestRun_UnexpectedStatus(t *testing.T) {
	logger.Logger = zaptest.NewLogger(t)
	srv := delayedServer(t, http.StatusOK)

	_, err := Run(context.Background(), Options{
		URL:            srv.URL,
		DelaySeconds:   1,
		Concurrency:    2,
		ExpectedStatus: http.StatusGatewayTimeout,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 200")
}

func TestRun_InvalidOptions(t *testing.T) {
	_, err := Run(context.Background(), Options{URL: "http://localhost", Concurrency: 0})
	assert.Error(t, err)
}

func TestSummary_Serialized(t *testing.T) {
	results := make([]Result, 3)
	assert.True(t, Summary{Results: results, Wall: 3 * time.Second}.Serialized(time.Second))
	assert.False(t, Summary{Results: results, Wall: 1100 * time.Millisecond}.Serialized(time.Second))
	assert.False(t, Summary{Results: results[:1], Wall: time.Hour}.Serialized(time.Second))
}
