package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"errpages_api/internal/domain"
	"errpages_api/internal/logger"
	"errpages_api/internal/render"
)

// mockService запоминает запрос и не ждёт.
type mockService struct {
	lastReq domain.TimeoutRequest
	err     error
}

func (m *mockService) ServerError() domain.ErrorResponse {
	return domain.ErrorResponse{StatusCode: http.StatusInternalServerError, Title: "Internal Server Error", Message: "boom"}
}

func (m *mockService) Timeout(_ context.Context, req domain.TimeoutRequest) (domain.ErrorResponse, error) {
	m.lastReq = req
	if m.err != nil {
		return domain.ErrorResponse{}, m.err
	}
	return domain.ErrorResponse{
		StatusCode:   http.StatusGatewayTimeout,
		Title:        "Gateway Timeout",
		Message:      "late",
		DelaySeconds: req.DelaySeconds,
		Delayed:      true,
	}, nil
}

type failingRenderer struct{}

func (failingRenderer) Render(domain.ErrorResponse) ([]byte, error) {
	return nil, errors.New("template exploded")
}

type abandonCounter struct{ n int }

func (a *abandonCounter) ObserveAbandoned() { a.n++ }

func setupRouter(t *testing.T, svc ServiceInterface, r Renderer, obs AbandonObserver) *gin.Engine {
	t.Helper()
	logger.Logger = zaptest.NewLogger(t)
	gin.SetMode(gin.TestMode)

	h := NewErrorPageHandler(svc, r, obs)
	router := gin.New()
	router.GET("/server-error", h.ServerError)
	router.GET("/timeout", h.Timeout)
	return router
}

func newRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	r, err := render.New()
	require.NoError(t, err)
	return r
}

func TestServerErrorHandler(t *testing.T) {
	router := setupRouter(t, &mockService{}, newRenderer(t), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/server-error", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Internal Server Error")
}

func TestTimeoutHandler_QueryNormalization(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"missing", "", 5},
		{"empty", "?timeout=", 5},
		{"non-numeric", "?timeout=abc", 5},
		{"negative", "?timeout=-5", 5},
		{"zero", "?timeout=0", 0},
		{"in range", "?timeout=3", 3},
		{"clamped", "?timeout=1000", 10},
		{"first value wins", "?timeout=2&timeout=9", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			router := setupRouter(t, svc, newRenderer(t), nil)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/timeout"+tt.query, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusGatewayTimeout, w.Code)
			assert.Equal(t, tt.want, svc.lastReq.DelaySeconds)
			assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
			assert.Equal(t, strconv.Itoa(tt.want), w.Header().Get("X-Delay-Seconds"))
			assert.Contains(t, w.Body.String(), "Timeout duration: "+strconv.Itoa(tt.want)+" seconds")
		})
	}
}

func TestTimeoutHandler_ClientGone(t *testing.T) {
	svc := &mockService{err: context.Canceled}
	obs := &abandonCounter{}
	router := setupRouter(t, svc, newRenderer(t), obs)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/timeout?timeout=2", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, statusClientClosedRequest, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, 1, obs.n)
}

func TestHandler_RenderFailure(t *testing.T) {
	router := setupRouter(t, &mockService{}, failingRenderer{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/server-error", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"failed to render page"}`, w.Body.String())
}
