// Package probe fires concurrent requests at a delayed endpoint and measures
// whether the delays overlap.
package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"errpages_api/internal/logger"
)

// Result is the outcome of a single request.
type Result struct {
	Status  int
	Latency time.Duration
}

// Summary aggregates one probe run.
type Summary struct {
	Results []Result
	Min     time.Duration
	Max     time.Duration
	Wall    time.Duration
}

// Serialized reports whether the run took at least as long as all delays
// placed end to end, which means the server handled them one at a time.
func (s Summary) Serialized(delay time.Duration) bool {
	n := len(s.Results)
	if n < 2 || delay <= 0 {
		return false
	}
	return s.Wall >= time.Duration(n)*delay
}

type Options struct {
	URL            string
	DelaySeconds   int
	Concurrency    int
	ExpectedStatus int
	Client         *http.Client
}

// Run issues Concurrency GET requests in parallel. It fails on the first
// transport error or unexpected status.
func Run(ctx context.Context, opts Options) (Summary, error) {
	if opts.Concurrency < 1 {
		return Summary{}, fmt.Errorf("concurrency must be positive, got %d", opts.Concurrency)
	}
	target, err := url.Parse(opts.URL)
	if err != nil {
		return Summary{}, fmt.Errorf("parse url %q: %w", opts.URL, err)
	}
	q := target.Query()
	q.Set("timeout", strconv.Itoa(opts.DelaySeconds))
	target.RawQuery = q.Encode()

	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}

	results := make([]Result, opts.Concurrency)
	g, gctx := errgroup.WithContext(ctx)
	start := time.Now()
	for i := range results {
		i := i
		g.Go(func() error {
			res, err := fetch(gctx, client, target.String())
			if err != nil {
				return fmt.Errorf("request %d: %w", i, err)
			}
			if opts.ExpectedStatus != 0 && res.Status != opts.ExpectedStatus {
				return fmt.Errorf("request %d: unexpected status %d, want %d", i, res.Status, opts.ExpectedStatus)
			}
			logger.Logger.Info("Probe response",
				zap.Int("request", i),
				zap.Int("status", res.Status),
				zap.Duration("latency", res.Latency),
			)
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	sum := Summary{Results: results, Wall: time.Since(start), Min: results[0].Latency}
	for _, r := range results {
		sum.Min = min(sum.Min, r.Latency)
		sum.Max = max(sum.Max, r.Latency)
	}
	return sum, nil
}

func fetch(ctx context.Context, client *http.Client, target string) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Result{}, err
	}
	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return Result{}, fmt.Errorf("read body: %w", err)
	}
	return Result{Status: resp.StatusCode, Latency: time.Since(start)}, nil
}
