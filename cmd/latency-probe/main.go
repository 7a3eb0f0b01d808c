// latency-probe checks that concurrent delayed requests overlap instead of queueing.
//
// Usage: latency-probe -url http://localhost:8080/timeout -timeout 10 -n 10
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"errpages_api/internal/logger"
	"errpages_api/internal/probe"
)

func main() {
	target := flag.String("url", "http://localhost:8080/timeout", "delayed endpoint")
	delay := flag.Int("timeout", 10, "delay in seconds passed as ?timeout=")
	n := flag.Int("n", 10, "number of concurrent requests")
	flag.Parse()

	logger.Init(true)
	defer func() { _ = logger.Logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sum, err := probe.Run(ctx, probe.Options{
		URL:            *target,
		DelaySeconds:   *delay,
		Concurrency:    *n,
		ExpectedStatus: http.StatusGatewayTimeout,
	})
	if err != nil {
		logger.Logger.Fatal("Probe failed", zap.Error(err))
	}

	logger.Logger.Info("Probe finished",
		zap.Int("requests", len(sum.Results)),
		zap.Duration("min", sum.Min),
		zap.Duration("max", sum.Max),
		zap.Duration("wall", sum.Wall),
	)
	if sum.Serialized(time.Duration(*delay) * time.Second) {
		logger.Logger.Fatal("Delays were served one after another", zap.Duration("wall", sum.Wall))
	}
}
