package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"errpages_api/internal/handler"
	"errpages_api/internal/logger"
	"errpages_api/internal/metrics"
)

// Options – зависимости роутера помимо handler-а страниц.
type Options struct {
	AllowedOrigins []string
	Metrics        *metrics.Metrics // nil отключает /metrics
	Probe          handler.Renderer // используется /readyz
}

// NewRouter собирает gin.Engine со всеми маршрутами сервиса.
func NewRouter(pages *handler.ErrorPageHandler, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ZapLogger())
	if opts.Metrics != nil {
		r.Use(Instrument(opts.Metrics))
		r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}
	// CORS после Instrument: отказы 403 и preflight тоже попадают в метрики.
	r.Use(CORS(opts.AllowedOrigins))

	// Liveness and Readiness
	r.GET("/healthz", HealthLiveness)
	r.GET("/readyz", HealthReadiness(opts.Probe))

	// Страницы ошибок
	r.GET("/server-error", pages.ServerError)
	r.GET("/timeout", pages.Timeout)

	return r
}

// ZapLogger - middleware для логирования запросов через zap.
func ZapLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		logger.Logger.Info("Incoming request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
		)
		c.Next()
		logger.Logger.Info("Request handled",
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

// Instrument - middleware для Prometheus-метрик по маршрутам.
func Instrument(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		start := time.Now()
		m.RequestStarted()
		c.Next()
		m.RequestFinished(route, c.Writer.Status(), time.Since(start).Seconds())
	}
}

// CORS разрешает кросс-доменные GET-запросы. Пустой список или "*" – любые origin.
// Запрос с Origin не из списка отклоняется с 403 до вызова handler-а.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"X-Delay-Seconds"},
		MaxAge:        12 * time.Hour,
	}
	if len(allowedOrigins) == 0 || contains(allowedOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	return cors.New(cfg)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
