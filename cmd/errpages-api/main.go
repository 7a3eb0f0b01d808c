package main

import (
	"context"
	"log" // Standard log for initial messages
	"os"
	"os/signal"
	"syscall"

	"errpages_api/internal/config"
	"errpages_api/internal/handler"
	"errpages_api/internal/logger"
	"errpages_api/internal/metrics"
	"errpages_api/internal/render"
	"errpages_api/internal/server"
	"errpages_api/internal/service"

	_ "errpages_api/docs" // Swagger docs

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title Error Pages API
// @version 1.0
// @description Static 500 and delayed 504 HTML error pages for timeout and latency testing.

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /

// @schemes http https
func main() {
	appConfig := config.LoadConfig()

	logger.Init(appConfig.IsDevelopment())
	defer func() {
		if err := logger.Logger.Sync(); err != nil {
			log.Printf("FATAL: Failed to sync zap logger: %v\n", err)
		}
	}()
	logger.Logger.Info("Application starting...",
		zap.String("version", "1.0"),
		zap.String("environment", appConfig.AppEnv),
	)
	if !appConfig.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	renderer, err := render.New()
	if err != nil {
		logger.Logger.Fatal("Failed to load page template", zap.Error(err))
	}

	m := metrics.New()
	svc := service.NewPageService(service.TimerWait, m)
	pages := handler.NewErrorPageHandler(svc, renderer, m)
	router := server.NewRouter(pages, server.Options{
		AllowedOrigins: appConfig.AllowedOrigins,
		Metrics:        m,
		Probe:          renderer,
	})

	if appConfig.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		logger.Logger.Info("Swagger UI available at /swagger/index.html")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewHTTPServer(appConfig, router)
	if err := server.Run(ctx, srv, appConfig.HTTP.ShutdownTimeout); err != nil {
		logger.Logger.Fatal("HTTP server failed",
			zap.String("address", srv.Addr),
			zap.Error(err),
		)
	}
	logger.Logger.Info("Server stopped")
}
