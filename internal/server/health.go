package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"errpages_api/internal/domain"
	"errpages_api/internal/handler"
	"errpages_api/internal/logger"
)

// probePage рендерится при каждой проверке готовности.
var probePage = domain.ErrorResponse{
	StatusCode: http.StatusServiceUnavailable,
	Title:      "Readiness Probe",
	Message:    "probe",
}

// HealthLiveness godoc
// @Summary      Liveness probe for the service
// @Description  Indicates if the application process is running and responsive.
// @Tags         health
// @Produce      json
// @Success      200  {object}  domain.HealthResponse  "Service is live."
// @Router       /healthz [get]
func HealthLiveness(c *gin.Context) {
	c.JSON(http.StatusOK, domain.HealthResponse{Status: "ok"})
}

// HealthReadiness godoc
// @Summary      Readiness probe for the service
// @Description  Indicates if the page template is loaded and renders.
// @Tags         health
// @Produce      json
// @Success      200  {object}  domain.ReadinessResponse "Service is ready to handle requests."
// @Failure      503  {object}  domain.ReadinessResponse "Page template is missing or fails to render."
// @Router       /readyz [get]
func HealthReadiness(probe handler.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if probe == nil {
			c.JSON(http.StatusServiceUnavailable, domain.ReadinessResponse{
				Status: "not ready",
				Error:  "page renderer is not configured",
			})
			return
		}
		if _, err := probe.Render(probePage); err != nil {
			logger.Logger.Warn("Readiness probe failed: page does not render.", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, domain.ReadinessResponse{
				Status: "not ready",
				Error:  "page template failed to render: " + err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, domain.ReadinessResponse{Status: "ready"})
	}
}
