package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"errpages_api/internal/domain"
	"errpages_api/internal/logger"
	"errpages_api/internal/render"
)

// statusClientClosedRequest – нестандартный код (как у nginx) для запросов, брошенных клиентом.
const statusClientClosedRequest = 499

// ServiceInterface описывает набор методов, который нужен handler-у.
type ServiceInterface interface {
	ServerError() domain.ErrorResponse
	Timeout(ctx context.Context, req domain.TimeoutRequest) (domain.ErrorResponse, error)
}

// Renderer превращает ErrorResponse в готовый HTML.
type Renderer interface {
	Render(page domain.ErrorResponse) ([]byte, error)
}

// AbandonObserver считает запросы, брошенные клиентом во время ожидания.
type AbandonObserver interface {
	ObserveAbandoned()
}

// ErrorPageHandler отдаёт HTML-страницы 500 и 504.
type ErrorPageHandler struct {
	svc      ServiceInterface
	renderer Renderer
	observer AbandonObserver
}

// NewErrorPageHandler принимает любой объект, реализующий ServiceInterface. observer может быть nil.
func NewErrorPageHandler(svc ServiceInterface, renderer Renderer, observer AbandonObserver) *ErrorPageHandler {
	return &ErrorPageHandler{svc: svc, renderer: renderer, observer: observer}
}

// ServerError godoc
// @Summary      Static 500 page
// @Description  Always answers 500 Internal Server Error with a fixed HTML body, without delay.
// @Tags         pages
// @Produce      html
// @Success      500  {string}  string  "HTML error page"
// @Router       /server-error [get]
func (h *ErrorPageHandler) ServerError(c *gin.Context) {
	h.write(c, h.svc.ServerError())
}

// Timeout godoc
// @Summary      Delayed 504 page
// @Description  Waits for `timeout` seconds (default 5, clamped to 0..10) and answers 504 Gateway Timeout.
// @Description  Invalid or negative values fall back to the default.
// @Tags         pages
// @Produce      html
// @Param        timeout  query     int     false  "Delay in seconds"  default(5)  minimum(0)  maximum(10)
// @Success      504      {string}  string  "HTML error page"
// @Router       /timeout [get]
func (h *ErrorPageHandler) Timeout(c *gin.Context) {
	raw, present := c.GetQuery("timeout")
	req := domain.NewTimeoutRequest(raw, present)

	page, err := h.svc.Timeout(c.Request.Context(), req)
	if err != nil {
		logger.Logger.Debug("Client went away during delay",
			zap.Int("delaySeconds", req.DelaySeconds),
			zap.Error(err),
		)
		if h.observer != nil {
			h.observer.ObserveAbandoned()
		}
		c.AbortWithStatus(statusClientClosedRequest)
		return
	}

	c.Header("X-Delay-Seconds", strconv.Itoa(page.DelaySeconds))
	h.write(c, page)
}

// write рендерит страницу целиком и только потом отдаёт её клиенту.
func (h *ErrorPageHandler) write(c *gin.Context, page domain.ErrorResponse) {
	body, err := h.renderer.Render(page)
	if err != nil {
		logger.Logger.Error("Failed to render error page", zap.Int("status", page.StatusCode), zap.Error(err))
		c.JSON(http.StatusInternalServerError, domain.APIError{Error: "failed to render page"})
		return
	}
	c.Data(page.StatusCode, render.MIMEHTML, body)
}
