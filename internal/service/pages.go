package service

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"errpages_api/internal/domain"
	"errpages_api/internal/logger"
)

const (
	serverErrorTitle   = "Internal Server Error"
	serverErrorMessage = "The server encountered an internal error and was unable to complete your request."
	timeoutTitle       = "Gateway Timeout"
	timeoutMessage     = "The server timed out while processing your request."
)

// Waiter приостанавливает текущий запрос на d или до отмены ctx.
type Waiter func(ctx context.Context, d time.Duration) error

// DelayObserver получает фактически применённую задержку (метрики).
type DelayObserver interface {
	ObserveDelay(seconds int)
}

// TimerWait – рабочая реализация Waiter. Ждёт только текущая горутина,
// остальные запросы обслуживаются параллельно.
func TimerWait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// PageService собирает страницы ошибок.
type PageService struct {
	wait     Waiter
	observer DelayObserver
}

// NewPageService создаёт сервис. wait == nil означает TimerWait, observer может быть nil.
func NewPageService(wait Waiter, observer DelayObserver) *PageService {
	if wait == nil {
		wait = TimerWait
	}
	return &PageService{wait: wait, observer: observer}
}

// ServerError возвращает статичную страницу 500 без задержки.
func (s *PageService) ServerError() domain.ErrorResponse {
	return domain.ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Title:      serverErrorTitle,
		Message:    serverErrorMessage,
	}
}

// Timeout ждёт req.DelaySeconds секунд и возвращает страницу 504.
// Если ctx завершился раньше (клиент ушёл), возвращается ошибка контекста.
func (s *PageService) Timeout(ctx context.Context, req domain.TimeoutRequest) (domain.ErrorResponse, error) {
	delay := req.DelaySeconds
	if s.observer != nil {
		s.observer.ObserveDelay(delay)
	}

	logger.Logger.Debug("Suspending request", zap.Int("delaySeconds", delay))
	if err := s.wait(ctx, time.Duration(delay)*time.Second); err != nil {
		return domain.ErrorResponse{}, err
	}

	return domain.ErrorResponse{
		StatusCode:   http.StatusGatewayTimeout,
		Title:        timeoutTitle,
		Message:      timeoutMessage,
		DelaySeconds: delay,
		Delayed:      true,
	}, nil
}
