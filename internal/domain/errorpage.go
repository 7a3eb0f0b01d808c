package domain

import (
	"errors"
	"strconv"
	"strings"
)

const (
	// DefaultDelaySeconds применяется, если timeout не передан, не число или отрицательный.
	DefaultDelaySeconds = 5
	// MaxDelaySeconds – потолок задержки, защищает сервер от долгих запросов.
	MaxDelaySeconds = 10
)

// ErrorResponse – данные одной HTML-страницы ошибки.
// Создаётся на каждый запрос и нигде не хранится.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode" example:"504"`
	Title      string `json:"title" example:"Gateway Timeout"`
	Message    string `json:"message" example:"The server timed out while processing your request."`

	// DelaySeconds – фактически применённая задержка, всегда в [0, MaxDelaySeconds].
	DelaySeconds int `json:"delaySeconds" example:"5"`

	// Delayed включает строку "Timeout duration" на странице.
	Delayed bool `json:"delayed"`
}

// TimeoutRequest – разобранный и нормализованный запрос к /timeout.
type TimeoutRequest struct {
	DelaySeconds int
}

// NewTimeoutRequest нормализует значение параметра timeout.
// Отсутствующее, нечисловое или отрицательное значение даёт DefaultDelaySeconds,
// всё что больше MaxDelaySeconds урезается до MaxDelaySeconds. Ошибок не бывает.
func NewTimeoutRequest(raw string, present bool) TimeoutRequest {
	return TimeoutRequest{DelaySeconds: ClampDelay(raw, present)}
}

// ClampDelay возвращает задержку в секундах для сырого значения timeout.
func ClampDelay(raw string, present bool) int {
	if !present {
		return DefaultDelaySeconds
	}
	raw = strings.TrimSpace(raw)
	n, err := strconv.Atoi(raw)
	if err != nil {
		// Число за пределами int: положительное урезаем до потолка.
		if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-") {
			return MaxDelaySeconds
		}
		return DefaultDelaySeconds
	}
	switch {
	case n < 0:
		return DefaultDelaySeconds
	case n > MaxDelaySeconds:
		return MaxDelaySeconds
	}
	return n
}
