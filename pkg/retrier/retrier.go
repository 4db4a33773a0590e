package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

// ShouldRetryFunc решает, стоит ли повторять операцию после ошибки err.
type ShouldRetryFunc func(err error) bool

// NotifyFunc вызывается перед каждой паузой между попытками.
type NotifyFunc func(err error, wait time.Duration)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// MaxRetries ограничивает число повторов, 0 - без ограничения.
	MaxRetries uint64

	// nil: повторяются все ошибки
	ShouldRetry ShouldRetryFunc

	Notify NotifyFunc
}
