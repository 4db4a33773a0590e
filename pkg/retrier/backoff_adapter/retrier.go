package backoff_adapter

import (
	"context"

	"delivery-service/pkg/retrier"

	"github.com/cenkalti/backoff/v4"
)

// Retrier реализует retrier.Retrier поверх экспоненциального backoff.
type Retrier struct {
	config retrier.Config
}

func New(config retrier.Config) *Retrier {
	return &Retrier{config: config}
}

// ExecuteWithContext повторяет fn, пока она не вернет nil, постоянную ошибку
// или пока не истечет ctx либо лимиты из конфигурации.
func (r *Retrier) ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error {
	var policy backoff.BackOff = backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(r.config.InitialInterval),
		backoff.WithMaxInterval(r.config.MaxInterval),
		backoff.WithMaxElapsedTime(r.config.MaxElapsedTime),
		backoff.WithRandomizationFactor(r.config.Randomization),
		backoff.WithMultiplier(r.config.Multiplier),
	)
	if r.config.MaxRetries > 0 {
		policy = backoff.WithMaxRetries(policy, r.config.MaxRetries)
	}

	operation := func() error {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if r.config.ShouldRetry != nil && !r.config.ShouldRetry(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	var notify backoff.Notify
	if r.config.Notify != nil {
		notify = backoff.Notify(r.config.Notify)
	}

	return backoff.RetryNotify(operation, backoff.WithContext(policy, ctx), notify)
}
