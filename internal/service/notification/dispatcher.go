// Package notification передает письма о смене статуса доставки в Kafka.
//
// Send только ставит задачу в пул и сразу возвращает управление. Ошибки
// публикации логируются и считаются в метриках, вызывающему они не видны.
package notification

import (
	"context"
	"encoding/json"
	"time"

	"delivery-service/internal/entities"
	"delivery-service/pkg/logger"
	retrierconfig "delivery-service/pkg/retrier"
	"delivery-service/pkg/retrier/backoff_adapter"
)

const (
	resultPublished = "published"
	resultDropped   = "dropped"
	resultFailed    = "failed"
)

type Config struct {
	PublishTimeout time.Duration
	Retry          retrierconfig.Config
}

// DefaultRetry ретраит публикацию в пределах нескольких секунд.
func DefaultRetry() retrierconfig.Config {
	return retrierconfig.Config{
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     time.Second,
		MaxElapsedTime:  5 * time.Second,
		Randomization:   0.5,
		Multiplier:      2,
	}
}

type Dispatcher struct {
	log       handlerLogger
	publisher Publisher
	pool      Pool
	retrier   *backoff_adapter.Retrier
	timeout   time.Duration
}

func New(log handlerLogger, publisher Publisher, pool Pool, cfg Config) *Dispatcher {
	return &Dispatcher{
		log:       log.With(logger.NewField("component", "notification")),
		publisher: publisher,
		pool:      pool,
		retrier:   backoff_adapter.New(cfg.Retry),
		timeout:   cfg.PublishTimeout,
	}
}

// Send не ждет публикации. Контекст запроса не используется: после ответа
// клиенту он отменяется, а письмо все равно должно уйти.
func (d *Dispatcher) Send(_ context.Context, email entities.DeliveryEmail) {
	emailLog := d.log.With(
		logger.NewField("delivery_id", email.DeliveryID),
		logger.NewField("subject", email.Subject),
	)

	accepted := d.pool.Submit(func(ctx context.Context) {
		d.publish(ctx, emailLog, email)
	})
	if !accepted {
		NotificationsTotal.WithLabelValues(resultDropped).Inc()
		emailLog.Warn("notification queue is full, email dropped")
	}
}

func (d *Dispatcher) publish(ctx context.Context, log logger.Logger, email entities.DeliveryEmail) {
	payload, err := json.Marshal(fromDomain(email))
	if err != nil {
		NotificationsTotal.WithLabelValues(resultFailed).Inc()
		log.With(logger.NewField("error", err)).Error("encode notification")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	var attempt uint64
	err = d.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return d.publisher.Publish(ctx, email.ClientEmail, payload)
	})
	if err != nil {
		NotificationsTotal.WithLabelValues(resultFailed).Inc()
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("publish notification failed")
		return
	}

	NotificationsTotal.WithLabelValues(resultPublished).Inc()
	log.With(logger.NewField("attempts", attempt)).Info("notification published")
}
