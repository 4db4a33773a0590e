package delivery_stats

import (
	"context"
	"fmt"
	"time"

	"delivery-service/pkg/logger"
)

// DeliveryStats периодически публикует число доставок по статусам в gauge.
type DeliveryStats struct {
	log        handlerLogger
	repository Repository
	interval   time.Duration
}

func NewDeliveryStats(log handlerLogger, repository Repository, interval time.Duration) *DeliveryStats {
	return &DeliveryStats{
		log:        log,
		repository: repository,
		interval:   interval,
	}
}

func (d *DeliveryStats) TTL() time.Duration {
	return d.interval
}

func (d *DeliveryStats) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	counts, err := d.repository.CountByStatus(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("delivery stats: %w", err)
	}

	fields := make([]logger.Field, 0, len(counts))
	for status, count := range counts {
		DeliveriesByStatus.WithLabelValues(status.String()).Set(float64(count))
		fields = append(fields, logger.NewField(status.String(), count))
	}

	d.log.With(fields...).Info("delivery stats")

	return nil
}

func (d *DeliveryStats) Info() string {
	return "delivery stats"
}
