//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_stats_test
package delivery_stats

import (
	"context"

	"delivery-service/internal/entities"
	"delivery-service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Repository interface {
	CountByStatus(ctx context.Context) (map[entities.DeliveryStatusType]int64, error)
}
