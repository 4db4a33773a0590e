//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveries_get_test
package deliveries_get

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

type Service interface {
	GetDeliveries(ctx context.Context) ([]entities.Delivery, error)
}
