//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_get_test
package delivery_get

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
	GetDelivery(ctx context.Context, id int64) (*entities.Delivery, error)
}
