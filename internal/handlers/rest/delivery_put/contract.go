//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_put_test
package delivery_put

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
	UpdateDelivery(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error)
}
