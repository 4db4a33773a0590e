//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_email_send_test
package delivery_email_send

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
	SendDeliveryEmail(ctx context.Context, email entities.DeliveryEmail) (string, error)
}
