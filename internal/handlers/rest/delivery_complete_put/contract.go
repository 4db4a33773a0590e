//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_complete_put_test
package delivery_complete_put

import (
	"context"

	"delivery-service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Complete(ctx context.Context, deliveryID int64) error
}
