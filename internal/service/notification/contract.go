//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

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

type Publisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}

type Pool interface {
	Submit(task func(ctx context.Context)) bool
}
