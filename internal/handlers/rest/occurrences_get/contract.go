//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=occurrences_get_test
package occurrences_get

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
	GetOccurrences(ctx context.Context, deliveryID int64) ([]entities.Occurrence, error)
}
