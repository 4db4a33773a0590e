package metrics

import "delivery-service/pkg/logger"

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
