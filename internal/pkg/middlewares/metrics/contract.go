package metrics

import "github.com/shauritanga/rtexpress-sub000/pkg/logger"

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
