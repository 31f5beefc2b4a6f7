//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_delete_test
package route_delete

import (
	"context"

	"github.com/shauritanga/rtexpress-sub000/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteRoute(ctx context.Context, routeID int64) error
}
