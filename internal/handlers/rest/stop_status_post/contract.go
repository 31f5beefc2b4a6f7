//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stop_status_post_test
package stop_status_post

import (
	"context"

	"github.com/shauritanga/rtexpress-sub000/internal/entities"
	"github.com/shauritanga/rtexpress-sub000/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateStopStatus(ctx context.Context, routeID, stopID int64, status entities.StopStatusType) (*entities.Stop, error)
}
