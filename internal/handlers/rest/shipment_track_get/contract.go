//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_track_get_test
package shipment_track_get

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
	GetTrackingHistory(ctx context.Context, trackingNumber string) ([]entities.TrackingEvent, error)
}
