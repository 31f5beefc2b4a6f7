//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"
	"time"

	"github.com/shauritanga/rtexpress-sub000/internal/entities"
	"github.com/shauritanga/rtexpress-sub000/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error)
	Update(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error)
	Delete(ctx context.Context, id int64) error

	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Shipment, error)
	ListOverdue(ctx context.Context, asOf time.Time) ([]entities.Shipment, error)

	AppendTrackingEvent(ctx context.Context, event entities.TrackingEvent) (*entities.TrackingEvent, error)
	ListTrackingEvents(ctx context.Context, shipmentID int64) ([]entities.TrackingEvent, error)
}

type Notifier interface {
	StatusChanged(ctx context.Context, event entities.StatusChangedEvent) error
}

type TrackingNumberFactory interface {
	Generate() string
}

type Clock interface {
	Now() time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
