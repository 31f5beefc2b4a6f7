//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_test
package route

import (
	"context"
	"time"

	"github.com/shauritanga/rtexpress-sub000/internal/entities"
	"github.com/shauritanga/rtexpress-sub000/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, routeModify entities.RouteModify, stops []entities.Stop) (*entities.Route, error)
	Update(ctx context.Context, routeModify entities.RouteModify) (*entities.Route, error)
	Delete(ctx context.Context, id int64) error

	// GetByID возвращает маршрут со стопами, упорядоченными по stop_order.
	GetByID(ctx context.Context, id int64) (*entities.Route, error)

	// UpdateStops перезаписывает порядок и плановые времена всего набора
	// стопов маршрута одной операцией.
	UpdateStops(ctx context.Context, routeID int64, stops []entities.Stop) error
	UpdateStopStatus(ctx context.Context, routeID, stopID int64, status entities.StopStatusType) (*entities.Stop, error)

	// DriverHasActiveRoute - производная доступность водителя:
	// отдельного мутируемого флага не существует.
	DriverHasActiveRoute(ctx context.Context, driverID int64) (bool, error)

	SumShipmentWeights(ctx context.Context, shipmentIDs []int64) (float64, error)
}

type WarehouseRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Warehouse, error)
}

type ScheduleFactory interface {
	PlannedArrival(position int, routeStart time.Time) time.Time
	PlannedDeparture(position int, routeStart time.Time) time.Time
	EstimatedDurationHours(stopCount int) float64
}

type Notifier interface {
	StatusChanged(ctx context.Context, event entities.StatusChangedEvent) error
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
