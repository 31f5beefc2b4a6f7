package route

import "time"

type RouteDB struct {
	ID               int64
	Status           string
	DriverID         int64
	WarehouseID      int64
	DeliveryDate     time.Time
	PlannedStartTime time.Time
	StartedAt        *time.Time
	CompletedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type RouteModifyDB struct {
	ID               *int64
	Status           *string
	DriverID         *int64
	WarehouseID      *int64
	DeliveryDate     *time.Time
	PlannedStartTime *time.Time
	StartedAt        *time.Time
	CompletedAt      *time.Time
}

type StopDB struct {
	ID               int64
	RouteID          int64
	ShipmentID       *int64
	StopOrder        int
	Latitude         float64
	Longitude        float64
	StopType         string
	Priority         string
	PlannedArrival   *time.Time
	PlannedDeparture *time.Time
	Status           string
}
