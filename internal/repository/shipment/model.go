package shipment

import "time"

type ShipmentDB struct {
	ID                    int64
	TrackingNumber        string
	Status                string
	ServiceType           string
	WeightKg              float64
	DeclaredValue         float64
	OriginWarehouseID     int64
	DestinationAddress    string
	EstimatedDeliveryDate *time.Time
	ActualDeliveryDate    *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type ShipmentModifyDB struct {
	ID                    *int64
	TrackingNumber        *string
	Status                *string
	ServiceType           *string
	WeightKg              *float64
	DeclaredValue         *float64
	OriginWarehouseID     *int64
	DestinationAddress    *string
	EstimatedDeliveryDate *time.Time
	ActualDeliveryDate    *time.Time
}

type TrackingEventDB struct {
	ID         int64
	ShipmentID int64
	Status     string
	Location   string
	Notes      string
	Actor      string
	OccurredAt time.Time
}
