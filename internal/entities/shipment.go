package entities

import (
	"time"
)

type Shipment struct {
	ID                    int64
	TrackingNumber        string
	Status                ShipmentStatusType
	ServiceType           ShipmentServiceType
	WeightKg              float64
	DeclaredValue         float64
	OriginWarehouseID     int64
	DestinationAddress    string
	EstimatedDeliveryDate *time.Time
	ActualDeliveryDate    *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type ShipmentStatusType string

const (
	ShipmentPending        ShipmentStatusType = "pending"
	ShipmentPickedUp       ShipmentStatusType = "picked_up"
	ShipmentInTransit      ShipmentStatusType = "in_transit"
	ShipmentOutForDelivery ShipmentStatusType = "out_for_delivery"
	ShipmentDelivered      ShipmentStatusType = "delivered"
	ShipmentException      ShipmentStatusType = "exception"
	ShipmentCancelled      ShipmentStatusType = "cancelled"
)

func (s ShipmentStatusType) String() string {
	return string(s)
}

// IsTerminal сообщает, есть ли у статуса исходящие переходы.
func (s ShipmentStatusType) IsTerminal() bool {
	return s == ShipmentDelivered || s == ShipmentCancelled
}

type ShipmentServiceType string

const (
	ServiceStandard  ShipmentServiceType = "standard"
	ServiceExpress   ShipmentServiceType = "express"
	ServiceOvernight ShipmentServiceType = "overnight"
)

const DefaultServiceType = ServiceStandard

func (t ShipmentServiceType) String() string {
	return string(t)
}

type ShipmentModify struct {
	ID                    *int64
	TrackingNumber        *string
	Status                *ShipmentStatusType
	ServiceType           *ShipmentServiceType
	WeightKg              *float64
	DeclaredValue         *float64
	OriginWarehouseID     *int64
	DestinationAddress    *string
	EstimatedDeliveryDate *time.Time
	ActualDeliveryDate    *time.Time
}

// TrackingEvent - одна запись неизменяемой истории статусов отправления.
type TrackingEvent struct {
	ID         int64
	ShipmentID int64
	Status     ShipmentStatusType
	Location   string
	Notes      string
	Actor      string
	OccurredAt time.Time
}

// TrackingUpdate - входные данные операции смены статуса.
type TrackingUpdate struct {
	Status   ShipmentStatusType
	Location string
	Notes    string
	Actor    string
}
