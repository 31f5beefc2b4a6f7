package entities

import "time"

// Route - план стопов одного водителя на одну дату доставки.
// Стопы принадлежат маршруту эксклюзивно и удаляются вместе с ним.
type Route struct {
	ID                     int64
	Status                 RouteStatusType
	DriverID               int64
	WarehouseID            int64
	DeliveryDate           time.Time
	PlannedStartTime       time.Time
	StartedAt              *time.Time
	CompletedAt            *time.Time
	TotalStops             int
	TotalWeightKg          float64
	EstimatedDurationHours float64
	Stops                  []Stop
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

type RouteStatusType string

const (
	RoutePlanned    RouteStatusType = "planned"
	RouteInProgress RouteStatusType = "in_progress"
	RouteCompleted  RouteStatusType = "completed"
)

func (s RouteStatusType) String() string {
	return string(s)
}

type RouteModify struct {
	ID               *int64
	Status           *RouteStatusType
	DriverID         *int64
	WarehouseID      *int64
	DeliveryDate     *time.Time
	PlannedStartTime *time.Time
	StartedAt        *time.Time
	CompletedAt      *time.Time
}

type Stop struct {
	ID               int64
	RouteID          int64
	ShipmentID       *int64
	StopOrder        int
	Latitude         float64
	Longitude        float64
	Type             StopKindType
	Priority         StopPriorityType
	PlannedArrival   *time.Time
	PlannedDeparture *time.Time
	Status           StopStatusType
}

type StopKindType string

const (
	StopPickup   StopKindType = "pickup"
	StopDelivery StopKindType = "delivery"
)

func (t StopKindType) String() string {
	return string(t)
}

type StopPriorityType string

const (
	PriorityLow    StopPriorityType = "low"
	PriorityMedium StopPriorityType = "medium"
	PriorityHigh   StopPriorityType = "high"
	PriorityUrgent StopPriorityType = "urgent"
)

const DefaultStopPriority = PriorityMedium

func (p StopPriorityType) String() string {
	return string(p)
}

// IsExpedited выделяет стопы, которые обслуживаются раньше любых прочих.
func (p StopPriorityType) IsExpedited() bool {
	return p == PriorityHigh || p == PriorityUrgent
}

type StopStatusType string

const (
	StopPending   StopStatusType = "pending"
	StopArrived   StopStatusType = "arrived"
	StopCompleted StopStatusType = "completed"
	StopFailed    StopStatusType = "failed"
)

func (s StopStatusType) String() string {
	return string(s)
}

func (s StopStatusType) IsTerminal() bool {
	return s == StopCompleted || s == StopFailed
}

type StopModify struct {
	ID         *int64
	RouteID    *int64
	ShipmentID *int64
	StopOrder  *int
	Latitude   *float64
	Longitude  *float64
	Type       *StopKindType
	Priority   *StopPriorityType
	Status     *StopStatusType
}
