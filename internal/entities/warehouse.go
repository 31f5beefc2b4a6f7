package entities

import "time"

// Warehouse - депо, из которого стартует маршрут водителя.
type Warehouse struct {
	ID        int64
	Name      string
	Latitude  float64
	Longitude float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Driver struct {
	ID            int64
	Name          string
	Phone         string
	LicenseNumber string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
