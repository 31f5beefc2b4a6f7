package geo

import (
	"errors"
	"math"
)

var (
	ErrInvalidLatitude  = errors.New("latitude out of range [-90, 90]")
	ErrInvalidLongitude = errors.New("longitude out of range [-180, 180]")
)

const earthRadiusKm = 6371.0

// Distance возвращает расстояние большого круга (haversine) в километрах.
// Симметрична и равна нулю для совпадающих точек.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func ValidateCoordinates(lat, lon float64) error {
	if lat < -90 || lat > 90 || math.IsNaN(lat) {
		return ErrInvalidLatitude
	}
	if lon < -180 || lon > 180 || math.IsNaN(lon) {
		return ErrInvalidLongitude
	}
	return nil
}
