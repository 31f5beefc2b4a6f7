package route

import (
	"github.com/shauritanga/rtexpress-sub000/internal/entities"
	"github.com/shauritanga/rtexpress-sub000/internal/pkg/geo"
)

func validateStops(stops []entities.Stop) error {
	if len(stops) == 0 {
		return ErrInvalidStops
	}
	for _, stop := range stops {
		if err := geo.ValidateCoordinates(stop.Latitude, stop.Longitude); err != nil {
			return ErrInvalidCoordinates
		}
		if !isValidStopKind(stop.Type) {
			return ErrMissingRequiredFields
		}
		if !isValidPriority(stop.Priority) {
			return ErrMissingRequiredFields
		}
	}
	return nil
}

func isValidStopKind(kind entities.StopKindType) bool {
	return kind == entities.StopPickup || kind == entities.StopDelivery
}

func isValidPriority(priority entities.StopPriorityType) bool {
	switch priority {
	case entities.PriorityLow, entities.PriorityMedium, entities.PriorityHigh, entities.PriorityUrgent:
		return true
	}
	return false
}

func isValidStopStatus(status entities.StopStatusType) bool {
	switch status {
	case entities.StopPending, entities.StopArrived, entities.StopCompleted, entities.StopFailed:
		return true
	}
	return false
}

// Таблица переходов статуса стопа: completed и failed терминальны.
var stopTransitions = map[entities.StopStatusType][]entities.StopStatusType{
	entities.StopPending: {entities.StopArrived, entities.StopFailed},
	entities.StopArrived: {entities.StopCompleted, entities.StopFailed},
}

func canTransitionStop(from, to entities.StopStatusType) bool {
	for _, allowed := range stopTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
