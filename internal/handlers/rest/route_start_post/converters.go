package route_start_post

import (
	"github.com/shauritanga/rtexpress-sub000/internal/entities"
	"github.com/shauritanga/rtexpress-sub000/internal/generated/dto"
)

func toRouteDTO(routeEntity *entities.Route) dto.Route {
	stops := make([]dto.Stop, len(routeEntity.Stops))
	for i, stop := range routeEntity.Stops {
		stops[i] = dto.Stop{
			ID:               stop.ID,
			RouteID:          stop.RouteID,
			ShipmentID:       stop.ShipmentID,
			StopOrder:        stop.StopOrder,
			Latitude:         stop.Latitude,
			Longitude:        stop.Longitude,
			Type:             stop.Type.String(),
			Priority:         stop.Priority.String(),
			PlannedArrival:   stop.PlannedArrival,
			PlannedDeparture: stop.PlannedDeparture,
			Status:           stop.Status.String(),
		}
	}

	return dto.Route{
		ID:                     routeEntity.ID,
		Status:                 routeEntity.Status.String(),
		DriverID:               routeEntity.DriverID,
		WarehouseID:            routeEntity.WarehouseID,
		DeliveryDate:           routeEntity.DeliveryDate,
		PlannedStartTime:       routeEntity.PlannedStartTime,
		StartedAt:              routeEntity.StartedAt,
		CompletedAt:            routeEntity.CompletedAt,
		TotalStops:             routeEntity.TotalStops,
		TotalWeightKg:          routeEntity.TotalWeightKg,
		EstimatedDurationHours: routeEntity.EstimatedDurationHours,
		Stops:                  stops,
		CreatedAt:              routeEntity.CreatedAt,
		UpdatedAt:              routeEntity.UpdatedAt,
	}
}
