package route

import "github.com/shauritanga/rtexpress-sub000/internal/entities"

func ToDomain(r *RouteDB) *entities.Route {
	if r == nil {
		return nil
	}
	return &entities.Route{
		ID:               r.ID,
		Status:           entities.RouteStatusType(r.Status),
		DriverID:         r.DriverID,
		WarehouseID:      r.WarehouseID,
		DeliveryDate:     r.DeliveryDate,
		PlannedStartTime: r.PlannedStartTime,
		StartedAt:        r.StartedAt,
		CompletedAt:      r.CompletedAt,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func FromDomainModify(r *entities.RouteModify) *RouteModifyDB {
	if r == nil {
		return nil
	}
	routeModifyDB := &RouteModifyDB{
		ID:               r.ID,
		DriverID:         r.DriverID,
		WarehouseID:      r.WarehouseID,
		DeliveryDate:     r.DeliveryDate,
		PlannedStartTime: r.PlannedStartTime,
		StartedAt:        r.StartedAt,
		CompletedAt:      r.CompletedAt,
	}

	if r.Status != nil {
		status := r.Status.String()
		routeModifyDB.Status = &status
	}

	return routeModifyDB
}

func ToStopDomain(s *StopDB) *entities.Stop {
	if s == nil {
		return nil
	}
	return &entities.Stop{
		ID:               s.ID,
		RouteID:          s.RouteID,
		ShipmentID:       s.ShipmentID,
		StopOrder:        s.StopOrder,
		Latitude:         s.Latitude,
		Longitude:        s.Longitude,
		Type:             entities.StopKindType(s.StopType),
		Priority:         entities.StopPriorityType(s.Priority),
		PlannedArrival:   s.PlannedArrival,
		PlannedDeparture: s.PlannedDeparture,
		Status:           entities.StopStatusType(s.Status),
	}
}

func ToStopDomainList(stopsDB []StopDB) []entities.Stop {
	stops := make([]entities.Stop, 0, len(stopsDB))
	for i := range stopsDB {
		stops = append(stops, *ToStopDomain(&stopsDB[i]))
	}
	return stops
}
