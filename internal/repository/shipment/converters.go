package shipment

import "github.com/shauritanga/rtexpress-sub000/internal/entities"

func ToDomain(s *ShipmentDB) *entities.Shipment {
	if s == nil {
		return nil
	}
	return &entities.Shipment{
		ID:                    s.ID,
		TrackingNumber:        s.TrackingNumber,
		Status:                entities.ShipmentStatusType(s.Status),
		ServiceType:           entities.ShipmentServiceType(s.ServiceType),
		WeightKg:              s.WeightKg,
		DeclaredValue:         s.DeclaredValue,
		OriginWarehouseID:     s.OriginWarehouseID,
		DestinationAddress:    s.DestinationAddress,
		EstimatedDeliveryDate: s.EstimatedDeliveryDate,
		ActualDeliveryDate:    s.ActualDeliveryDate,
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}

func ToDomainList(shipmentsDB []ShipmentDB) []entities.Shipment {
	shipments := make([]entities.Shipment, 0, len(shipmentsDB))
	for i := range shipmentsDB {
		shipments = append(shipments, *ToDomain(&shipmentsDB[i]))
	}
	return shipments
}

func FromDomainModify(s *entities.ShipmentModify) *ShipmentModifyDB {
	if s == nil {
		return nil
	}
	shipmentModifyDB := &ShipmentModifyDB{
		ID:                    s.ID,
		TrackingNumber:        s.TrackingNumber,
		WeightKg:              s.WeightKg,
		DeclaredValue:         s.DeclaredValue,
		OriginWarehouseID:     s.OriginWarehouseID,
		DestinationAddress:    s.DestinationAddress,
		EstimatedDeliveryDate: s.EstimatedDeliveryDate,
		ActualDeliveryDate:    s.ActualDeliveryDate,
	}

	if s.Status != nil {
		status := s.Status.String()
		shipmentModifyDB.Status = &status
	}
	if s.ServiceType != nil {
		serviceType := s.ServiceType.String()
		shipmentModifyDB.ServiceType = &serviceType
	}

	return shipmentModifyDB
}

func ToEventDomain(e *TrackingEventDB) *entities.TrackingEvent {
	if e == nil {
		return nil
	}
	return &entities.TrackingEvent{
		ID:         e.ID,
		ShipmentID: e.ShipmentID,
		Status:     entities.ShipmentStatusType(e.Status),
		Location:   e.Location,
		Notes:      e.Notes,
		Actor:      e.Actor,
		OccurredAt: e.OccurredAt,
	}
}

func ToEventDomainList(eventsDB []TrackingEventDB) []entities.TrackingEvent {
	events := make([]entities.TrackingEvent, 0, len(eventsDB))
	for i := range eventsDB {
		events = append(events, *ToEventDomain(&eventsDB[i]))
	}
	return events
}
