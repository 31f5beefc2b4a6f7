package shipment

import (
	"strings"

	"github.com/shauritanga/rtexpress-sub000/internal/entities"
)

func isValidTrackingNumber(trackingNumber string) bool {
	return strings.TrimSpace(trackingNumber) != ""
}

func isValidStatus(status entities.ShipmentStatusType) bool {
	switch status {
	case entities.ShipmentPending,
		entities.ShipmentPickedUp,
		entities.ShipmentInTransit,
		entities.ShipmentOutForDelivery,
		entities.ShipmentDelivered,
		entities.ShipmentException,
		entities.ShipmentCancelled:
		return true
	}
	return false
}

func isValidServiceType(serviceType entities.ShipmentServiceType) bool {
	switch serviceType {
	case entities.ServiceStandard, entities.ServiceExpress, entities.ServiceOvernight:
		return true
	}
	return false
}

func isValidActor(actor string) bool {
	return strings.TrimSpace(actor) != ""
}
