package shipment

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidTrackingNumber = errors.New("invalid tracking number")
	ErrInvalidStatus         = errors.New("invalid shipment status")
	ErrInvalidWeight         = errors.New("invalid shipment weight")
	ErrInvalidDeclaredValue  = errors.New("invalid declared value")
	ErrInvalidServiceType    = errors.New("invalid service type")
	ErrInvalidDestination    = errors.New("invalid destination address")

	ErrShipmentNotFound    = errors.New("shipment not found")
	ErrShipmentTerminal    = errors.New("shipment is in a terminal status")
	ErrShipmentNotPending  = errors.New("shipment has left pending status")
	ErrConflict            = errors.New("tracking number already exists")
)
