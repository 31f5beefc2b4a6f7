package route

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidStops          = errors.New("route must contain at least one stop")
	ErrInvalidCoordinates    = errors.New("invalid stop coordinates")
	ErrInvalidStopStatus     = errors.New("invalid stop status")

	ErrRouteNotFound      = errors.New("route not found")
	ErrWarehouseNotFound  = errors.New("warehouse not found")
	ErrStopNotFound       = errors.New("stop not found")
	ErrDriverUnavailable  = errors.New("driver already has an active route")
	ErrRouteNotPlanned    = errors.New("route has left planned status")
	ErrRouteNotInProgress = errors.New("route is not in progress")
	ErrStopTerminal       = errors.New("stop is in a terminal status")
)
