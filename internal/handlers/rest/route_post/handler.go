package route_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shauritanga/rtexpress-sub000/internal/entities"
	"github.com/shauritanga/rtexpress-sub000/internal/generated/dto"
	"github.com/shauritanga/rtexpress-sub000/internal/service/route"
	"github.com/shauritanga/rtexpress-sub000/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var routeCreateDTO dto.RouteCreate
	err := json.NewDecoder(r.Body).Decode(&routeCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	routeModifyEntity := entities.RouteModify{
		DriverID:         &routeCreateDTO.DriverID,
		WarehouseID:      &routeCreateDTO.WarehouseID,
		DeliveryDate:     &routeCreateDTO.DeliveryDate,
		PlannedStartTime: &routeCreateDTO.PlannedStartTime,
	}

	stops := make([]entities.Stop, len(routeCreateDTO.Stops))
	for i, stopDTO := range routeCreateDTO.Stops {
		stops[i] = entities.Stop{
			ShipmentID: stopDTO.ShipmentID,
			Latitude:   stopDTO.Latitude,
			Longitude:  stopDTO.Longitude,
			Type:       entities.StopKindType(stopDTO.Type),
			Priority:   entities.StopPriorityType(stopDTO.Priority),
		}
	}

	routeEntity, err := h.service.CreateRoute(r.Context(), routeModifyEntity, stops)
	if err != nil {
		switch {
		case errors.Is(err, route.ErrMissingRequiredFields),
			errors.Is(err, route.ErrInvalidStops),
			errors.Is(err, route.ErrInvalidCoordinates):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, route.ErrWarehouseNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, route.ErrDriverUnavailable):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.RouteCreateResponse{
		ID: routeEntity.ID,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
