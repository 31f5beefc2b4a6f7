package stop_status_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
	vars := mux.Vars(r)

	routeID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	stopID, err := strconv.ParseInt(vars["stopId"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var statusUpdateDTO dto.StopStatusUpdate
	err = json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	status := entities.StopStatusType(statusUpdateDTO.Status)

	stopEntity, err := h.service.UpdateStopStatus(r.Context(), routeID, stopID, status)
	if err != nil {
		switch {
		case errors.Is(err, route.ErrInvalidStopStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, route.ErrRouteNotFound),
			errors.Is(err, route.ErrStopNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, route.ErrRouteNotInProgress),
			errors.Is(err, route.ErrStopTerminal):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	stopDTO := dto.Stop{
		ID:               stopEntity.ID,
		RouteID:          stopEntity.RouteID,
		ShipmentID:       stopEntity.ShipmentID,
		StopOrder:        stopEntity.StopOrder,
		Latitude:         stopEntity.Latitude,
		Longitude:        stopEntity.Longitude,
		Type:             stopEntity.Type.String(),
		Priority:         stopEntity.Priority.String(),
		PlannedArrival:   stopEntity.PlannedArrival,
		PlannedDeparture: stopEntity.PlannedDeparture,
		Status:           stopEntity.Status.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(stopDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
