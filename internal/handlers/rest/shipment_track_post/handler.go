package shipment_track_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shauritanga/rtexpress-sub000/internal/entities"
	"github.com/shauritanga/rtexpress-sub000/internal/generated/dto"
	"github.com/shauritanga/rtexpress-sub000/internal/service/shipment"
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
	trackingNumber := mux.Vars(r)["trackingNumber"]

	var trackingUpdateDTO dto.TrackingUpdate
	err := json.NewDecoder(r.Body).Decode(&trackingUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	update := entities.TrackingUpdate{
		Status:   entities.ShipmentStatusType(trackingUpdateDTO.Status),
		Location: trackingUpdateDTO.Location,
		Notes:    trackingUpdateDTO.Notes,
		Actor:    trackingUpdateDTO.Actor,
	}

	shipmentEntity, err := h.service.AddTrackingUpdate(r.Context(), trackingNumber, update)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrMissingRequiredFields),
			errors.Is(err, shipment.ErrInvalidStatus),
			errors.Is(err, shipment.ErrInvalidTrackingNumber):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shipment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, shipment.ErrShipmentTerminal):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	shipmentDTO := dto.Shipment{
		ID:                    shipmentEntity.ID,
		TrackingNumber:        shipmentEntity.TrackingNumber,
		Status:                shipmentEntity.Status.String(),
		ServiceType:           shipmentEntity.ServiceType.String(),
		WeightKg:              shipmentEntity.WeightKg,
		DeclaredValue:         shipmentEntity.DeclaredValue,
		OriginWarehouseID:     shipmentEntity.OriginWarehouseID,
		DestinationAddress:    shipmentEntity.DestinationAddress,
		EstimatedDeliveryDate: shipmentEntity.EstimatedDeliveryDate,
		ActualDeliveryDate:    shipmentEntity.ActualDeliveryDate,
		CreatedAt:             shipmentEntity.CreatedAt,
		UpdatedAt:             shipmentEntity.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(shipmentDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
