package shipment_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var shipmentCreateDTO dto.ShipmentCreate
	err := json.NewDecoder(r.Body).Decode(&shipmentCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	serviceType := entities.ShipmentServiceType(shipmentCreateDTO.ServiceType)
	shipmentModifyEntity := entities.ShipmentModify{
		ServiceType:           &serviceType,
		WeightKg:              &shipmentCreateDTO.WeightKg,
		DeclaredValue:         &shipmentCreateDTO.DeclaredValue,
		OriginWarehouseID:     &shipmentCreateDTO.OriginWarehouseID,
		DestinationAddress:    &shipmentCreateDTO.DestinationAddress,
		EstimatedDeliveryDate: shipmentCreateDTO.EstimatedDeliveryDate,
	}

	shipmentEntity, err := h.service.CreateShipment(r.Context(), shipmentModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrMissingRequiredFields),
			errors.Is(err, shipment.ErrInvalidWeight),
			errors.Is(err, shipment.ErrInvalidDeclaredValue),
			errors.Is(err, shipment.ErrInvalidServiceType),
			errors.Is(err, shipment.ErrInvalidDestination):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shipment.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ShipmentCreateResponse{
		ID:             shipmentEntity.ID,
		TrackingNumber: shipmentEntity.TrackingNumber,
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
