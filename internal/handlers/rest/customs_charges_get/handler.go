package customs_charges_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shauritanga/rtexpress-sub000/internal/generated/dto"
	"github.com/shauritanga/rtexpress-sub000/internal/service/customs"
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
	idStr := mux.Vars(r)["id"]
	declarationID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	charges, err := h.service.EstimateCharges(r.Context(), declarationID)
	if err != nil {
		switch {
		case errors.Is(err, customs.ErrDeclarationNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	chargesDTO := dto.CustomsCharges{
		DutyAmount:  charges.DutyAmount,
		TaxAmount:   charges.TaxAmount,
		TotalAmount: charges.TotalAmount,
		Currency:    charges.Currency,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(chargesDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
