package customs_approve_post

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

	var requestDTO dto.CustomsDeclarationApprove
	err = json.NewDecoder(r.Body).Decode(&requestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	declaration, err := h.service.Approve(r.Context(), declarationID, requestDTO.ApprovedBy, requestDTO.CustomsReference)
	if err != nil {
		switch {
		case errors.Is(err, customs.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, customs.ErrDeclarationNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, customs.ErrInvalidStateTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	declarationDTO := toDeclarationDTO(declaration)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(declarationDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
