package customs_document_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shauritanga/rtexpress-sub000/internal/entities"
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

	var attachDTO dto.CustomsDocumentAttach
	err = json.NewDecoder(r.Body).Decode(&attachDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	documentType := entities.ComplianceDocumentType(attachDTO.DocumentType)

	document, err := h.service.AttachDocument(r.Context(), declarationID, documentType, attachDTO.FileName)
	if err != nil {
		switch {
		case errors.Is(err, customs.ErrInvalidDocumentType),
			errors.Is(err, customs.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, customs.ErrDeclarationNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, customs.ErrDeclarationNotEditable):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CustomsDocumentAttachResponse{
		ID: document.ID,
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
