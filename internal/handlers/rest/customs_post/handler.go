package customs_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
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
	var declarationCreateDTO dto.CustomsDeclarationCreate
	err := json.NewDecoder(r.Body).Decode(&declarationCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	declarationType := entities.CustomsDeclarationType(declarationCreateDTO.DeclarationType)
	declarationModifyEntity := entities.CustomsDeclarationModify{
		ShipmentID:             &declarationCreateDTO.ShipmentID,
		DeclarationType:        &declarationType,
		DestinationCountry:     &declarationCreateDTO.DestinationCountry,
		ContainsBatteries:      pointer.ToBool(declarationCreateDTO.ContainsBatteries),
		ContainsLiquids:        pointer.ToBool(declarationCreateDTO.ContainsLiquids),
		ContainsDangerousGoods: pointer.ToBool(declarationCreateDTO.ContainsDangerousGoods),
	}

	items := make([]entities.CustomsItem, len(declarationCreateDTO.Items))
	for i, itemDTO := range declarationCreateDTO.Items {
		items[i] = entities.CustomsItem{
			Description:     itemDTO.Description,
			HSCode:          itemDTO.HSCode,
			Quantity:        itemDTO.Quantity,
			UnitValue:       itemDTO.UnitValue,
			CountryOfOrigin: itemDTO.CountryOfOrigin,
		}
	}

	declaration, err := h.service.CreateDeclaration(r.Context(), declarationModifyEntity, items)
	if err != nil {
		switch {
		case errors.Is(err, customs.ErrMissingRequiredFields),
			errors.Is(err, customs.ErrInvalidDeclarationType),
			errors.Is(err, customs.ErrInvalidCountry),
			errors.Is(err, customs.ErrInvalidItems):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, customs.ErrDeclarationExists):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CustomsDeclarationCreateResponse{
		ID: declaration.ID,
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
