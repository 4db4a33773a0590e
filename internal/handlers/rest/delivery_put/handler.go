package delivery_put

import (
	"encoding/json"
	"net/http"

	"delivery-service/internal/generated/dto"
	"delivery-service/internal/handlers/rest/converters"
	"delivery-service/internal/handlers/rest/response"
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
	id, err := response.PathID(r)
	if err != nil {
		response.BadRequest(w, h.log, err)
		return
	}

	var deliveryDTO dto.DeliveryInput
	err = json.NewDecoder(r.Body).Decode(&deliveryDTO)
	if err != nil {
		response.BadRequest(w, h.log, err)
		return
	}

	deliveryModify := converters.DeliveryFromDTO(deliveryDTO)
	deliveryModify.ID = &id

	delivery, err := h.service.UpdateDelivery(r.Context(), deliveryModify)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, converters.DeliveryToDTO(*delivery))
}
