package delivery_post

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
	var deliveryDTO dto.DeliveryInput
	err := json.NewDecoder(r.Body).Decode(&deliveryDTO)
	if err != nil {
		response.BadRequest(w, h.log, err)
		return
	}

	delivery, err := h.service.CreateDelivery(r.Context(), converters.DeliveryFromDTO(deliveryDTO))
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, converters.DeliveryToDTO(*delivery))
}
