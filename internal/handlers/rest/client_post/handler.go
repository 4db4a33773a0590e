package client_post

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
	var clientDTO dto.ClientInput
	err := json.NewDecoder(r.Body).Decode(&clientDTO)
	if err != nil {
		response.BadRequest(w, h.log, err)
		return
	}

	client, err := h.service.CreateClient(r.Context(), converters.ClientFromDTO(clientDTO))
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, converters.ClientToDTO(*client))
}
