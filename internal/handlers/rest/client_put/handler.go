package client_put

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

	var clientDTO dto.ClientInput
	err = json.NewDecoder(r.Body).Decode(&clientDTO)
	if err != nil {
		response.BadRequest(w, h.log, err)
		return
	}

	clientModify := converters.ClientFromDTO(clientDTO)
	clientModify.ID = &id

	client, err := h.service.UpdateClient(r.Context(), clientModify)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, converters.ClientToDTO(*client))
}
