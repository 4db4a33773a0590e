package client_get

import (
	"net/http"

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

	client, err := h.service.GetClient(r.Context(), id)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, converters.ClientToDTO(*client))
}
