package clients_get

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
	clients, err := h.service.GetClients(r.Context())
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, converters.ClientsToDTO(clients))
}
