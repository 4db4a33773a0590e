package delivery_cancel_put

import (
	"net/http"

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

	err = h.service.Cancel(r.Context(), id)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
