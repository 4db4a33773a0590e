package ping_get

import (
	"net/http"

	"delivery-service/internal/generated/dto"
	"delivery-service/internal/handlers/rest/response"
)

const pong = "pong"

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	return &Handler{
		log: log.With(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	message := pong
	response.JSON(w, h.log, http.StatusOK, dto.PingResponse{Message: &message})
}
