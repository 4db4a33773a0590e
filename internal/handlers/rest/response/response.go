// Package response пишет JSON ответы и переводит ошибки сервисов в HTTP статусы.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"delivery-service/internal/generated/dto"
	"delivery-service/internal/pkg/errs"
	"delivery-service/pkg/logger"

	"github.com/gorilla/mux"
)

const (
	MsgInvalidInput       = "Entrada de dados inválida"
	MsgInvalidArgument    = "Argumento inválido"
	MsgClientNotFound     = "Cliente não encontrado"
	MsgDeliveryNotFound   = "Entrega não encontrada"
	MsgIllegalState       = "Operação inválida para o status atual da entrega"
	MsgConflict           = "Registro já existente"
	MsgClientHasDelivery  = "O cliente possui entregas e não pode ser removido"
	MsgConcurrentModified = "A entrega foi alterada por outra requisição"
	MsgInternal           = "Erro interno"
)

var ErrInvalidID = errors.New("invalid path id")

type Logger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// PathID читает {id} из пути запроса.
func PathID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

func JSON(w http.ResponseWriter, log Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// BadRequest ответ на нечитаемое тело или некорректный id в пути.
func BadRequest(w http.ResponseWriter, log Logger, err error) {
	JSON(w, log, http.StatusBadRequest, dto.Error{
		Message:     MsgInvalidArgument,
		Description: err.Error(),
	})
}

// Error переводит ошибку сервиса в статус и тело {message, description}.
func Error(w http.ResponseWriter, log Logger, err error) {
	status, body := translate(err)
	if status == http.StatusInternalServerError {
		log.With(
			logger.NewField("error", err),
		).Error("request failed")
	}
	JSON(w, log, status, body)
}

func translate(err error) (int, dto.Error) {
	var (
		validationErr *errs.ValidationError
		notFoundErr   *errs.NotFoundError
		illegalErr    *errs.IllegalStateError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, dto.Error{
			Message:     MsgInvalidInput,
			Description: validationErr.Description(),
		}

	case errors.As(err, &notFoundErr):
		message := MsgDeliveryNotFound
		if notFoundErr.Kind == errs.KindClient {
			message = MsgClientNotFound
		}
		return http.StatusNotFound, dto.Error{
			Message:     message,
			Description: fmt.Sprintf("id=%d", notFoundErr.ID),
		}

	case errors.As(err, &illegalErr):
		return http.StatusBadRequest, dto.Error{
			Message:     MsgIllegalState,
			Description: fmt.Sprintf("status=%s", illegalErr.From),
		}

	case errors.Is(err, errs.ErrClientHasDeliveries):
		return http.StatusConflict, dto.Error{Message: MsgClientHasDelivery, Description: err.Error()}

	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict, dto.Error{Message: MsgConflict, Description: err.Error()}

	case errors.Is(err, errs.ErrConcurrentModification):
		return http.StatusConflict, dto.Error{Message: MsgConcurrentModified, Description: err.Error()}

	default:
		return http.StatusInternalServerError, dto.Error{Message: MsgInternal}
	}
}
