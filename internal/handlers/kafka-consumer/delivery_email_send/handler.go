package delivery_email_send

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"delivery-service/internal/service/mail"
	"delivery-service/pkg/logger"

	"github.com/IBM/sarama"
)

type Handler struct {
	mailService              Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, mailService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "delivery.email.send"))

	return &Handler{
		mailService:              mailService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("delivery.email.send: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("delivery.email.send: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing отправляет одно письмо.
// Сообщение помечается только после отправки или если письмо невалидно.
// Возвращает true, если письмо не отправлено: offset не коммитится, и после
// выхода из ConsumeClaim сообщение будет прочитано снова.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event deliveryEmailEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("delivery.email.send handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("delivery", event.DeliveryID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("delivery.email.send processing")

	messageID, err := h.mailService.SendDeliveryEmail(ctx, event.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, mail.ErrInvalidMessage):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.email.send handler skipped invalid email")
			sess.MarkMessage(message, "")
			return false

		case sess.Context().Err() != nil:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.email.send handler context cancelled, message will be reprocessed")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("delivery.email.send handler failed to send email, message will be reprocessed")
		}
		return true
	}

	msgLog.With(
		logger.NewField("message_id", messageID),
	).Info("delivery.email.send: sent")

	sess.MarkMessage(message, "")
	return false
}
