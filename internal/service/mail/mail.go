// Package mail отправляет письма о смене статуса доставки через почтовый шлюз.
package mail

import (
	"context"
	"errors"
	"fmt"
	netmail "net/mail"
	"strings"

	"delivery-service/internal/entities"
)

// ErrInvalidMessage письмо нельзя отправить ни при какой повторной попытке.
var ErrInvalidMessage = errors.New("invalid email message")

type Service struct {
	gateway Gateway
}

func New(gateway Gateway) *Service {
	return &Service{gateway: gateway}
}

// SendDeliveryEmail проверяет письмо и отправляет его, возвращая идентификатор сообщения.
func (s *Service) SendDeliveryEmail(ctx context.Context, email entities.DeliveryEmail) (string, error) {
	if err := validateEmail(email); err != nil {
		return "", fmt.Errorf("send delivery email: %w", err)
	}

	messageID, err := s.gateway.SendEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("send delivery email: %w", err)
	}

	return messageID, nil
}

func validateEmail(email entities.DeliveryEmail) error {
	if strings.TrimSpace(email.ClientEmail) == "" {
		return fmt.Errorf("%w: empty recipient", ErrInvalidMessage)
	}
	if _, err := netmail.ParseAddress(email.ClientEmail); err != nil {
		return fmt.Errorf("%w: recipient %q: %w", ErrInvalidMessage, email.ClientEmail, err)
	}
	if strings.TrimSpace(email.Subject) == "" {
		return fmt.Errorf("%w: empty subject", ErrInvalidMessage)
	}
	return nil
}
