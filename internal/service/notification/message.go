package notification

import "delivery-service/internal/entities"

// deliveryEmailMessage формат сообщения в топике рассылки писем.
type deliveryEmailMessage struct {
	DeliveryID  int64  `json:"deliveryId"`
	ClientEmail string `json:"clientEmail"`
	Subject     string `json:"subject"`
	Body        string `json:"body"`
}

func fromDomain(email entities.DeliveryEmail) deliveryEmailMessage {
	return deliveryEmailMessage{
		DeliveryID:  email.DeliveryID,
		ClientEmail: email.ClientEmail,
		Subject:     email.Subject,
		Body:        email.Body,
	}
}
