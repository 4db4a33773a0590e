package delivery_email_send

import "delivery-service/internal/entities"

type deliveryEmailEvent struct {
	DeliveryID  int64  `json:"deliveryId"`
	ClientEmail string `json:"clientEmail"`
	Subject     string `json:"subject"`
	Body        string `json:"body"`
}

func (e deliveryEmailEvent) toDomain() entities.DeliveryEmail {
	return entities.DeliveryEmail{
		DeliveryID:  e.DeliveryID,
		ClientEmail: e.ClientEmail,
		Subject:     e.Subject,
		Body:        e.Body,
	}
}
