package completion

import (
	"fmt"

	"delivery-service/internal/entities"
)

const (
	subjectCompleted = "Produto recebido com sucesso"
	subjectCancelled = "O envio do produto foi cancelado"
)

func completedEmail(client *entities.Client, delivery *entities.Delivery) entities.DeliveryEmail {
	return entities.DeliveryEmail{
		DeliveryID:  delivery.ID,
		ClientEmail: client.Email,
		Subject:     subjectCompleted,
		Body:        fmt.Sprintf("O produto de %s foi recebido por %s", client.Name, delivery.RecipientName),
	}
}

func cancelledEmail(client *entities.Client, delivery *entities.Delivery) entities.DeliveryEmail {
	return entities.DeliveryEmail{
		DeliveryID:  delivery.ID,
		ClientEmail: client.Email,
		Subject:     subjectCancelled,
		Body:        fmt.Sprintf("O produto de %s não pode ser enviado", client.Name),
	}
}
