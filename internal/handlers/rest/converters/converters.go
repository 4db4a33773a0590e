// Package converters переводит DTO HTTP API в сущности и обратно.
package converters

import (
	"delivery-service/internal/entities"
	"delivery-service/internal/generated/dto"
)

func ClientFromDTO(in dto.ClientInput) entities.ClientModify {
	return entities.ClientModify{
		Name:      in.Name,
		Email:     in.Email,
		Telephone: in.Telephone,
	}
}

func ClientToDTO(client entities.Client) dto.Client {
	return dto.Client{
		ID:        client.ID,
		Name:      client.Name,
		Email:     client.Email,
		Telephone: client.Telephone,
	}
}

func ClientsToDTO(clients []entities.Client) []dto.Client {
	result := make([]dto.Client, 0, len(clients))
	for _, c := range clients {
		result = append(result, ClientToDTO(c))
	}
	return result
}

func DeliveryFromDTO(in dto.DeliveryInput) entities.DeliveryModify {
	return entities.DeliveryModify{
		ClientID:              in.ClientID,
		RecipientName:         in.RecipientName,
		RecipientStreet:       in.RecipientStreet,
		RecipientNumber:       in.RecipientNumber,
		RecipientNeighborhood: in.RecipientNeighborhood,
		RecipientComplement:   in.RecipientComplement,
		Tax:                   in.Tax,
	}
}

func DeliveryToDTO(delivery entities.Delivery) dto.Delivery {
	return dto.Delivery{
		ID:                    delivery.ID,
		ClientID:              delivery.ClientID,
		RecipientName:         delivery.RecipientName,
		RecipientStreet:       delivery.RecipientStreet,
		RecipientNumber:       delivery.RecipientNumber,
		RecipientNeighborhood: delivery.RecipientNeighborhood,
		RecipientComplement:   delivery.RecipientComplement,
		Tax:                   delivery.Tax,
		Status:                dto.DeliveryStatus(delivery.Status),
		OrderedAt:             delivery.OrderedAt,
		FinishedAt:            delivery.FinishedAt,
		Occurrences:           OccurrencesToDTO(delivery.Occurrences),
	}
}

func DeliveriesToDTO(deliveries []entities.Delivery) []dto.Delivery {
	result := make([]dto.Delivery, 0, len(deliveries))
	for _, d := range deliveries {
		result = append(result, DeliveryToDTO(d))
	}
	return result
}

func OccurrencesToDTO(occurrences []entities.Occurrence) []dto.Occurrence {
	result := make([]dto.Occurrence, 0, len(occurrences))
	for _, o := range occurrences {
		result = append(result, dto.Occurrence{
			ID:           o.ID,
			Description:  o.Description,
			RegisteredAt: o.RegisteredAt,
		})
	}
	return result
}
