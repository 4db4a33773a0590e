package delivery

import "delivery-service/internal/entities"

func ToDomain(d *DeliveryDB, occurrences []OccurrenceDB) *entities.Delivery {
	if d == nil {
		return nil
	}

	return &entities.Delivery{
		ID:                    d.ID,
		ClientID:              d.ClientID,
		RecipientName:         d.RecipientName,
		RecipientStreet:       d.RecipientStreet,
		RecipientNumber:       d.RecipientNumber,
		RecipientNeighborhood: d.RecipientNeighborhood,
		RecipientComplement:   d.RecipientComplement,
		Tax:                   d.Tax,
		Status:                entities.DeliveryStatusType(d.Status),
		OrderedAt:             d.OrderedAt,
		FinishedAt:            d.FinishedAt,
		Occurrences:           ToOccurrenceDomainList(occurrences),
	}
}

func FromDomain(d *entities.Delivery) *DeliveryDB {
	if d == nil {
		return nil
	}

	return &DeliveryDB{
		ID:                    d.ID,
		ClientID:              d.ClientID,
		RecipientName:         d.RecipientName,
		RecipientStreet:       d.RecipientStreet,
		RecipientNumber:       d.RecipientNumber,
		RecipientNeighborhood: d.RecipientNeighborhood,
		RecipientComplement:   d.RecipientComplement,
		Tax:                   d.Tax,
		Status:                d.Status.String(),
		OrderedAt:             d.OrderedAt,
		FinishedAt:            d.FinishedAt,
	}
}

func FromDomainModify(d *entities.DeliveryModify) *DeliveryModifyDB {
	if d == nil {
		return nil
	}

	return &DeliveryModifyDB{
		ID:                    d.ID,
		ClientID:              d.ClientID,
		RecipientName:         d.RecipientName,
		RecipientStreet:       d.RecipientStreet,
		RecipientNumber:       d.RecipientNumber,
		RecipientNeighborhood: d.RecipientNeighborhood,
		RecipientComplement:   d.RecipientComplement,
		Tax:                   d.Tax,
	}
}

func ToOccurrenceDomain(o *OccurrenceDB) *entities.Occurrence {
	if o == nil {
		return nil
	}

	return &entities.Occurrence{
		ID:           o.ID,
		DeliveryID:   o.DeliveryID,
		Description:  o.Description,
		RegisteredAt: o.RegisteredAt,
	}
}

func ToOccurrenceDomainList(occurrencesDB []OccurrenceDB) []entities.Occurrence {
	result := make([]entities.Occurrence, len(occurrencesDB))
	for i, occurrenceDB := range occurrencesDB {
		result[i] = *ToOccurrenceDomain(&occurrenceDB)
	}
	return result
}
