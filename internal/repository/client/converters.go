package client

import "delivery-service/internal/entities"

func ToDomain(c *ClientDB) *entities.Client {
	if c == nil {
		return nil
	}

	return &entities.Client{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Telephone: c.Telephone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromDomainModify(clientModify *entities.ClientModify) *ClientModifyDB {
	if clientModify == nil {
		return nil
	}

	return &ClientModifyDB{
		ID:        clientModify.ID,
		Name:      clientModify.Name,
		Email:     clientModify.Email,
		Telephone: clientModify.Telephone,
	}
}

func ToDomainList(clientsDB []ClientDB) []entities.Client {
	if len(clientsDB) == 0 {
		return []entities.Client{}
	}

	result := make([]entities.Client, len(clientsDB))
	for i, clientDB := range clientsDB {
		result[i] = *ToDomain(&clientDB)
	}
	return result
}
