// Package lookup находит клиента или доставку по идентификатору
// и возвращает errs.NotFoundError, если записи нет.
package lookup

import (
	"context"
	"fmt"

	"delivery-service/internal/entities"
	"delivery-service/internal/pkg/errs"
)

type Lookup struct {
	clients    ClientRepository
	deliveries DeliveryRepository
}

func New(clients ClientRepository, deliveries DeliveryRepository) *Lookup {
	return &Lookup{
		clients:    clients,
		deliveries: deliveries,
	}
}

func (s *Lookup) Client(ctx context.Context, id int64) (*entities.Client, error) {
	if id <= 0 {
		return nil, errs.NewNotFoundError(errs.KindClient, id)
	}

	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lookup client: %w", err)
	}
	return client, nil
}

func (s *Lookup) Delivery(ctx context.Context, id int64) (*entities.Delivery, error) {
	if id <= 0 {
		return nil, errs.NewNotFoundError(errs.KindDelivery, id)
	}

	delivery, err := s.deliveries.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lookup delivery: %w", err)
	}
	return delivery, nil
}

// DeliveryForUpdate блокирует строку доставки, вызывать внутри транзакции.
func (s *Lookup) DeliveryForUpdate(ctx context.Context, id int64) (*entities.Delivery, error) {
	if id <= 0 {
		return nil, errs.NewNotFoundError(errs.KindDelivery, id)
	}

	delivery, err := s.deliveries.GetByIDForUpdate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lookup delivery for update: %w", err)
	}
	return delivery, nil
}
