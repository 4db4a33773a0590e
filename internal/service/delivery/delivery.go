package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"delivery-service/internal/entities"
	"delivery-service/internal/pkg/errs"
	"delivery-service/pkg/tx"
)

type Delivery struct {
	repository Repository
	lookup     Lookup
	txManager  TxManager
}

func New(repository Repository, lookup Lookup, txManager TxManager) *Delivery {
	return &Delivery{
		repository: repository,
		lookup:     lookup,
		txManager:  txManager,
	}
}

// CreateDelivery регистрирует доставку в статусе PENDING для существующего клиента.
func (d *Delivery) CreateDelivery(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	if err := validateDelivery(deliveryModify); err != nil {
		return nil, err
	}

	var created *entities.Delivery
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := d.lookup.Client(ctx, *deliveryModify.ClientID); err != nil {
			return err
		}

		delivery, err := d.repository.Create(ctx, entities.Delivery{
			ClientID:              *deliveryModify.ClientID,
			RecipientName:         *deliveryModify.RecipientName,
			RecipientStreet:       *deliveryModify.RecipientStreet,
			RecipientNumber:       *deliveryModify.RecipientNumber,
			RecipientNeighborhood: *deliveryModify.RecipientNeighborhood,
			RecipientComplement:   deliveryModify.RecipientComplement,
			Tax:                   *deliveryModify.Tax,
			Status:                entities.DeliveryPending,
			OrderedAt:             time.Now().UTC(),
		})
		if err != nil {
			return err
		}

		created = delivery
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create delivery: %w", concurrencyError(err))
	}

	return created, nil
}

// UpdateDelivery заменяет данные получателя, статус и журнал не меняются.
func (d *Delivery) UpdateDelivery(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	if err := validateDelivery(deliveryModify); err != nil {
		return nil, err
	}

	if deliveryModify.ID == nil {
		return nil, fmt.Errorf("update delivery: missing id")
	}

	var updated *entities.Delivery
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := d.lookup.Delivery(ctx, *deliveryModify.ID); err != nil {
			return err
		}

		if _, err := d.lookup.Client(ctx, *deliveryModify.ClientID); err != nil {
			return err
		}

		delivery, err := d.repository.Update(ctx, deliveryModify)
		if err != nil {
			return err
		}

		updated = delivery
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update delivery: %w", concurrencyError(err))
	}

	return updated, nil
}

func (d *Delivery) GetDelivery(ctx context.Context, id int64) (*entities.Delivery, error) {
	delivery, err := d.lookup.Delivery(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}

	return delivery, nil
}

func (d *Delivery) GetDeliveries(ctx context.Context) ([]entities.Delivery, error) {
	deliveries, err := d.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get deliveries: %w", err)
	}

	return deliveries, nil
}

func (d *Delivery) GetOccurrences(ctx context.Context, deliveryID int64) ([]entities.Occurrence, error) {
	delivery, err := d.lookup.Delivery(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("get occurrences: %w", err)
	}

	return delivery.Occurrences, nil
}

func concurrencyError(err error) error {
	if errors.Is(err, tx.ErrSerializationFailure) {
		return fmt.Errorf("%w: %w", errs.ErrConcurrentModification, err)
	}
	return err
}
