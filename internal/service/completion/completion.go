// Package completion завершает и отменяет доставки.
//
// Поиск, смена статуса и сохранение выполняются в одной транзакции.
// Письмо клиенту отправляется после коммита и не влияет на результат операции.
package completion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"delivery-service/internal/entities"
	"delivery-service/internal/pkg/errs"
	"delivery-service/pkg/tx"
)

const (
	actionComplete = "complete"
	actionCancel   = "cancel"

	outcomeSuccess  = "success"
	outcomeNotFound = "not_found"
	outcomeIllegal  = "illegal_state"
	outcomeConflict = "conflict"
	outcomeFailed   = "error"
)

type transition struct {
	action string
	apply  func(delivery *entities.Delivery, now time.Time) error
	email  func(client *entities.Client, delivery *entities.Delivery) entities.DeliveryEmail
}

var (
	completeTransition = transition{
		action: actionComplete,
		apply:  (*entities.Delivery).Complete,
		email:  completedEmail,
	}
	cancelTransition = transition{
		action: actionCancel,
		apply:  (*entities.Delivery).Cancel,
		email:  cancelledEmail,
	}
)

type Completion struct {
	repository Repository
	lookup     Lookup
	dispatcher Dispatcher
	txManager  TxManager
}

func New(repository Repository, lookup Lookup, dispatcher Dispatcher, txManager TxManager) *Completion {
	return &Completion{
		repository: repository,
		lookup:     lookup,
		dispatcher: dispatcher,
		txManager:  txManager,
	}
}

// Complete переводит доставку в FINALIZED и уведомляет клиента.
func (s *Completion) Complete(ctx context.Context, deliveryID int64) error {
	return s.finish(ctx, deliveryID, completeTransition)
}

// Cancel переводит доставку в CANCELLED и уведомляет клиента.
func (s *Completion) Cancel(ctx context.Context, deliveryID int64) error {
	return s.finish(ctx, deliveryID, cancelTransition)
}

func (s *Completion) finish(ctx context.Context, deliveryID int64, tr transition) error {
	var email entities.DeliveryEmail

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		delivery, err := s.lookup.DeliveryForUpdate(ctx, deliveryID)
		if err != nil {
			return err
		}

		if err := tr.apply(delivery, time.Now().UTC()); err != nil {
			return err
		}

		if err := s.repository.Save(ctx, delivery); err != nil {
			return fmt.Errorf("save delivery: %w", err)
		}

		client, err := s.lookup.Client(ctx, delivery.ClientID)
		if err != nil {
			return err
		}

		email = tr.email(client, delivery)
		return nil
	})
	if err != nil {
		if errors.Is(err, tx.ErrSerializationFailure) {
			err = fmt.Errorf("%w: %w", errs.ErrConcurrentModification, err)
		}
		DeliveryTransitionsTotal.WithLabelValues(tr.action, outcome(err)).Inc()
		return fmt.Errorf("%s delivery: %w", tr.action, err)
	}

	DeliveryTransitionsTotal.WithLabelValues(tr.action, outcomeSuccess).Inc()
	s.dispatcher.Send(ctx, email)
	return nil
}

func outcome(err error) string {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return outcomeNotFound
	case errors.Is(err, errs.ErrIllegalState):
		return outcomeIllegal
	case errors.Is(err, errs.ErrConcurrentModification):
		return outcomeConflict
	default:
		return outcomeFailed
	}
}
