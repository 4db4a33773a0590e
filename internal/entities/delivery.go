package entities

import (
	"time"

	"delivery-service/internal/pkg/errs"
)

const (
	OccurrenceCompleted = "Entrega finalizada"
	OccurrenceCancelled = "Entrega cancelada"
)

type DeliveryStatusType string

const (
	DeliveryPending   DeliveryStatusType = "PENDING"
	DeliveryFinalized DeliveryStatusType = "FINALIZED"
	DeliveryCancelled DeliveryStatusType = "CANCELLED"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

type Delivery struct {
	ID                    int64
	ClientID              int64
	RecipientName         string
	RecipientStreet       string
	RecipientNumber       string
	RecipientNeighborhood string
	RecipientComplement   *string
	Tax                   float64
	Status                DeliveryStatusType
	OrderedAt             time.Time
	FinishedAt            *time.Time
	Occurrences           []Occurrence
}

type DeliveryModify struct {
	ID                    *int64
	ClientID              *int64
	RecipientName         *string
	RecipientStreet       *string
	RecipientNumber       *string
	RecipientNeighborhood *string
	RecipientComplement   *string
	Tax                   *float64
}

// Occurrence запись в журнале доставки, только добавляется.
// ID == 0 у записей, которые еще не сохранены.
type Occurrence struct {
	ID           int64
	DeliveryID   int64
	Description  string
	RegisteredAt time.Time
}

// Complete переводит доставку PENDING -> FINALIZED.
func (d *Delivery) Complete(now time.Time) error {
	return d.finish(now, DeliveryFinalized, "complete", OccurrenceCompleted)
}

// Cancel переводит доставку PENDING -> CANCELLED.
func (d *Delivery) Cancel(now time.Time) error {
	return d.finish(now, DeliveryCancelled, "cancel", OccurrenceCancelled)
}

func (d *Delivery) finish(now time.Time, to DeliveryStatusType, action, description string) error {
	if d.Status != DeliveryPending {
		return errs.NewIllegalStateError(d.Status.String(), action)
	}

	d.Status = to
	d.FinishedAt = &now
	d.Occurrences = append(d.Occurrences, Occurrence{
		DeliveryID:   d.ID,
		Description:  description,
		RegisteredAt: now,
	})
	return nil
}

// IsNew сообщает, что запись еще не сохранена.
func (o Occurrence) IsNew() bool {
	return o.ID == 0
}
