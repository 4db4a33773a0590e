package delivery

import "time"

type DeliveryDB struct {
	ID                    int64
	ClientID              int64
	RecipientName         string
	RecipientStreet       string
	RecipientNumber       string
	RecipientNeighborhood string
	RecipientComplement   *string
	Tax                   float64
	Status                string
	OrderedAt             time.Time
	FinishedAt            *time.Time
}

type DeliveryModifyDB struct {
	ID                    *int64
	ClientID              *int64
	RecipientName         *string
	RecipientStreet       *string
	RecipientNumber       *string
	RecipientNeighborhood *string
	RecipientComplement   *string
	Tax                   *float64
}

type OccurrenceDB struct {
	ID           int64
	DeliveryID   int64
	Description  string
	RegisteredAt time.Time
}
