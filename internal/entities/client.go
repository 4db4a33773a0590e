package entities

import "time"

type Client struct {
	ID        int64
	Name      string
	Email     string
	Telephone string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClientModify входные данные клиента, nil означает отсутствующее поле.
type ClientModify struct {
	ID        *int64
	Name      *string
	Email     *string
	Telephone *string
}
