package client

import "time"

type ClientDB struct {
	ID        int64
	Name      string
	Email     string
	Telephone string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ClientModifyDB struct {
	ID        *int64
	Name      *string
	Email     *string
	Telephone *string
}
