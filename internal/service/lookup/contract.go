//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=lookup_test
package lookup

import (
	"context"

	"delivery-service/internal/entities"
)

type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Client, error)
}

type DeliveryRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Delivery, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Delivery, error)
}
