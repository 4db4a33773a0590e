//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"

	"delivery-service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, deliveryEntity entities.Delivery) (*entities.Delivery, error)
	Update(ctx context.Context, deliveryModifyEntity entities.DeliveryModify) (*entities.Delivery, error)
	GetAll(ctx context.Context) ([]entities.Delivery, error)
}

type Lookup interface {
	Client(ctx context.Context, id int64) (*entities.Client, error)
	Delivery(ctx context.Context, id int64) (*entities.Delivery, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
