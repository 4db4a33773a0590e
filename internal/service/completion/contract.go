//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=completion_test
package completion

import (
	"context"

	"delivery-service/internal/entities"
)

type Repository interface {
	Save(ctx context.Context, deliveryEntity *entities.Delivery) error
}

type Lookup interface {
	Client(ctx context.Context, id int64) (*entities.Client, error)
	DeliveryForUpdate(ctx context.Context, id int64) (*entities.Delivery, error)
}

// Dispatcher не блокирует вызывающего и не возвращает ошибок.
type Dispatcher interface {
	Send(ctx context.Context, email entities.DeliveryEmail)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
