//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=mail_test
package mail

import (
	"context"

	"delivery-service/internal/entities"
)

type Gateway interface {
	SendEmail(ctx context.Context, email entities.DeliveryEmail) (string, error)
}
