//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ses_test
package ses

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sesv2"
)

type client interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
