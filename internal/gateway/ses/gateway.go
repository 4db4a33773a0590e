package ses

import (
	"context"
	"errors"
	"fmt"
	"time"

	"delivery-service/internal/entities"
	retrierconfig "delivery-service/pkg/retrier"
	"delivery-service/pkg/retrier/backoff_adapter"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/aws/smithy-go"
)

const (
	serviceName = "ses"
	charset     = "UTF-8"
)

const (
	initialInterval = 200 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
	maxRetries      = 4
)

type MailGateway struct {
	client  client
	retrier retrier
	from    string
}

func New(client client, from string) *MailGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		MaxRetries:      maxRetries,
		ShouldRetry:     isRetryable,
	}

	return &MailGateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		from:    from,
	}
}

// SendEmail отправляет текстовое письмо и возвращает идентификатор сообщения SES.
func (g *MailGateway) SendEmail(ctx context.Context, email entities.DeliveryEmail) (string, error) {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(g.from),
		Destination:      &types.Destination{ToAddresses: []string{email.ClientEmail}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(email.Subject), Charset: aws.String(charset)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(email.Body), Charset: aws.String(charset)},
				},
			},
		},
		EmailTags: []types.MessageTag{
			{Name: aws.String("delivery_id"), Value: aws.String(fmt.Sprintf("%d", email.DeliveryID))},
		},
	}

	var resp *sesv2.SendEmailOutput

	err := g.executeWithMetrics(ctx, "SendEmail", func(ctx context.Context) error {
		var err error
		resp, err = g.client.SendEmail(ctx, input)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("gateway ses, send email: %w", err)
	}

	return aws.ToString(resp.MessageId), nil
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	switch apiErr.ErrorCode() {
	case "TooManyRequestsException",
		"LimitExceededException",
		"InternalFailure",
		"ServiceUnavailable":
		return true
	default:
		return false
	}
}

func (g *MailGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := errorCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, code).Inc()
	}

	return err
}

func errorCode(err error) string {
	if err == nil {
		return "OK"
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return "UNKNOWN"
}
