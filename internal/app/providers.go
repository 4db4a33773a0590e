package app

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"delivery-service/internal/gateway/ses"
	"delivery-service/internal/handlers/kafka-consumer/delivery_email_send"
	"delivery-service/internal/handlers/tasks/delivery_stats"
	"delivery-service/internal/pkg/config"

	clientRepo "delivery-service/internal/repository/client"
	deliveryRepo "delivery-service/internal/repository/delivery"
	clientService "delivery-service/internal/service/client"
	completionService "delivery-service/internal/service/completion"
	deliveryService "delivery-service/internal/service/delivery"
	lookupService "delivery-service/internal/service/lookup"
	mailService "delivery-service/internal/service/mail"
	notificationService "delivery-service/internal/service/notification"

	"delivery-service/pkg/background"
	"delivery-service/pkg/logger"
	"delivery-service/pkg/querier"
	"delivery-service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/jackc/pgx/v5/pgxpool"
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideTelephonePattern(cfg *config.Config) (*regexp.Regexp, error) {
	pattern, err := regexp.Compile(cfg.Validation.TelephonePattern)
	if err != nil {
		return nil, fmt.Errorf("telephone pattern: %w", err)
	}
	return pattern, nil
}

func provideStatsInterval(cfg *config.Config) StatsInterval {
	return StatsInterval(cfg.Tasks.DeliveryStatsInterval)
}

func provideNotificationConfig(cfg *config.Config) notificationService.Config {
	return notificationService.Config{
		PublishTimeout: cfg.Notification.PublishTimeout,
		Retry:          notificationService.DefaultRetry(),
	}
}

func provideClientRepository(querier *querier.Querier) *clientRepo.Repository {
	return clientRepo.New(querier)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideLookup(
	clients lookupService.ClientRepository,
	deliveries lookupService.DeliveryRepository,
) *lookupService.Lookup {
	return lookupService.New(clients, deliveries)
}

func provideServiceClient(
	repository clientService.Repository,
	lookup clientService.Lookup,
	telephonePattern *regexp.Regexp,
) *clientService.Client {
	return clientService.New(repository, lookup, telephonePattern)
}

func provideServiceDelivery(
	repository deliveryService.Repository,
	lookup deliveryService.Lookup,
	txManager deliveryService.TxManager,
) *deliveryService.Delivery {
	return deliveryService.New(repository, lookup, txManager)
}

func provideDispatcher(
	log logger.Logger,
	publisher notificationService.Publisher,
	pool notificationService.Pool,
	cfg notificationService.Config,
) *notificationService.Dispatcher {
	return notificationService.New(log, publisher, pool, cfg)
}

func provideServiceCompletion(
	repository completionService.Repository,
	lookup completionService.Lookup,
	dispatcher completionService.Dispatcher,
	txManager completionService.TxManager,
) *completionService.Completion {
	return completionService.New(repository, lookup, dispatcher, txManager)
}

func provideDeliveryStatsTask(
	log logger.Logger,
	repository delivery_stats.Repository,
	interval StatsInterval,
) *delivery_stats.DeliveryStats {
	return delivery_stats.NewDeliveryStats(log, repository, time.Duration(interval))
}

func provideTaskList(
	deliveryStatsTask *delivery_stats.DeliveryStats,
) []background.Task {
	return []background.Task{
		deliveryStatsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

func provideSESClient(ctx context.Context, cfg *config.Config) (*sesv2.Client, error) {
	return ses.NewClient(ctx, &cfg.Mail)
}

func provideMailGateway(client *sesv2.Client, cfg *config.Config) *ses.MailGateway {
	return ses.New(client, cfg.Mail.From)
}

func provideMailService(gateway mailService.Gateway) *mailService.Service {
	return mailService.New(gateway)
}

func provideDeliveryEmailHandler(
	log logger.Logger,
	service delivery_email_send.Service,
	cfg *config.Config,
) *delivery_email_send.Handler {
	return delivery_email_send.New(log, service, cfg.Kafka.Handlers.DeliveryEmail.ProcessTimeout)
}
