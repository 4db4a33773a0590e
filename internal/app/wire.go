//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"delivery-service/internal/gateway/ses"
	"delivery-service/internal/handlers/kafka-consumer/delivery_email_send"
	"delivery-service/internal/handlers/tasks/delivery_stats"
	"delivery-service/internal/pkg/config"
	"delivery-service/internal/pkg/kafka"

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
	"delivery-service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	notificationPool *background.Pool,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideTelephonePattern,
		provideStatsInterval,
		provideNotificationConfig,

		provideClientRepository,
		provideDeliveryRepository,

		provideLookup,
		provideServiceClient,
		provideServiceDelivery,
		provideDispatcher,
		provideServiceCompletion,

		provideDeliveryStatsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceClient), new(*clientService.Client)),
		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceCompletion), new(*completionService.Completion)),

		wire.Bind(new(lookupService.ClientRepository), new(*clientRepo.Repository)),
		wire.Bind(new(lookupService.DeliveryRepository), new(*deliveryRepo.Repository)),
		wire.Bind(new(clientService.Repository), new(*clientRepo.Repository)),
		wire.Bind(new(clientService.Lookup), new(*lookupService.Lookup)),
		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.Lookup), new(*lookupService.Lookup)),
		wire.Bind(new(completionService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(completionService.Lookup), new(*lookupService.Lookup)),
		wire.Bind(new(completionService.Dispatcher), new(*notificationService.Dispatcher)),
		wire.Bind(new(notificationService.Publisher), new(*kafka.Producer)),
		wire.Bind(new(notificationService.Pool), new(*background.Pool)),

		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),
		wire.Bind(new(completionService.TxManager), new(*tx.Manager)),

		wire.Bind(new(delivery_stats.Repository), new(*deliveryRepo.Repository)),
	)
	return &Application{}, nil
}

// InitializeMailWorkerApp для Kafka воркера (cmd/worker-delivery-email)
func InitializeMailWorkerApp(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Config,
) (*MailWorkerApp, error) {
	wire.Build(
		provideSESClient,
		provideMailGateway,
		provideMailService,
		provideDeliveryEmailHandler,

		wire.Bind(new(mailService.Gateway), new(*ses.MailGateway)),
		wire.Bind(new(delivery_email_send.Service), new(*mailService.Service)),

		wire.Struct(new(MailWorkerApp), "*"),
	)
	return nil, nil
}
