package app

import (
	"time"

	"delivery-service/internal/handlers/kafka-consumer/delivery_email_send"
	client_delete "delivery-service/internal/handlers/rest/client_delete"
	client_get "delivery-service/internal/handlers/rest/client_get"
	client_post "delivery-service/internal/handlers/rest/client_post"
	client_put "delivery-service/internal/handlers/rest/client_put"
	clients_get "delivery-service/internal/handlers/rest/clients_get"
	deliveries_get "delivery-service/internal/handlers/rest/deliveries_get"
	delivery_cancel_put "delivery-service/internal/handlers/rest/delivery_cancel_put"
	delivery_complete_put "delivery-service/internal/handlers/rest/delivery_complete_put"
	delivery_get "delivery-service/internal/handlers/rest/delivery_get"
	delivery_post "delivery-service/internal/handlers/rest/delivery_post"
	delivery_put "delivery-service/internal/handlers/rest/delivery_put"
	occurrences_get "delivery-service/internal/handlers/rest/occurrences_get"
	"delivery-service/pkg/background"
)

type (
	StatsInterval time.Duration
)

type Application struct {
	ServiceClient     ServiceClient
	ServiceDelivery   ServiceDelivery
	ServiceCompletion ServiceCompletion
	BackgroundWorkers *background.Worker
}

type ServiceClient interface {
	client_get.Service
	clients_get.Service
	client_post.Service
	client_put.Service
	client_delete.Service
}

type ServiceDelivery interface {
	delivery_get.Service
	deliveries_get.Service
	delivery_post.Service
	delivery_put.Service
	occurrences_get.Service
}

type ServiceCompletion interface {
	delivery_complete_put.Service
	delivery_cancel_put.Service
}

type MailWorkerApp struct {
	Handler *delivery_email_send.Handler
}
