package notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "delivery_notifications_total",
		Help: "Total number of delivery email notifications by result",
	},
	[]string{"result"}, // published, dropped, failed
)
