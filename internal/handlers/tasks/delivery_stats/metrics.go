package delivery_stats

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var DeliveriesByStatus = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "deliveries_by_status",
		Help: "Number of deliveries in each status",
	},
	[]string{"status"},
)
