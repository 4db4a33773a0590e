package completion

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var DeliveryTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "delivery_transitions_total",
		Help: "Total number of delivery status transition attempts by outcome",
	},
	[]string{"action", "outcome"},
)
