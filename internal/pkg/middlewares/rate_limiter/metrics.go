package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RateLimitedRequestsTotal запросы, отклоненные с 429.
var RateLimitedRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_rate_limited_total",
		Help: "Requests rejected with 429 by the token bucket limiter",
	},
	[]string{"method", "route"},
)
