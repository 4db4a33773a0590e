package rate_limiter

import (
	"net/http"
	"strconv"

	"delivery-service/internal/generated/dto"
	"delivery-service/internal/handlers/rest/response"
	"delivery-service/internal/pkg/middlewares/metrics"
	"delivery-service/pkg/logger"

	"golang.org/x/time/rate"
)

const msgTooManyRequests = "Limite de requisições excedido"

// NewLimiter token bucket на qps запросов в секунду с запасом burst.
// qps <= 0 отключает ограничение.
func NewLimiter(qps, burst int) *rate.Limiter {
	if qps <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst <= 0 {
		burst = qps
	}
	return rate.NewLimiter(rate.Limit(qps), burst)
}

func Middleware(log handlerLogger, rateLimiterQPS int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := metrics.RouteTemplate(r)

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			RateLimitedRequestsTotal.WithLabelValues(r.Method, route).Inc()

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rateLimiterQPS))
			w.Header().Set("Retry-After", "1")
			response.JSON(w, log, http.StatusTooManyRequests, dto.Error{
				Message:     msgTooManyRequests,
				Description: "retry after 1s",
			})
		})
	}
}
