package metrics

import (
	"net/http"
	"strconv"
	"time"

	"delivery-service/pkg/logger"

	"github.com/gorilla/mux"
)

// Middleware пишет метрики и access log. Маршрут берется из шаблона mux,
// чтобы /clients/1 и /clients/2 попадали в одну серию.
func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			statusCode := strconv.Itoa(rw.statusCode)
			route := RouteTemplate(r)

			HTTPRequestDuration.WithLabelValues(r.Method, route, statusCode).Observe(duration.Seconds())
			HTTPRequestTotal.WithLabelValues(r.Method, route, statusCode).Inc()

			reqLog := log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", route),
				logger.NewField("status", rw.statusCode),
				logger.NewField("duration", duration.String()),
			)
			if rw.statusCode >= http.StatusInternalServerError {
				reqLog.Warn("HTTP request failed")
				return
			}
			reqLog.Info("HTTP request")
		})
	}
}

// RouteTemplate возвращает шаблон маршрута mux или путь, если маршрут не найден.
func RouteTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route != nil {
		if template, err := route.GetPathTemplate(); err == nil {
			return template
		}
	}
	return r.URL.Path
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
