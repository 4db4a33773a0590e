package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Метрики
var (
	scenariosTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_scenarios_total",
		Help: "Количество прогонов сценария по результату",
	}, []string{"outcome"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "traffic_request_duration_seconds",
		Help:    "Длительность запроса к delivery-service",
		Buckets: []float64{0.01, 0.05, 0.1, 0.3, 0.5, 1, 2},
	}, []string{"step", "status"})
)

var names = []string{"Maria Silva", "Joao Souza", "Ana Pereira", "Carlos Lima", "Beatriz Costa"}

type created struct {
	ID int64 `json:"id"`
}

type generator struct {
	baseURL string
	client  *http.Client
}

func (g *generator) do(step, method, path string, body any, out any) error {
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			return fmt.Errorf("encode %s: %w", step, err)
		}
	}

	req, err := http.NewRequest(method, g.baseURL+path, &payload)
	if err != nil {
		return fmt.Errorf("request %s: %w", step, err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		requestDuration.WithLabelValues(step, "error").Observe(time.Since(start).Seconds())
		return fmt.Errorf("do %s: %w", step, err)
	}
	defer resp.Body.Close()
	requestDuration.WithLabelValues(step, strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%s: status %d", step, resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s: %w", step, err)
		}
	}
	return nil
}

// scenario создает клиента и доставку, затем завершает или отменяет ее.
func (g *generator) scenario() string {
	var client created
	err := g.do("client_post", http.MethodPost, "/clients", map[string]string{
		"name":      names[rand.IntN(len(names))],
		"email":     fmt.Sprintf("load-%d@example.com", time.Now().UnixNano()),
		"telephone": "(11) 91234-5678",
	}, &client)
	if err != nil {
		log.Print(err)
		return "failed"
	}

	var delivery created
	err = g.do("delivery_post", http.MethodPost, "/deliveries", map[string]any{
		"clientId":              client.ID,
		"recipientName":         names[rand.IntN(len(names))],
		"recipientStreet":       "Rua das Flores",
		"recipientNumber":       strconv.Itoa(1 + rand.IntN(999)),
		"recipientNeighborhood": "Centro",
		"tax":                   float64(rand.IntN(5000)) / 100,
	}, &delivery)
	if err != nil {
		log.Print(err)
		return "failed"
	}

	action := "complete"
	if rand.IntN(4) == 0 {
		action = "cancel"
	}
	path := fmt.Sprintf("/deliveries/%d/%s", delivery.ID, action)
	if err := g.do("delivery_"+action, http.MethodPut, path, nil, nil); err != nil {
		log.Print(err)
		return "failed"
	}
	return action
}

func main() {
	baseURL := os.Getenv("TARGET_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Print(http.ListenAndServe(":2112", nil)) //nolint:gosec // локальный генератор нагрузки
	}()

	g := &generator{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}

	for {
		scenariosTotal.WithLabelValues(g.scenario()).Inc()
		time.Sleep(time.Duration(500+rand.IntN(1500)) * time.Millisecond)
	}
}
