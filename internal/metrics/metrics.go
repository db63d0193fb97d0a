// Package metrics exposes Prometheus collectors for the API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bolao_http_requests_total",
		Help: "Total HTTP requests processed, labeled by status code",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bolao_http_request_duration_seconds",
		Help:    "Latency distribution of HTTP requests",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
	}, []string{"method", "route"})

	reconcileTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bolao_statement_imports_total",
		Help: "Statement imports, labeled by the analyzer that classified them",
	}, []string{"path"})

	importedTransactions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bolao_imported_transactions_total",
		Help: "Classified statement rows, labeled by status",
	}, []string{"status"})

	moderationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bolao_comment_moderation_total",
		Help: "Comment moderation decisions, labeled by moderator and outcome",
	}, []string{"moderator", "approved"})

	agentExecutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bolao_agent_executions_total",
		Help: "Agent executions, labeled by agent type and outcome",
	}, []string{"type", "status"})
)

// ObserveImport records one statement import and its rows per status.
func ObserveImport(path string, statuses map[string]int) {
	reconcileTotal.WithLabelValues(path).Inc()

	for status, n := range statuses {
		importedTransactions.WithLabelValues(status).Add(float64(n))
	}
}

func ObserveModeration(moderator string, approved bool) {
	moderationTotal.WithLabelValues(moderator, strconv.FormatBool(approved)).Inc()
}

func ObserveAgent(agentType, status string) {
	agentExecutions.WithLabelValues(agentType, status).Inc()
}

// Middleware records request counts and latency per chi route pattern.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}
