package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	conversionsRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "conversions_recorded_total",
			Help: "Total number of claimed offers recorded",
		},
	)

	scansRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scans_recorded_total",
			Help: "Total number of QR scans, by whether the event was stored",
		},
		[]string{"recorded"},
	)

	contactEmails = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_emails_total",
			Help: "Total number of contact form emails, by outcome",
		},
		[]string{"status"},
	)

	qrRenders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qr_renders_total",
			Help: "Total number of QR code renders, by outcome",
		},
		[]string{"status"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)
		path := routePattern(r)

		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

// routePattern keeps slugs out of label values.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

func RecordConversion() {
	conversionsRecorded.Inc()
}

func RecordScan(recorded bool) {
	scansRecorded.WithLabelValues(strconv.FormatBool(recorded)).Inc()
}

func RecordContactEmail(sent bool) {
	status := "sent"
	if !sent {
		status = "failed"
	}
	contactEmails.WithLabelValues(status).Inc()
}

func RecordQRRender(ok bool) {
	status := "ok"
	if !ok {
		status = "error"
	}
	qrRenders.WithLabelValues(status).Inc()
}
