package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "hackhub_http_requests_total", Help: "Total HTTP requests by route, method and status"},
		[]string{"route", "method", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "hackhub_http_request_duration_seconds", Help: "HTTP request latency by route", Buckets: prometheus.DefBuckets},
		[]string{"route", "method"},
	)
	PublishedEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "hackhub_events_published_total", Help: "Account events published to Kafka"},
		[]string{"type"},
	)
	FailedEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "hackhub_events_failed_total", Help: "Account events that could not be published"},
		[]string{"type"},
	)
	RevokedTokens = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "hackhub_tokens_revoked_total", Help: "Tokens revoked on logout"},
	)
)

func Register() {
	prometheus.MustRegister(HTTPRequests, HTTPDuration, PublishedEvents, FailedEvents, RevokedTokens)
}
