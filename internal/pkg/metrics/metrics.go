package metrics

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "escort"

var (
	MatchesServed = promauto.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "matches_served_total", Help: "Candidate lists returned by the matcher"})
	MatchLatency  = promauto.NewHistogram(prometheus.HistogramOpts{Namespace: namespace, Name: "match_latency_seconds", Help: "Matcher latency in seconds", Buckets: prometheus.DefBuckets})

	SessionsCreated = promauto.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "sessions_created_total", Help: "Sessions created"})
	Transitions     = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "session_transitions_total", Help: "Session transition attempts"},
		[]string{"to", "result"},
	)
	AutoCompleted = promauto.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "sessions_auto_completed_total", Help: "Sessions completed by the sweeper"})

	LocationReports = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "location_reports_total", Help: "Live location reports"},
		[]string{"result"},
	)

	FanoutDelivered = promauto.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "fanout_delivered_total", Help: "Update events queued to subscribers"})
	FanoutDropped   = promauto.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "fanout_dropped_total", Help: "Subscribers dropped because of a full or closed queue"})
	Subscribers     = promauto.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: "update_subscribers", Help: "Connected update subscribers"})
)

// Register mounts the Prometheus scrape endpoint
func Register(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
