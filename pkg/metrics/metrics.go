package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Upstream calls (coingecko, gemini, rss)
	UpstreamCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crypto_advisor_upstream_calls_total",
			Help: "Total number of calls to upstream providers",
		},
		[]string{"provider", "status"}, // status: success|error
	)

	UpstreamLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "crypto_advisor_upstream_latency_seconds",
			Help:    "Upstream provider latency in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"provider"},
	)

	// Fallbacks served instead of live data
	Fallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crypto_advisor_fallbacks_total",
			Help: "Total number of responses served from fallback content",
		},
		[]string{"component"}, // component: market_data|chat_relay|news
	)

	Recommendations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crypto_advisor_recommendations_total",
			Help: "Total number of allocation recommendations computed",
		},
		[]string{"risk_profile", "sentiment"},
	)

	ChatMessages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crypto_advisor_chat_messages_total",
			Help: "Total number of chat messages handled",
		},
		[]string{"channel", "intent"}, // channel: advisor|assistant
	)

	MarketRefreshes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crypto_advisor_market_refreshes_total",
			Help: "Total number of market snapshot refreshes",
		},
		[]string{"result"}, // result: live|fallback|error
	)
)

var registerOnce sync.Once

// Register registers all collectors with the default registry. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			UpstreamCalls,
			UpstreamLatency,
			Fallbacks,
			Recommendations,
			ChatMessages,
			MarketRefreshes,
		)
	})
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Status maps an error to the status label used by the counters.
func Status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
