package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	StoreOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "reserva", Name: "store_ops_total", Help: "Store operations."},
		[]string{"op"},
	)
	PersistLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "reserva", Name: "persist_duration_seconds",
			Help:    "Full three-collection persist cycle duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
	)
	GatewayEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "reserva", Name: "gateway_events_total", Help: "Gateway saves/loads/corruptions."},
		[]string{"backend", "event"}, // event: save|load|corrupt|write_error
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "reserva", Name: "cache_events_total", Help: "Projection cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(StoreOps, PersistLatency, GatewayEvents, CacheEvents)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveOp(op string) { StoreOps.WithLabelValues(op).Inc() }

func ObservePersist(dur time.Duration) { PersistLatency.Observe(dur.Seconds()) }

func ObserveGateway(backend, event string) { GatewayEvents.WithLabelValues(backend, event).Inc() }

func ObserveCache(cache, event string) { CacheEvents.WithLabelValues(cache, event).Inc() }
