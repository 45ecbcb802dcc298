// Package metrics はatelierのPrometheusメトリクスを提供する
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/na2na-p/atelier/internal/usecase"
)

const namespace = "atelier"

var _ usecase.TTLLookupObserver = (*Metrics)(nil)

type Metrics struct {
	registry         *prometheus.Registry
	proxyRequests    *prometheus.CounterVec
	upstreamDuration prometheus.Histogram
	ttlLookups       *prometheus.CounterVec
	slugLookups      *prometheus.CounterVec
}

// New はregistryにコレクタを登録する。registryがnilなら新しく作る。
func New(registry *prometheus.Registry) *Metrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		proxyRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "image_proxy_requests_total",
				Help:      "Total number of image proxy requests by outcome",
			},
			[]string{"outcome"},
		),
		upstreamDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "image_proxy_upstream_duration_seconds",
				Help:      "Duration of upstream image fetches in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),
		ttlLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_ttl_lookups_total",
				Help:      "Total number of cache TTL lookups by source",
			},
			[]string{"source"},
		),
		slugLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "slug_cache_lookups_total",
				Help:      "Total number of slug to id lookups by resolving tier",
			},
			[]string{"tier"},
		),
	}
}

// RegisterRuntimeCollectors はGoランタイムとプロセスのコレクタを追加する
func (m *Metrics) RegisterRuntimeCollectors() error {
	if err := m.registry.Register(collectors.NewGoCollector()); err != nil {
		return err
	}
	return m.registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) RecordProxyOutcome(outcome string) {
	m.proxyRequests.WithLabelValues(outcome).Inc()
}

func (m *Metrics) UpstreamDuration() prometheus.Observer {
	return m.upstreamDuration
}

func (m *Metrics) ObserveTTLLookup(source usecase.TTLSource) {
	m.ttlLookups.WithLabelValues(string(source)).Inc()
}

func (m *Metrics) ObserveSlugLookup(tier string) {
	m.slugLookups.WithLabelValues(tier).Inc()
}
