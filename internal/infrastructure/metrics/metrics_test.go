package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/na2na-p/atelier/internal/usecase"
)

func TestMetrics_RecordProxyOutcome(t *testing.T) {
	m := New(nil)

	m.RecordProxyOutcome("ok")
	m.RecordProxyOutcome("ok")
	m.RecordProxyOutcome("timeout")

	tests := []struct {
		name    string
		outcome string
		want    float64
	}{
		{name: "正常系: okは2回", outcome: "ok", want: 2},
		{name: "正常系: timeoutは1回", outcome: "timeout", want: 1},
		{name: "正常系: 記録されていない結果は0", outcome: "too_large", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := testutil.ToFloat64(m.proxyRequests.WithLabelValues(tt.outcome)); got != tt.want {
				t.Errorf("proxy requests{outcome=%q} = %v, want %v", tt.outcome, got, tt.want)
			}
		})
	}
}

func TestMetrics_ObserveTTLLookup(t *testing.T) {
	m := New(nil)

	m.ObserveTTLLookup(usecase.TTLSourceMemo)
	m.ObserveTTLLookup(usecase.TTLSourceStore)
	m.ObserveTTLLookup(usecase.TTLSourceMemo)

	expected := `
# HELP atelier_cache_ttl_lookups_total Total number of cache TTL lookups by source
# TYPE atelier_cache_ttl_lookups_total counter
atelier_cache_ttl_lookups_total{source="memo"} 2
atelier_cache_ttl_lookups_total{source="store"} 1
`
	if err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "atelier_cache_ttl_lookups_total"); err != nil {
		t.Errorf("unexpected metrics:\n%v", err)
	}
}

func TestMetrics_ObserveSlugLookup(t *testing.T) {
	m := New(nil)

	m.ObserveSlugLookup("local")
	m.ObserveSlugLookup("database")
	m.ObserveSlugLookup("database")

	if got := testutil.ToFloat64(m.slugLookups.WithLabelValues("database")); got != 2 {
		t.Errorf("slug lookups{tier=database} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.slugLookups.WithLabelValues("local")); got != 1 {
		t.Errorf("slug lookups{tier=local} = %v, want 1", got)
	}
}

func TestMetrics_UpstreamDuration(t *testing.T) {
	m := New(nil)

	m.UpstreamDuration().Observe(0.25)

	if got := testutil.CollectAndCount(m.upstreamDuration, "atelier_image_proxy_upstream_duration_seconds"); got != 1 {
		t.Errorf("CollectAndCount() = %d, want 1", got)
	}
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	// 同じ名前のコレクタでも別レジストリなら登録できる
	a := New(prometheus.NewRegistry())
	b := New(prometheus.NewRegistry())

	a.RecordProxyOutcome("ok")
	if got := testutil.ToFloat64(b.proxyRequests.WithLabelValues("ok")); got != 0 {
		t.Errorf("registry b observed %v, want 0", got)
	}
}

func TestMetrics_RegisterRuntimeCollectors(t *testing.T) {
	m := New(nil)

	if err := m.RegisterRuntimeCollectors(); err != nil {
		t.Fatalf("RegisterRuntimeCollectors() error: %v", err)
	}
	if err := m.RegisterRuntimeCollectors(); err == nil {
		t.Error("second RegisterRuntimeCollectors() expected AlreadyRegistered error")
	}
}
