package locale

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors updated while locales are built.
// A nil *Metrics records nothing.
type Metrics struct {
	BackendInstalls        *prometheus.CounterVec
	BackendInstallsSkipped *prometheus.CounterVec
	GeneratorCacheHits     prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg. A nil
// registerer leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		BackendInstalls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "locale_backend_installs_total",
			Help: "Total number of facets installed, by backend and category",
		}, []string{"backend", "category"}),
		BackendInstallsSkipped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "locale_backend_install_skipped_total",
			Help: "Total number of categories left without a facet",
		}, []string{"category"}),
		GeneratorCacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "locale_generator_cache_hits_total",
			Help: "Total number of locales served from the generator cache",
		}),
	}
}

func (m *Metrics) installed(backend string, category Category) {
	if m == nil {
		return
	}
	m.BackendInstalls.WithLabelValues(backend, category.String()).Inc()
}

func (m *Metrics) installSkipped(category Category) {
	if m == nil {
		return
	}
	m.BackendInstallsSkipped.WithLabelValues(category.String()).Inc()
}

func (m *Metrics) cacheHit() {
	if m == nil {
		return
	}
	m.GeneratorCacheHits.Inc()
}
