package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Entity kinds used as label values.
const (
	KindAuthor   = "author"
	KindMagazine = "magazine"
	KindArticle  = "article"
)

// CatalogMetrics holds the collectors for one catalog.
// A nil *CatalogMetrics is valid and records nothing.
type CatalogMetrics struct {
	// EntitiesCreated counts successful constructions by kind
	EntitiesCreated *prometheus.CounterVec

	// ValidationFailures counts rejected constructions by kind and failing field
	ValidationFailures *prometheus.CounterVec

	// RegisteredArticles tracks the size of the article registry
	RegisteredArticles prometheus.Gauge

	// RegisteredMagazines tracks the size of the magazine registry
	RegisteredMagazines prometheus.Gauge

	// RegistryResets counts explicit registry resets
	RegistryResets prometheus.Counter
}

// ErrNoRegisterer is returned by NewCatalogMetrics when reg is nil.
var ErrNoRegisterer = errors.New("prometheus registerer is required")

// NewCatalogMetrics creates the catalog collectors and registers them with reg.
// It returns an error if reg is nil or any collector is already registered.
func NewCatalogMetrics(reg prometheus.Registerer, namespace string) (*CatalogMetrics, error) {
	if reg == nil {
		return nil, ErrNoRegisterer
	}
	m := &CatalogMetrics{
		EntitiesCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "entities_created_total",
				Help:      "Total number of authors, magazines and articles created",
			},
			[]string{"kind"},
		),
		ValidationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_failures_total",
				Help:      "Total number of rejected constructions",
			},
			[]string{"kind", "field"},
		),
		RegisteredArticles: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "registered_articles",
				Help:      "Number of articles currently in the article registry",
			},
		),
		RegisteredMagazines: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "registered_magazines",
				Help:      "Number of magazines currently in the magazine registry",
			},
		),
		RegistryResets: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "registry_resets_total",
				Help:      "Total number of registry resets",
			},
		),
	}

	collectors := []prometheus.Collector{
		m.EntitiesCreated,
		m.ValidationFailures,
		m.RegisteredArticles,
		m.RegisteredMagazines,
		m.RegistryResets,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register catalog metrics: %w", err)
		}
	}
	return m, nil
}
