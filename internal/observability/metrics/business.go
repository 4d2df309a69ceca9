package metrics

import (
	"errors"

	"magazine-catalog/internal/domain/entity"
)

// RecordCreated records a successful construction of the given kind.
func (m *CatalogMetrics) RecordCreated(kind string) {
	if m == nil {
		return
	}
	m.EntitiesCreated.WithLabelValues(kind).Inc()
}

// RecordValidationFailure records a rejected construction.
// The field label comes from the ValidationError when there is one, "unknown" otherwise.
func (m *CatalogMetrics) RecordValidationFailure(kind string, err error) {
	if m == nil {
		return
	}
	field := "unknown"
	var validationErr *entity.ValidationError
	if errors.As(err, &validationErr) {
		field = validationErr.Field
	}
	m.ValidationFailures.WithLabelValues(kind, field).Inc()
}

// UpdateRegistrySizes sets the registry gauges to the current counts.
func (m *CatalogMetrics) UpdateRegistrySizes(articles, magazines int) {
	if m == nil {
		return
	}
	m.RegisteredArticles.Set(float64(articles))
	m.RegisteredMagazines.Set(float64(magazines))
}

// RecordReset records an explicit registry reset.
func (m *CatalogMetrics) RecordReset() {
	if m == nil {
		return
	}
	m.RegistryResets.Inc()
}
