// Package metrics provides Prometheus metrics for catalog operations.
//
// Metrics are registered against a caller-supplied prometheus.Registerer so
// that several catalogs, or several tests, can each own their collectors.
//
// Example usage:
//
//	import "magazine-catalog/internal/observability/metrics"
//
//	reg := prometheus.NewRegistry()
//	m, err := metrics.NewCatalogMetrics(reg, "catalog")
//	if err != nil {
//	    return err
//	}
//	m.RecordCreated(metrics.KindArticle)
package metrics
