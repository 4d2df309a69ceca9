// Package observability groups the catalog's logging and metrics support.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus collectors registered on an injectable registerer
//
// Example usage:
//
//	import (
//	    "magazine-catalog/internal/observability/logging"
//	    "magazine-catalog/internal/observability/metrics"
//	)
//
//	func build(reg prometheus.Registerer) error {
//	    logger := logging.New(os.Stdout, logging.FormatJSON, "info")
//	    m, err := metrics.NewCatalogMetrics(reg, "catalog")
//	    if err != nil {
//	        return err
//	    }
//	    logger.Info("catalog metrics ready")
//	    m.UpdateRegistrySizes(0, 0)
//	    return nil
//	}
package observability
