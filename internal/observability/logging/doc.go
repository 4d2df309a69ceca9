// Package logging provides structured logging utilities built on log/slog.
//
// Key features:
//   - JSON and text output formats
//   - Level parsing from configuration strings
//   - Entity-scoped child loggers
//   - A discard logger for callers that do not want output
//
// Example usage:
//
//	import "magazine-catalog/internal/observability/logging"
//
//	logger := logging.New(os.Stdout, "json", "info")
//	logger.Info("catalog ready", slog.Int("articles", 0))
package logging
