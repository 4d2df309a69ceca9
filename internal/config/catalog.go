package config

import (
	"fmt"
	"regexp"
	"strings"

	"magazine-catalog/internal/observability/logging"
	envconfig "magazine-catalog/pkg/config"
)

// metricsNamespacePattern matches a valid Prometheus metric name prefix.
var metricsNamespacePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// CatalogConfig holds the ambient settings for a catalog instance.
type CatalogConfig struct {
	// LogLevel is one of debug, info, warn, error. Default: "info"
	LogLevel string

	// LogFormat is "json" or "text". Default: "json"
	LogFormat string

	// MetricsEnabled controls whether Prometheus collectors are registered.
	// Default: true
	MetricsEnabled bool

	// MetricsNamespace prefixes every metric name. Default: "catalog"
	MetricsNamespace string
}

// DefaultCatalogConfig returns the configuration used when no environment is set.
func DefaultCatalogConfig() *CatalogConfig {
	return &CatalogConfig{
		LogLevel:         "info",
		LogFormat:        logging.FormatJSON,
		MetricsEnabled:   true,
		MetricsNamespace: "catalog",
	}
}

// LoadCatalogConfig loads catalog configuration from environment variables.
// Returns a config with defaults if environment variables are not set.
func LoadCatalogConfig() (*CatalogConfig, error) {
	def := DefaultCatalogConfig()
	config := &CatalogConfig{
		LogLevel:         envconfig.GetEnvString("LOG_LEVEL", def.LogLevel),
		LogFormat:        envconfig.GetEnvString("LOG_FORMAT", def.LogFormat),
		MetricsEnabled:   envconfig.GetEnvBool("CATALOG_METRICS_ENABLED", def.MetricsEnabled),
		MetricsNamespace: envconfig.GetEnvString("CATALOG_METRICS_NAMESPACE", def.MetricsNamespace),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog configuration: %w", err)
	}

	return config, nil
}

// Validate checks configuration correctness.
func (c *CatalogConfig) Validate() error {
	if !logging.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", c.LogLevel)
	}

	switch strings.ToLower(c.LogFormat) {
	case logging.FormatJSON, logging.FormatText:
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}

	if c.MetricsEnabled && !metricsNamespacePattern.MatchString(c.MetricsNamespace) {
		return fmt.Errorf("CATALOG_METRICS_NAMESPACE %q is not a valid metric name prefix", c.MetricsNamespace)
	}

	return nil
}
