package config

import "strings"

// MetricsConfig controls the /metrics listener and the optional OTLP push.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Addr is the listen address for the metrics server. Port may be given
// with or without a leading colon.
func (m MetricsConfig) Addr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(m.Port), ":")
}

// Pushes reports whether an OTLP collector endpoint is configured.
func (m MetricsConfig) Pushes() bool {
	return m.OtlpEndpoint != ""
}

func loadMetrics() MetricsConfig {
	cfg := MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, true),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		ServiceName:  envOrDefault(envOtelService, defaultServiceName),
		OtlpEndpoint: strings.TrimSpace(envOrDefault(envOtelEndpoint, "")),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
	// The exporter takes host:port; strip a scheme if one was pasted in.
	for _, scheme := range []string{"http://", "https://"} {
		cfg.OtlpEndpoint = strings.TrimPrefix(cfg.OtlpEndpoint, scheme)
	}
	return cfg
}
