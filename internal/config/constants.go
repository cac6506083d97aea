package config

import "time"

const (
	envPort         = "PORT"
	envProvider     = "PROVIDER"
	envCORSOrigins  = "CORS_ALLOWED_ORIGINS"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envVersion      = "SERVICE_VERSION"

	envRiotAPIKey          = "RIOT_API_KEY"
	envRiotBaseURL         = "RIOT_BASE_URL"
	envRiotPlatform        = "RIOT_DEFAULT_PLATFORM"
	envRiotMatchCount      = "RIOT_MATCH_COUNT"
	envRiotLookupTimeout   = "RIOT_LOOKUP_TIMEOUT"
	envRiotTimelineTimeout = "RIOT_TIMELINE_TIMEOUT"
	envRiotMaxRetries      = "RIOT_MAX_RETRIES"
	envRiotRetryBase       = "RIOT_RETRY_BASE_DELAY"
	envRiotRateLimit       = "RIOT_RATE_LIMIT_RPS"
	envRiotConcurrency     = "RIOT_CANDIDATE_CONCURRENCY"

	envOpenAIKey     = "OPENAI_API_KEY"
	envOpenAIBaseURL = "OPENAI_BASE_URL"
	envOpenAIModel   = "OPENAI_MODEL"
	envOpenAITimeout = "OPENAI_TIMEOUT"

	defaultPort        = "4000"
	defaultProvider    = "riot"
	defaultMetricsPort = "9090"
	defaultServiceName = "lol-match-coach"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	defaultVersion     = "dev"

	defaultRiotBaseURL = "https://{route}.api.riotgames.com"
	defaultPlatform    = "euw1"
	// Resolution needs at least 20 recent matches to disambiguate by timestamp.
	minMatchCount          = 20
	defaultMatchCount      = 20
	defaultLookupTimeout   = 10 * time.Second
	defaultTimelineTimeout = 20 * time.Second
	defaultMaxRetries      = 2
	defaultRetryBase       = 500 * time.Millisecond
	defaultConcurrency     = 4

	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	defaultOpenAIModel   = "gpt-4"
	defaultOpenAITimeout = 60 * time.Second
)
