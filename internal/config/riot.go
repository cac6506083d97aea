package config

import "strings"

// RiotConfig controls how we talk to the game-data provider.
type RiotConfig struct {
	APIKey             string
	BaseURL            string
	DefaultPlatform    string
	MatchCount         int
	LookupTimeout      Duration
	TimelineTimeout    Duration
	MaxRetries         int
	RetryBaseDelay     Duration
	RateLimitPerSecond float64
	CandidateWorkers   int
}

// Configured reports whether credentials are present.
func (c RiotConfig) Configured() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

func loadRiot() RiotConfig {
	count := intEnvOrDefault(envRiotMatchCount, defaultMatchCount)
	if count < minMatchCount {
		count = minMatchCount
	}
	return RiotConfig{
		APIKey:             envOrDefault(envRiotAPIKey, ""),
		BaseURL:            envOrDefault(envRiotBaseURL, defaultRiotBaseURL),
		DefaultPlatform:    strings.ToLower(envOrDefault(envRiotPlatform, defaultPlatform)),
		MatchCount:         count,
		LookupTimeout:      durationEnvOrDefault(envRiotLookupTimeout, defaultLookupTimeout),
		TimelineTimeout:    durationEnvOrDefault(envRiotTimelineTimeout, defaultTimelineTimeout),
		MaxRetries:         intEnvOrDefault(envRiotMaxRetries, defaultMaxRetries),
		RetryBaseDelay:     durationEnvOrDefault(envRiotRetryBase, defaultRetryBase),
		RateLimitPerSecond: floatEnvOrDefault(envRiotRateLimit, 0),
		CandidateWorkers:   intEnvOrDefault(envRiotConcurrency, defaultConcurrency),
	}
}
