package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	Version     string
	Provider    string
	CORSOrigins []string
	Riot        RiotConfig
	Narrative   NarrativeConfig
	Metrics     MetricsConfig
	Log         LogConfig
}

// LogConfig selects logger verbosity and output format.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		Version:     envOrDefault(envVersion, defaultVersion),
		Provider:    envOrDefault(envProvider, defaultProvider),
		CORSOrigins: listEnvOrDefault(envCORSOrigins, []string{"*"}),
		Riot:        loadRiot(),
		Narrative:   loadNarrative(),
		Metrics:     loadMetrics(),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
	}
}

// LoadDotEnv populates the environment from the given files (".env" when none are given).
// Variables already set in the environment win; a missing file is not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}
