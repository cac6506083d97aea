package server

import (
	"time"

	"github.com/preston-bernstein/lol-match-coach/internal/config"
)

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 10 * time.Second
	idleTimeout       = 60 * time.Second
	// writeSlack covers encoding and middleware on top of the upstream call chain.
	writeSlack = 15 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

// writeTimeout must outlast one analysis: lookup, listing, match, timeline and narrative calls.
func writeTimeout(cfg config.Config) time.Duration {
	lookup := cfg.Riot.LookupTimeout
	if lookup <= 0 {
		lookup = 10 * time.Second
	}
	return 3*lookup + cfg.Riot.TimelineTimeout + cfg.Narrative.Timeout + writeSlack
}
