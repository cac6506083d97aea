package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
	byOperation     map[string]int
	byResult        map[string]int
}

type analysisStats struct {
	byOutcome  map[string]int
	narratives map[string]int
}

// Recorder keeps in-memory counters for upstream calls and analyses and
// forwards them to OpenTelemetry when configured. A nil Recorder drops everything.
type Recorder struct {
	mu       sync.Mutex
	stats    map[string]*providerStats
	analysis analysisStats
	otel     *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		analysis: analysisStats{
			byOutcome:  make(map[string]int),
			narratives: make(map[string]int),
		},
		otel: otel,
	}
}

// RecordProviderAttempt counts one upstream call. operation names the
// endpoint family (lookup_puuid, fetch_match, ...) and result is ResultOK or
// a failure class such as "not_found" or "rate_limited".
func (r *Recorder) RecordProviderAttempt(provider, operation, result string, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.statsFor(provider)
	stats.calls++
	stats.lastCallLatency = duration
	stats.byOperation[operation]++
	stats.byResult[result]++
	if result != ResultOK {
		stats.errors++
	}
	r.mu.Unlock()

	r.otel.recordProviderAttempt(provider, operation, result, duration)
}

// RecordRateLimit tracks a 429 from a provider and the Retry-After it carried.
func (r *Recorder) RecordRateLimit(provider, operation string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.statsFor(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	r.otel.recordRateLimit(provider, operation, retryAfter)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// OperationCalls returns the attempts recorded for one operation of a provider.
func (r *Recorder) OperationCalls(provider, operation string) int {
	return r.Snapshot(provider).ByOperation[operation]
}

// ProviderResults returns how many attempts ended with the given result.
func (r *Recorder) ProviderResults(provider, result string) int {
	return r.Snapshot(provider).ByResult[result]
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot is a copy of the counters for one provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
	ByOperation     map[string]int
	ByResult        map[string]int
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
		ByOperation:     copyCounts(stats.byOperation),
		ByResult:        copyCounts(stats.byResult),
	}
}

// RecordHTTPRequest tracks inbound request counts and latency.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordAnalysis counts a finished analysis under its outcome ("ok" or an error class).
func (r *Recorder) RecordAnalysis(outcome string, duration time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.analysis.byOutcome[outcome]++
	r.mu.Unlock()
	r.otel.recordAnalysis(outcome, duration)
}

// RecordNarrative counts which source produced the narrative text.
func (r *Recorder) RecordNarrative(source string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.analysis.narratives[source]++
	r.mu.Unlock()
	r.otel.recordNarrative(source)
}

// Analyses returns the number of analyses recorded with the given outcome.
func (r *Recorder) Analyses(outcome string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.analysis.byOutcome[outcome]
}

// Narratives returns how many narratives came from the given source.
func (r *Recorder) Narratives(source string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.analysis.narratives[source]
}

// statsFor must be called with r.mu held.
func (r *Recorder) statsFor(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{
			byOperation: make(map[string]int),
			byResult:    make(map[string]int),
		}
		r.stats[provider] = stats
	}
	return stats
}

func copyCounts(src map[string]int) map[string]int {
	out := make(map[string]int, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
