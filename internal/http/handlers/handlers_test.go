package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/lol-match-coach/internal/app/analysis"
	"github.com/preston-bernstein/lol-match-coach/internal/domain/routing"
	"github.com/preston-bernstein/lol-match-coach/internal/http/middleware"
	"github.com/preston-bernstein/lol-match-coach/internal/narrative"
	"github.com/preston-bernstein/lol-match-coach/internal/resolver"
	"github.com/preston-bernstein/lol-match-coach/internal/testutil"
)

type analyzerFunc func(ctx context.Context, req analysis.Request) (analysis.Result, error)

func (f analyzerFunc) Analyze(ctx context.Context, req analysis.Request) (analysis.Result, error) {
	return f(ctx, req)
}

func newSampleHandler() *Handler {
	sp := testutil.SampleProvider()
	svc := analysis.NewService(resolver.New(sp, resolver.Config{}, nil), sp, nil, routing.DefaultTable(), nil, nil)
	return NewHandler(svc, nil, nil)
}

func TestHealth(t *testing.T) {
	h := NewHandler(nil, nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h := NewHandler(nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	req = req.WithContext(ctx)
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req)

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "shutting down" {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestReady(t *testing.T) {
	tests := []struct {
		name  string
		ready ReadyFunc
		want  int
	}{
		{name: "no_check", want: http.StatusOK},
		{name: "ready", ready: func() error { return nil }, want: http.StatusOK},
		{name: "missing_key", ready: func() error { return errors.New("RIOT_API_KEY not set") }, want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(nil, nil, tt.ready)
			rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
			testutil.AssertStatus(t, rr, tt.want)
		})
	}
}

func TestAnalyzeFixtureMatch(t *testing.T) {
	h := newSampleHandler()

	body := `{"match_url":"EUW1_1234567890","platform":"EUW1","use_ai":false,"lang":"en","player":{"game_name":"MidLaner"}}`
	rr := testutil.Serve(http.HandlerFunc(h.Analyze), http.MethodPost, "/analyze", strings.NewReader(body))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp analysis.Result
	testutil.DecodeJSON(t, rr, &resp)
	if resp.MatchID != "EUW1_1234567890" || resp.Platform != "euw1" {
		t.Fatalf("unexpected identity %s/%s", resp.MatchID, resp.Platform)
	}
	if resp.Player.Name != "MidLaner" || resp.NarrativeSource != analysis.SourceFallback {
		t.Fatalf("unexpected result %+v", resp)
	}
	if !strings.Contains(resp.Narrative, "KDA 9.00") || !strings.Contains(resp.Narrative, "CS/min 7.50") {
		t.Fatalf("unexpected narrative %q", resp.Narrative)
	}
	if resp.Timeline == nil || !resp.Timeline.Available {
		t.Fatalf("expected timeline by default, got %+v", resp.Timeline)
	}
}

func TestAnalyzeBodyDefaults(t *testing.T) {
	var got analysis.Request
	h := NewHandler(analyzerFunc(func(ctx context.Context, req analysis.Request) (analysis.Result, error) {
		got = req
		return analysis.Result{}, nil
	}), nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Analyze), http.MethodPost, "/analizar", strings.NewReader(`{"match_id":" EUW1_9 "}`))
	testutil.AssertStatus(t, rr, http.StatusOK)

	if got.Reference != "EUW1_9" || got.Platform != "" {
		t.Fatalf("unexpected reference %+v", got)
	}
	if !got.Options.UseAI || !got.Options.IncludeTimeline || got.Options.Lang != narrative.LangES {
		t.Fatalf("unexpected default options %+v", got.Options)
	}
}

func TestAnalyzeBadBodies(t *testing.T) {
	h := newSampleHandler()

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "empty", body: "", want: http.StatusBadRequest},
		{name: "malformed", body: "{", want: http.StatusBadRequest},
		{name: "too_large", body: `{"match_url":"` + strings.Repeat("a", maxBodyBytes) + `"}`, want: http.StatusRequestEntityTooLarge},
		{name: "missing_reference", body: `{}`, want: http.StatusBadRequest},
		{name: "unrecognized_reference", body: `{"match_url":"https://example.com/nothing"}`, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := testutil.Serve(http.HandlerFunc(h.Analyze), http.MethodPost, "/analyze", bytes.NewBufferString(tt.body))
			testutil.AssertStatus(t, rr, tt.want)
		})
	}
}

func TestAnalyzeErrorStatuses(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "match_missing", body: `{"match_url":"EUW1_42","use_ai":false}`, want: http.StatusNotFound},
		{name: "identity_missing", body: `{"match_url":"https://www.op.gg/summoners/euw/Ghost-EUW/matches"}`, want: http.StatusNotFound},
	}

	h := newSampleHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := testutil.Serve(http.HandlerFunc(h.Analyze), http.MethodPost, "/analyze", strings.NewReader(tt.body))
			testutil.AssertStatus(t, rr, tt.want)
		})
	}
}

func TestAnalyzeWithoutServiceIsUnavailable(t *testing.T) {
	h := NewHandler(nil, nil, nil)
	rr := testutil.Serve(http.HandlerFunc(h.Analyze), http.MethodPost, "/analyze", strings.NewReader(`{"match_url":"EUW1_1"}`))
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	h := NewHandler(nil, nil, nil)
	testutil.AssertStatus(t, testutil.Serve(http.HandlerFunc(h.NotFound), http.MethodGet, "/x", nil), http.StatusNotFound)
	testutil.AssertStatus(t, testutil.Serve(http.HandlerFunc(h.MethodNotAllowed), http.MethodPut, "/analyze", nil), http.StatusMethodNotAllowed)
}

func TestRequestIDPropagatesThroughMiddleware(t *testing.T) {
	h := newSampleHandler()

	mux := http.NewServeMux()
	mux.HandleFunc("/analyze", h.Analyze)
	wrapped := middleware.LoggingMiddleware(nil, nil, mux)

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{"match_url":"nope"}`))
	req.Header.Set("X-Request-ID", "req-123")
	rr := testutil.ServeRequest(wrapped, req)

	testutil.AssertStatus(t, rr, http.StatusBadRequest)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["requestId"] != "req-123" {
		t.Fatalf("expected request id in error body, got %+v", resp)
	}
}
