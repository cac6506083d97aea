package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/preston-bernstein/lol-match-coach/internal/app/analysis"
	"github.com/preston-bernstein/lol-match-coach/internal/domain/routing"
	"github.com/preston-bernstein/lol-match-coach/internal/narrative"
)

const maxBodyBytes = 64 << 10

// Analyzer runs one analysis.
type Analyzer interface {
	Analyze(ctx context.Context, req analysis.Request) (analysis.Result, error)
}

// ReadyFunc reports nil when the service can serve analyses.
type ReadyFunc func() error

// Handler wires HTTP routes to the analysis service.
type Handler struct {
	svc    Analyzer
	logger *slog.Logger
	ready  ReadyFunc
}

// NewHandler constructs a Handler. ready may be nil.
func NewHandler(svc Analyzer, logger *slog.Logger, ready ReadyFunc) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger,
		ready:  ready,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether upstream credentials are in place.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.ready != nil {
		if err := h.ready(); err != nil {
			writeError(w, r, http.StatusServiceUnavailable, err.Error(), h.logger)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// NotFound renders unknown routes as JSON.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed renders a wrong method on a known route as JSON.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}

type playerBody struct {
	GameName    string `json:"game_name"`
	TagLine     string `json:"tag_line"`
	DisplayName string `json:"display_name"`
}

type analyzeBody struct {
	MatchURL        string      `json:"match_url"`
	MatchID         string      `json:"match_id"`
	Platform        string      `json:"platform"`
	Player          *playerBody `json:"player"`
	Lang            string      `json:"lang"`
	UseAI           *bool       `json:"use_ai"`
	IncludeTimeline *bool       `json:"include_timeline"`
}

// request converts the body into an analysis request. use_ai and
// include_timeline default to true.
func (b analyzeBody) request() analysis.Request {
	ref := strings.TrimSpace(b.MatchURL)
	if ref == "" {
		ref = strings.TrimSpace(b.MatchID)
	}
	req := analysis.Request{
		Reference: ref,
		Platform:  routing.Normalize(b.Platform),
		Options: analysis.Options{
			UseAI:           b.UseAI == nil || *b.UseAI,
			IncludeTimeline: b.IncludeTimeline == nil || *b.IncludeTimeline,
			Lang:            narrative.ParseLang(b.Lang),
		},
	}
	if b.Player != nil {
		req.Player = analysis.Player{
			GameName:    strings.TrimSpace(b.Player.GameName),
			TagLine:     strings.TrimSpace(b.Player.TagLine),
			DisplayName: strings.TrimSpace(b.Player.DisplayName),
		}
	}
	return req
}

// Analyze handles POST /analyze.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	if h.svc == nil {
		writeError(w, r, http.StatusServiceUnavailable, "analysis not configured", h.logger)
		return
	}

	var body analyzeBody
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			writeError(w, r, http.StatusRequestEntityTooLarge, "request body too large", h.logger)
		case errors.Is(err, io.EOF):
			writeError(w, r, http.StatusBadRequest, "request body is required", h.logger)
		default:
			writeError(w, r, http.StatusBadRequest, "invalid JSON body", h.logger)
		}
		return
	}

	res, err := h.svc.Analyze(r.Context(), body.request())
	if err != nil {
		writeAnalysisError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, res, h.logger)
}
