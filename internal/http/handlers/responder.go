package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/preston-bernstein/lol-match-coach/internal/app/analysis"
	"github.com/preston-bernstein/lol-match-coach/internal/http/middleware"
	"github.com/preston-bernstein/lol-match-coach/internal/http/requestutil"
	"github.com/preston-bernstein/lol-match-coach/internal/logging"
	"github.com/preston-bernstein/lol-match-coach/internal/providers"
	"github.com/preston-bernstein/lol-match-coach/internal/resolver"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(requestutil.HeaderRequestID)
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// statusFor maps analysis failures onto HTTP statuses.
func statusFor(err error) int {
	if _, ok := providers.AsRateLimitError(err); ok {
		return http.StatusTooManyRequests
	}
	switch {
	case errors.Is(err, analysis.ErrEmptyReference),
		errors.Is(err, resolver.ErrUnrecognizedReference):
		return http.StatusBadRequest
	case errors.Is(err, resolver.ErrIdentityNotFound),
		errors.Is(err, resolver.ErrNoRecentMatches),
		errors.Is(err, resolver.ErrNoMatchingTimestamp),
		errors.Is(err, analysis.ErrMatchNotFound),
		errors.Is(err, providers.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, providers.ErrNotConfigured):
		return http.StatusServiceUnavailable
	case providers.IsTransportError(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeAnalysisError renders err with its mapped status. Server-side failures
// get a generic message; everything else echoes the typed error.
func writeAnalysisError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status := statusFor(err)
	message := err.Error()
	switch status {
	case http.StatusInternalServerError:
		message = "internal error"
	case http.StatusBadGateway:
		message = "upstream provider unavailable"
	case http.StatusTooManyRequests:
		if rl, ok := providers.AsRateLimitError(err); ok && rl.RetryAfter > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(int(rl.RetryAfter.Seconds()+0.5)))
		}
	}
	if status >= http.StatusInternalServerError {
		logging.Error(loggerFromContext(r, logger), "analysis failed", err, slog.Int(logging.FieldStatusCode, status))
	} else {
		logging.Info(loggerFromContext(r, logger), "analysis rejected", slog.Int(logging.FieldStatusCode, status), "err", err)
	}
	writeError(w, r, status, message, logger)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
