package logging

import "log/slog"

// Structured log keys. Keep these stable; dashboards filter on them.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldDurationMS = "duration_ms"

	FieldMatchID   = "match_id"
	FieldPlatform  = "platform"
	FieldGameName  = "game_name"
	FieldTagLine   = "tag_line"
	FieldTarget    = "target"
	FieldNarrative = "narrative_source"
	FieldLang      = "lang"

	FieldOperation = "operation"
	FieldAttempt   = "attempt"
	FieldCount     = "count"
)

// WithCommon appends service/version fields when provided.
func WithCommon(attrs []slog.Attr, service, version string) []slog.Attr {
	if service != "" {
		attrs = append(attrs, slog.String(FieldService, service))
	}
	if version != "" {
		attrs = append(attrs, slog.String(FieldVersion, version))
	}
	return attrs
}

// MatchScope returns logger with the match id and platform attached.
// Empty values are skipped; a nil logger stays nil.
func MatchScope(logger *slog.Logger, matchID, platform string) *slog.Logger {
	if logger == nil {
		return nil
	}
	var args []any
	if matchID != "" {
		args = append(args, slog.String(FieldMatchID, matchID))
	}
	if platform != "" {
		args = append(args, slog.String(FieldPlatform, platform))
	}
	if len(args) == 0 {
		return logger
	}
	return logger.With(args...)
}
