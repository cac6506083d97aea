package narrative

import "strings"

// Lang selects prompt and fallback wording.
type Lang string

const (
	LangES Lang = "es"
	LangEN Lang = "en"
)

// ParseLang accepts "es" or "en" (any case, optional region suffix); anything else is Spanish.
func ParseLang(raw string) Lang {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if base, _, ok := strings.Cut(raw, "-"); ok {
		raw = base
	}
	if raw == string(LangEN) {
		return LangEN
	}
	return LangES
}
