package narrative

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/preston-bernstein/lol-match-coach/internal/domain/stats"
)

type generatorFunc func(ctx context.Context, prompt string) (string, error)

func (f generatorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func f64(v float64) *float64 { return &v }
func intp(v int) *int        { return &v }

func sampleInput(lang Lang) Input {
	return Input{
		MatchID: "EUW1_42",
		Lang:    lang,
		Metrics: stats.PlayerMetrics{
			Name:                 "MidLaner",
			Champion:             "Ahri",
			Lane:                 "MIDDLE",
			Win:                  true,
			Kills:                8,
			Deaths:               2,
			Assists:              10,
			KDA:                  9,
			CreepScore:           225,
			CSPerMin:             f64(7.5),
			GoldPerMin:           f64(450),
			KillParticipationPct: f64(66.7),
			Opponent:             &stats.OpponentRef{Name: "RedMid", Champion: "Zed"},
		},
		Timeline: &stats.TimelineSummary{
			Available:    true,
			CSAt10:       intp(80),
			GoldDiffAt10: intp(400),
			KillsAt:      []float64{6.5},
		},
	}
}

func TestComposeReturnsGeneratedText(t *testing.T) {
	var gotPrompt string
	c := NewComposer(generatorFunc(func(ctx context.Context, prompt string) (string, error) {
		gotPrompt = prompt
		return "Buen farmeo.", nil
	}), nil)

	text, err := c.Compose(context.Background(), sampleInput(LangES))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if text != "Buen farmeo." {
		t.Fatalf("unexpected text %q", text)
	}
	for _, want := range []string{"EUW1_42", "MidLaner", "Ahri", "9.00", "7.50", "RedMid", "6.5"} {
		if !strings.Contains(gotPrompt, want) {
			t.Fatalf("expected prompt to contain %q:\n%s", want, gotPrompt)
		}
	}
}

func TestComposeWrapsEveryFailure(t *testing.T) {
	timeout := context.DeadlineExceeded
	tests := []struct {
		name     string
		composer *Composer
		cause    error
	}{
		{name: "nil_generator", composer: NewComposer(nil, nil), cause: ErrNotConfigured},
		{
			name: "generator_error",
			composer: NewComposer(generatorFunc(func(context.Context, string) (string, error) {
				return "", timeout
			}), nil),
			cause: timeout,
		},
		{
			name: "generator_panic",
			composer: NewComposer(generatorFunc(func(context.Context, string) (string, error) {
				panic("boom")
			}), nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := tt.composer.Compose(context.Background(), sampleInput(LangEN))
			if !errors.Is(err, ErrGenerationFailed) {
				t.Fatalf("expected ErrGenerationFailed, got %v", err)
			}
			if tt.cause != nil && !errors.Is(err, tt.cause) {
				t.Fatalf("expected cause %v, got %v", tt.cause, err)
			}
			if text != "" {
				t.Fatalf("expected empty text on failure, got %q", text)
			}
		})
	}
}

func TestFallbackEmbedsKDAAndCSPerMin(t *testing.T) {
	tests := []struct {
		lang  Lang
		words []string
	}{
		{lang: LangES, words: []string{"KDA 9.00", "CS/min 7.50", "oro/min 450.00", "asesinatos 66.7%", "CS a los 10: 80"}},
		{lang: LangEN, words: []string{"KDA 9.00", "CS/min 7.50", "gold/min 450.00", "kill participation 66.7%", "gold difference at 10: 400"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.lang), func(t *testing.T) {
			text := Fallback(sampleInput(tt.lang))
			for _, w := range tt.words {
				if !strings.Contains(text, w) {
					t.Fatalf("expected %q in %q", w, text)
				}
			}
		})
	}
}

func TestFallbackMarksMissingValues(t *testing.T) {
	in := sampleInput(LangES)
	in.Metrics.CSPerMin = nil
	in.Timeline = nil

	text := Fallback(in)
	if !strings.Contains(text, "CS/min n/d") {
		t.Fatalf("expected missing marker, got %q", text)
	}
	if strings.Contains(text, "CS a los 10") {
		t.Fatalf("expected no timeline clause without a timeline, got %q", text)
	}
}

func TestParseLang(t *testing.T) {
	cases := map[string]Lang{
		"":      LangES,
		"es":    LangES,
		"EN":    LangEN,
		"en-US": LangEN,
		"fr":    LangES,
	}
	for raw, want := range cases {
		if got := ParseLang(raw); got != want {
			t.Fatalf("ParseLang(%q) = %s, want %s", raw, got, want)
		}
	}
}

func TestPromptPrintsPercentagesWithOneDecimal(t *testing.T) {
	in := sampleInput(LangEN)
	in.Metrics.TeamDamageSharePct = f64(37)

	prompt, err := Prompt(in)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	for _, want := range []string{"Kill participation: 66.7%", "Team damage share: 37.0%"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("expected %q in prompt:\n%s", want, prompt)
		}
	}
	if strings.Contains(prompt, "37.00%") {
		t.Fatalf("expected one decimal for percentages:\n%s", prompt)
	}
}
