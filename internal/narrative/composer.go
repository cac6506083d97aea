// Package narrative turns computed match metrics into coaching text, either
// through a generative-text service or as a deterministic numeric summary.
package narrative

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/lol-match-coach/internal/logging"
)

// Generator produces free text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Composer builds prompts and calls the generator.
type Composer struct {
	generator Generator
	logger    *slog.Logger
}

// NewComposer wires a generator and logger into a Composer.
func NewComposer(generator Generator, logger *slog.Logger) *Composer {
	return &Composer{generator: generator, logger: logger}
}

// Prompt renders the localized prompt for in.
func Prompt(in Input) (string, error) {
	return render(templatesFor(in.Lang).prompt, in)
}

// Fallback renders the deterministic summary used when no narrative is generated.
func Fallback(in Input) string {
	text, err := render(templatesFor(in.Lang).fallback, in)
	if err != nil {
		return fmt.Sprintf("KDA %s", fixed(in.Metrics.KDA))
	}
	return text
}

// Compose returns generated text. Every failure, including a missing generator
// or a panic inside it, is reported as ErrGenerationFailed.
func (c *Composer) Compose(ctx context.Context, in Input) (text string, err error) {
	if c == nil || c.generator == nil {
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, ErrNotConfigured)
	}

	prompt, err := Prompt(in)
	if err != nil {
		return "", fmt.Errorf("%w: prompt: %w", ErrGenerationFailed, err)
	}

	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: generator panic: %v", ErrGenerationFailed, r)
		}
		if err != nil {
			logging.Warn(logging.FromContext(ctx, c.logger), "narrative generation failed",
				logging.FieldMatchID, in.MatchID,
				"err", err,
			)
		}
	}()

	text, err = c.generator.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	return text, nil
}
