package translation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

//go:generate mockgen -source=translator.go -destination=../mocks/translation/mock_translator.go -package=mock_translation

var (
	ErrEmptyTranslation = errors.New("empty translation")
	ErrDisabled         = errors.New("translation disabled")
)

// Translator is a translation backend that turns text into English.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// EnglishTranslator never fails; the Result says whether the text was translated.
type EnglishTranslator interface {
	ToEnglish(ctx context.Context, text string) Result
}

// Result is the outcome of a best-effort translation.
type Result struct {
	// Text is what the lookup should use: the translation, or the original text.
	Text       string
	Translated bool
	// Reason is set when a translation was attempted and the original text was kept.
	Reason error
}

// ContainsCJK reports whether text has a rune in the CJK Unified Ideographs block.
func ContainsCJK(text string) bool {
	for _, r := range text {
		if r >= '\u4e00' && r <= '\u9fff' {
			return true
		}
	}
	return false
}

type BreakerConfig struct {
	MaxFailures uint32
	Cooldown    time.Duration
}

// BestEffort wraps a backend with the CJK gate and a circuit breaker.
// While the breaker is open, queries keep their original text without waiting on the backend.
type BestEffort struct {
	backend Translator
	breaker *gobreaker.CircuitBreaker
}

var _ EnglishTranslator = (*BestEffort)(nil)

func NewBestEffort(backend Translator, config BreakerConfig) *BestEffort {
	maxFailures := config.MaxFailures
	if maxFailures == 0 {
		maxFailures = 1
	}
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "translation",
		MaxRequests: 1,
		Timeout:     config.Cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// a disabled backend is not an outage
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrDisabled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Default().Info("translation breaker state changed", "from", from.String(), "to", to.String())
		},
	})
	return &BestEffort{
		backend: backend,
		breaker: breaker,
	}
}

func (t *BestEffort) ToEnglish(ctx context.Context, text string) Result {
	if !ContainsCJK(text) {
		return Result{Text: text}
	}

	translated, err := t.breaker.Execute(func() (interface{}, error) {
		out, err := t.backend.Translate(ctx, text)
		if err != nil {
			return nil, err
		}
		out = strings.TrimSpace(out)
		if out == "" {
			return nil, ErrEmptyTranslation
		}
		return out, nil
	})
	if err != nil {
		slog.Default().Debug("translation failed, keeping the original text", "text", text, "error", err)
		return Result{Text: text, Reason: fmt.Errorf("translate > %w", err)}
	}

	slog.Default().Debug("translated query", "text", text, "translation", translated)
	return Result{Text: translated.(string), Translated: true}
}

// Noop is the backend for the "none" provider.
type Noop struct{}

var _ Translator = Noop{}

func (Noop) Translate(ctx context.Context, text string) (string, error) {
	return "", ErrDisabled
}
