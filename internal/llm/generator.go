// Package llm wraps the external text-generation APIs used for weekly
// summaries. Every client turns a single user prompt into plain text.
package llm

import (
	"context"
	"errors"

	"github.com/blaisecz/dailyform-tracker/internal/config"
)

var (
	// ErrGenerationUnavailable indicates no generation backend is configured.
	ErrGenerationUnavailable = errors.New("text generation unavailable")
	// ErrGenerationRequest indicates the call failed (network error or non-2xx status).
	ErrGenerationRequest = errors.New("text generation request failed")
	// ErrGenerationResponse indicates the response carried no usable text.
	ErrGenerationResponse = errors.New("malformed text generation response")
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// TextGenerator produces text for a single user-role prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewFromConfig returns the generator selected by SUMMARY_PROVIDER, or nil
// when that provider has no API key.
func NewFromConfig(cfg *config.Config) TextGenerator {
	switch cfg.SummaryProvider {
	case ProviderOpenAI:
		if c := NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAISummaryModel); c != nil {
			return c
		}
	default:
		if c := NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL, nil); c != nil {
			return c
		}
	}
	return nil
}
