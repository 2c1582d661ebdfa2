package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tourweaver/internal/config"
)

// ErrUnsupportedProvider is returned for a provider name NewGenerator does not know.
var ErrUnsupportedProvider = errors.New("unsupported ai provider")

// NewGenerator builds the generator selected by cfg.Provider. Generators holding
// a client connection also implement io.Closer.
func NewGenerator(ctx context.Context, cfg config.AIConfig) (Generator, error) {
	switch strings.ToLower(cfg.Provider) {
	case config.ProviderGemini:
		return NewGeminiGenerator(ctx, cfg.GeminiKey, cfg.GeminiModel)
	case config.ProviderOpenAI:
		return NewOpenAIGenerator(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL), nil
	default:
		return nil, fmt.Errorf("%w: %q (use %q or %q)", ErrUnsupportedProvider, cfg.Provider, config.ProviderGemini, config.ProviderOpenAI)
	}
}
