package generator

import (
	"fmt"
	"strings"

	"github.com/atinyakov/GopherCards/internal/models"
)

// NewProvider constructs a Generator for the named backend. The key is
// required for every provider; model may be empty to use the provider
// default. Clients are cheap to construct, so callers build one per
// request instead of pooling.
func NewProvider(provider models.Provider, apiKey, model string) (Generator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, fmt.Errorf("%w for provider %q", ErrMissingAPIKey, provider)
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultModel(provider)
	}

	switch provider {
	case models.ProviderOpenAI:
		return newOpenAIGenerator(apiKey, model), nil
	case models.ProviderAnthropic:
		return newAnthropicGenerator(apiKey, model), nil
	case models.ProviderGemini:
		return newGeminiGenerator(apiKey, model), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}
}
