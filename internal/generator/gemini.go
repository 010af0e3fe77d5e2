package generator

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// geminiGenerator asks the Gemini API for cards with a JSON response
// MIME type. The genai client needs a context to construct, so it is
// created inside Generate rather than in the factory.
type geminiGenerator struct {
	apiKey string
	model  string
}

func newGeminiGenerator(apiKey, model string) *geminiGenerator {
	return &geminiGenerator{apiKey: apiKey, model: model}
}

func (g *geminiGenerator) Generate(ctx context.Context, topic string, count int) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	resp, err := client.Models.GenerateContent(ctx, g.model,
		genai.Text(BuildPrompt(topic, count)),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			Temperature:      genai.Ptr[float32](0.7),
		},
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: no content generated", ErrInvalidResponse)
	}
	return text, nil
}
