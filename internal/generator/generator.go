// Package generator is the boundary to the external text-generation
// service. A Generator turns a topic and a card count into raw model
// output; ParseCards interprets that output as a card list.
package generator

import (
	"context"
	"fmt"

	"github.com/atinyakov/GopherCards/internal/models"
)

// Generator produces raw model text for a flashcard request. It is the
// only component that talks to the network; everything downstream works
// on the returned payload.
type Generator interface {
	// Generate asks the backend for count question/answer pairs about
	// topic and returns the raw response text.
	Generate(ctx context.Context, topic string, count int) (string, error)
}

// BuildPrompt renders the generation instruction sent to every backend.
// The response shape it asks for is what ParseCards expects first.
func BuildPrompt(topic string, count int) string {
	return fmt.Sprintf(`Create %d flashcards on the topic of %q.
Each flashcard should have a question and an answer.
Return the data as a JSON object with a "flashcards" array of objects, each with "question" and "answer" fields.
Keep questions concise but clear, and answers detailed but not too long.`, count, topic)
}

// DefaultModel returns the model used for a provider when the
// configuration does not name one.
func DefaultModel(p models.Provider) string {
	switch p {
	case models.ProviderAnthropic:
		return "claude-3-5-haiku-latest"
	case models.ProviderGemini:
		return "gemini-2.0-flash"
	default:
		return "gpt-4o-mini"
	}
}
