// Package models defines the core data structures for flashcards and decks.
package models

// Flashcard is a single question/answer pair. Cards carry no identity
// beyond their content.
type Flashcard struct {
	// Question is the prompt side of the card.
	Question string `json:"question"`
	// Answer is the answer side of the card.
	Answer string `json:"answer"`
}

// IsZero reports whether the card is the empty sentinel returned for
// an empty deck.
func (f Flashcard) IsZero() bool {
	return f.Question == "" && f.Answer == ""
}

// Deck is the ordered result of one generation request. An empty Cards
// slice is a valid deck meaning "no results".
type Deck struct {
	// ID is the unique identifier assigned when the deck is built.
	ID string `json:"id"`
	// Topic is the subject the deck was generated for.
	Topic string `json:"topic"`
	// Cards holds the generated flashcards in order.
	Cards []Flashcard `json:"cards"`
}

// ExportFormat identifies a supported export serialization.
type ExportFormat string

const (
	// FormatJSON exports the deck as a pretty-printed JSON array.
	FormatJSON ExportFormat = "json"
	// FormatText exports the deck as numbered Card/Q/A text blocks.
	FormatText ExportFormat = "text"
)

// Provider identifies a supported text-generation backend.
type Provider string

const (
	// ProviderOpenAI uses the OpenAI chat completions API.
	ProviderOpenAI Provider = "openai"
	// ProviderAnthropic uses the Anthropic messages API.
	ProviderAnthropic Provider = "anthropic"
	// ProviderGemini uses the Google Gemini API.
	ProviderGemini Provider = "gemini"
)
