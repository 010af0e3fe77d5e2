// Package export serializes a deck into downloadable payloads. All
// functions are pure: they read the cards and never touch navigation
// state.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/atinyakov/GopherCards/internal/models"
)

// ErrUnknownFormat is returned for a format other than json or text.
var ErrUnknownFormat = fmt.Errorf("unknown export format")

// Deck serializes cards in the given format.
//
// FormatJSON produces a pretty-printed JSON array of {question, answer}
// objects. FormatText produces, for each card at 1-based index i, the
// lines "Card i:", "Q: ...", "A: ..." followed by a blank line.
func Deck(cards []models.Flashcard, format models.ExportFormat) ([]byte, error) {
	switch format {
	case models.FormatJSON:
		if cards == nil {
			cards = []models.Flashcard{}
		}
		return json.MarshalIndent(cards, "", "  ")
	case models.FormatText:
		var b strings.Builder
		for i, card := range cards {
			fmt.Fprintf(&b, "Card %d:\n", i+1)
			fmt.Fprintf(&b, "Q: %s\n", card.Question)
			fmt.Fprintf(&b, "A: %s\n", card.Answer)
			b.WriteString("\n")
		}
		return []byte(b.String()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Filename suggests a download name of the form
// flashcards_{topic}.{json|txt} with spaces replaced by underscores.
func Filename(topic string, format models.ExportFormat) string {
	ext := "txt"
	if format == models.FormatJSON {
		ext = "json"
	}
	return fmt.Sprintf("flashcards_%s.%s", strings.ReplaceAll(topic, " ", "_"), ext)
}

// MediaType returns the MIME type for the format.
func MediaType(format models.ExportFormat) string {
	if format == models.FormatJSON {
		return "application/json"
	}
	return "text/plain"
}

// ParseFormat normalizes a user-supplied format name. "txt" is accepted
// as an alias for text.
func ParseFormat(s string) (models.ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return models.FormatJSON, nil
	case "text", "txt":
		return models.FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}
