package generator

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/atinyakov/GopherCards/internal/models"
)

// namedListKeys are the object keys that identify the card list
// directly, checked before any positional fallback. "flashcards" is
// what the prompt asks for; "cards" is a common variant.
var namedListKeys = []string{"flashcards", "cards"}

// ParseCards extracts a card list from raw model output.
//
// The payload is expected to be a JSON object. The policy, in order:
// a key named "flashcards" or "cards" holding an array wins, even when
// that array is empty; otherwise the first non-empty array among the
// object's values, scanned in document order, is used; otherwise the
// result is an empty deck. A malformed payload also yields an empty
// deck rather than an error.
//
// Cards are taken as-is: elements missing a question or answer survive
// parsing and are filtered by the caller's policy.
func ParseCards(payload string) []models.Flashcard {
	raw := []byte(stripFence(payload))

	// A bare top-level array is taken as the card list itself.
	if cards, ok := decodeCards(raw); ok {
		return cards
	}

	entries, ok := objectEntries(raw)
	if !ok {
		return []models.Flashcard{}
	}

	for _, key := range namedListKeys {
		for _, e := range entries {
			if !strings.EqualFold(e.key, key) {
				continue
			}
			if cards, ok := decodeCards(e.value); ok {
				return cards
			}
		}
	}

	for _, e := range entries {
		cards, ok := decodeCards(e.value)
		if ok && len(cards) > 0 {
			return cards
		}
	}

	return []models.Flashcard{}
}

type objectEntry struct {
	key   string
	value json.RawMessage
}

// objectEntries walks the top-level object token by token so the values
// keep their document order; unmarshalling into a map would lose it.
func objectEntries(raw []byte) ([]objectEntry, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, false
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, false
	}

	var entries []objectEntry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, false
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, false
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, false
		}
		entries = append(entries, objectEntry{key: key, value: value})
	}
	return entries, true
}

// decodeCards reports whether raw is an array whose elements carry
// question/answer fields. Arrays of non-objects do not qualify.
func decodeCards(raw []byte) ([]models.Flashcard, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}
	var cards []models.Flashcard
	if err := json.Unmarshal(trimmed, &cards); err != nil {
		return nil, false
	}
	if cards == nil {
		cards = []models.Flashcard{}
	}
	return cards, true
}

// stripFence removes a single surrounding markdown code fence. Backends
// without a JSON response mode tend to wrap their output in one.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		// Drop the language tag line ("json", "JSON", or empty).
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
