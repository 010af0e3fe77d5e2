package study

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/atinyakov/GopherCards/internal/models"
)

const apiGenerate = "/api/generate"

// fetchDeck asks the server to generate a deck. Non-2xx responses carry
// the server's plain-text error message, which is surfaced as-is.
func fetchDeck(client *http.Client, baseURL, topic string, count int) (models.Deck, error) {
	payload := map[string]any{
		"topic": topic,
		"count": count,
	}
	b, _ := json.Marshal(payload)

	resp, err := client.Post(baseURL+apiGenerate, "application/json", bytes.NewReader(b))
	if err != nil {
		return models.Deck{}, fmt.Errorf("generation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return models.Deck{}, fmt.Errorf("server error: %s", strings.TrimSpace(string(msg)))
	}

	var result struct {
		Deck models.Deck `json:"deck"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return models.Deck{}, fmt.Errorf("decode generation response: %w", err)
	}
	return result.Deck, nil
}
