// Package http provides HTTP handlers for deck generation and export.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atinyakov/GopherCards/internal/generator"
	"github.com/atinyakov/GopherCards/internal/models"
	"github.com/atinyakov/GopherCards/internal/service"
)

// DeckBuilder defines the interface for deck generation operations
// required by the DeckHandler.
type DeckBuilder interface {
	// Build requests count cards about topic and returns the deck.
	Build(ctx context.Context, topic string, count int) (models.Deck, error)
}

// DeckHandler handles HTTP requests for flashcard generation.
type DeckHandler struct {
	DeckService DeckBuilder
}

// GenerateRequest represents the JSON payload for a generation request.
type GenerateRequest struct {
	// Topic is the subject to generate cards for.
	Topic string `json:"topic"`
	// Count is how many cards to request, between 1 and 20.
	Count int `json:"count"`
}

// Generate handles POST /api/generate requests.
//
// Invalid input is a 400, a missing or unusable provider configuration
// a 422, and a backend failure a 502 carrying the underlying message.
// A deck with zero cards is still a success.
func (h *DeckHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	deck, err := h.DeckService.Build(r.Context(), req.Topic, req.Count)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyTopic), errors.Is(err, service.ErrInvalidCount):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, generator.ErrMissingAPIKey), errors.Is(err, generator.ErrUnknownProvider):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			http.Error(w, err.Error(), http.StatusBadGateway)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]models.Deck{"deck": deck})
}
