package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/atinyakov/GopherCards/internal/export"
	"github.com/atinyakov/GopherCards/internal/models"
)

// ExportHandler handles HTTP requests for deck export. Export is a pure
// function of the submitted cards, so the handler carries no state.
type ExportHandler struct{}

// ExportRequest represents the JSON payload for an export request.
type ExportRequest struct {
	// Topic names the deck's subject; it only shapes the filename.
	Topic string `json:"topic"`
	// Format selects the serialization: "json" or "text".
	Format string `json:"format"`
	// Cards is the deck content to serialize.
	Cards []models.Flashcard `json:"cards"`
}

// Export handles POST /api/export requests. It responds with the
// serialized deck, the matching media type, and an attachment filename
// of the form flashcards_{topic}.{json|txt}.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	format, err := export.ParseFormat(req.Format)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	payload, err := export.Deck(req.Cards, format)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", export.MediaType(format))
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", export.Filename(req.Topic, format)))
	_, _ = w.Write(payload)
}
