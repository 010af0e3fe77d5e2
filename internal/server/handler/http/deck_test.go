package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/atinyakov/GopherCards/internal/generator"
	"github.com/atinyakov/GopherCards/internal/models"
	handler "github.com/atinyakov/GopherCards/internal/server/handler/http"
	"github.com/atinyakov/GopherCards/internal/service"
)

// fakeDeckService records calls and returns preconfigured results.
type fakeDeckService struct {
	called   bool
	gotTopic string
	gotCount int

	deck models.Deck
	err  error
}

func (f *fakeDeckService) Build(ctx context.Context, topic string, count int) (models.Deck, error) {
	f.called = true
	f.gotTopic = topic
	f.gotCount = count
	return f.deck, f.err
}

func generateRequest(t *testing.T, body any) *http.Request {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	return httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewReader(b))
}

func TestGenerate_BadJSON(t *testing.T) {
	h := &handler.DeckHandler{DeckService: &fakeDeckService{}}
	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewBufferString("not-a-json"))
	w := httptest.NewRecorder()

	h.Generate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want %d", w.Code, http.StatusBadRequest)
	}
	if body := w.Body.String(); body != "invalid body\n" {
		t.Errorf("body = %q; want %q", body, "invalid body\n")
	}
}

func TestGenerate_ValidationError(t *testing.T) {
	fake := &fakeDeckService{err: service.ErrEmptyTopic}
	h := &handler.DeckHandler{DeckService: fake}
	w := httptest.NewRecorder()

	h.Generate(w, generateRequest(t, handler.GenerateRequest{Topic: "", Count: 5}))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want %d", w.Code, http.StatusBadRequest)
	}
}

func TestGenerate_MissingCredential(t *testing.T) {
	fake := &fakeDeckService{err: fmt.Errorf("%w for provider %q", generator.ErrMissingAPIKey, "openai")}
	h := &handler.DeckHandler{DeckService: fake}
	w := httptest.NewRecorder()

	h.Generate(w, generateRequest(t, handler.GenerateRequest{Topic: "Go", Count: 5}))

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d; want %d", w.Code, http.StatusUnprocessableEntity)
	}
}

func TestGenerate_BackendFailure(t *testing.T) {
	fake := &fakeDeckService{err: fmt.Errorf("%w: connection refused", generator.ErrGenerationFailed)}
	h := &handler.DeckHandler{DeckService: fake}
	w := httptest.NewRecorder()

	h.Generate(w, generateRequest(t, handler.GenerateRequest{Topic: "Go", Count: 5}))

	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d; want %d", w.Code, http.StatusBadGateway)
	}
	if body := w.Body.String(); !strings.Contains(body, "connection refused") {
		t.Errorf("body = %q; want the underlying message surfaced", body)
	}
}

func TestGenerate_Success(t *testing.T) {
	fake := &fakeDeckService{
		deck: models.Deck{
			ID:    "deck-1",
			Topic: "Go",
			Cards: []models.Flashcard{{Question: "Q1", Answer: "A1"}},
		},
	}
	h := &handler.DeckHandler{DeckService: fake}
	w := httptest.NewRecorder()

	h.Generate(w, generateRequest(t, handler.GenerateRequest{Topic: "Go", Count: 5}))

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d; want %d", w.Code, http.StatusCreated)
	}
	if !fake.called || fake.gotTopic != "Go" || fake.gotCount != 5 {
		t.Errorf("service called with (%q, %d); want (Go, 5)", fake.gotTopic, fake.gotCount)
	}

	var resp struct {
		Deck models.Deck `json:"deck"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Deck.ID != "deck-1" || len(resp.Deck.Cards) != 1 {
		t.Errorf("deck = %+v; want deck-1 with one card", resp.Deck)
	}
}

func TestGenerate_EmptyDeckIsStillCreated(t *testing.T) {
	fake := &fakeDeckService{deck: models.Deck{ID: "deck-2", Topic: "Go", Cards: []models.Flashcard{}}}
	h := &handler.DeckHandler{DeckService: fake}
	w := httptest.NewRecorder()

	h.Generate(w, generateRequest(t, handler.GenerateRequest{Topic: "Go", Count: 5}))

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d; want %d", w.Code, http.StatusCreated)
	}
}
