// Package study implements the client-side study session: a deck
// navigator, the remote generation call, and export-file saving.
package study

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strings"

	"github.com/atinyakov/GopherCards/internal/deck"
	"github.com/atinyakov/GopherCards/internal/export"
	"github.com/atinyakov/GopherCards/internal/models"
)

// Session owns one deck and its navigation state for the lifetime of
// the client process. Nothing is persisted between sessions except
// files the user explicitly exports.
type Session struct {
	client  *http.Client
	baseURL string
	topic   string
	nav     *deck.Navigator
}

// NewSession returns a Session with an empty deck.
func NewSession(client *http.Client, baseURL string, rng *rand.Rand) *Session {
	return &Session{
		client:  client,
		baseURL: baseURL,
		nav:     deck.New(rng),
	}
}

// Generate requests a fresh deck from the server and installs it. On
// failure the current deck, position and visibility stay untouched.
func (s *Session) Generate(topic string, count int) error {
	d, err := fetchDeck(s.client, s.baseURL, topic, count)
	if err != nil {
		return err
	}
	s.topic = d.Topic
	s.nav.Load(d.Cards)
	return nil
}

// Next shows the following card.
func (s *Session) Next() { s.nav.Next() }

// Previous shows the preceding card.
func (s *Session) Previous() { s.nav.Previous() }

// Shuffle reorders the deck and returns to the first card.
func (s *Session) Shuffle() { s.nav.Shuffle() }

// Reveal shows the current card's answer.
func (s *Session) Reveal() { s.nav.Reveal() }

// Hide conceals the current card's answer.
func (s *Session) Hide() { s.nav.Hide() }

// Topic returns the subject of the loaded deck.
func (s *Session) Topic() string { return s.topic }

// Len returns the number of loaded cards.
func (s *Session) Len() int { return s.nav.Len() }

// CardView renders the current card the way the page shows it: the
// card counter, the question, and the answer only when revealed.
func (s *Session) CardView() string {
	if s.nav.Len() == 0 {
		return "No flashcards loaded. Use 'generate' to create a deck."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Card %d of %d\n", s.nav.Position()+1, s.nav.Len())
	card := s.nav.Current()
	fmt.Fprintf(&b, "Q: %s\n", card.Question)
	if s.nav.Revealed() {
		fmt.Fprintf(&b, "A: %s", card.Answer)
	} else {
		b.WriteString("A: (hidden - type 'reveal' to show)")
	}
	return b.String()
}

// SaveExport writes the deck to a file in the current directory and
// returns the filename.
func (s *Session) SaveExport(format models.ExportFormat) (string, error) {
	payload, err := export.Deck(s.nav.Cards(), format)
	if err != nil {
		return "", err
	}
	name := export.Filename(s.topic, format)
	if err := os.WriteFile(name, payload, 0o644); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}
	return name, nil
}
