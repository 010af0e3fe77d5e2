// Package service holds the business logic for building flashcard
// decks out of generator responses.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/atinyakov/GopherCards/internal/generator"
	"github.com/atinyakov/GopherCards/internal/models"
)

// Card count bounds for one generation request. The upper bound caps
// cost and latency, not any protocol limit.
const (
	MinCards = 1
	MaxCards = 20
)

// Validation errors surfaced before any generator call.
var (
	ErrEmptyTopic   = errors.New("topic must not be empty")
	ErrInvalidCount = fmt.Errorf("card count must be between %d and %d", MinCards, MaxCards)
)

// ProviderFactory builds a Generator for one request. Injected so tests
// can substitute a fake without touching the real SDK clients.
type ProviderFactory func(provider models.Provider, apiKey, model string) (generator.Generator, error)

// DeckService turns generation requests into decks. A fresh generator
// client is built per request; nothing is pooled or persisted.
type DeckService struct {
	factory  ProviderFactory
	provider models.Provider
	apiKey   string
	model    string
	logger   *zap.Logger
}

// NewDeckService constructs a DeckService. factory defaults to
// generator.NewProvider when nil.
func NewDeckService(factory ProviderFactory, provider models.Provider, apiKey, model string, logger *zap.Logger) *DeckService {
	if factory == nil {
		factory = generator.NewProvider
	}
	return &DeckService{
		factory:  factory,
		provider: provider,
		apiKey:   apiKey,
		model:    model,
		logger:   logger,
	}
}

// Build requests count cards about topic from the configured backend
// and assembles the resulting deck.
//
// A response without a recognizable card list yields an empty deck, not
// an error. Elements missing a question or an answer are skipped. The
// deck never exceeds count cards. On any returned error no deck is
// produced, so callers keep their previous state untouched.
func (s *DeckService) Build(ctx context.Context, topic string, count int) (models.Deck, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return models.Deck{}, ErrEmptyTopic
	}
	if count < MinCards || count > MaxCards {
		return models.Deck{}, ErrInvalidCount
	}

	gen, err := s.factory(s.provider, s.apiKey, s.model)
	if err != nil {
		return models.Deck{}, err
	}

	raw, err := gen.Generate(ctx, topic, count)
	if err != nil {
		return models.Deck{}, err
	}

	parsed := generator.ParseCards(raw)

	cards := make([]models.Flashcard, 0, len(parsed))
	for _, card := range parsed {
		if card.Question == "" || card.Answer == "" {
			s.logger.Warn("skipping malformed card",
				zap.String("topic", topic),
				zap.Bool("has_question", card.Question != ""),
				zap.Bool("has_answer", card.Answer != ""),
			)
			continue
		}
		cards = append(cards, card)
	}

	if len(cards) > count {
		s.logger.Warn("backend returned more cards than requested",
			zap.Int("requested", count),
			zap.Int("returned", len(cards)),
		)
		cards = cards[:count]
	}

	s.logger.Info("deck built",
		zap.String("topic", topic),
		zap.String("provider", string(s.provider)),
		zap.Int("requested", count),
		zap.Int("cards", len(cards)),
	)

	return models.Deck{
		ID:    uuid.NewString(),
		Topic: topic,
		Cards: cards,
	}, nil
}
