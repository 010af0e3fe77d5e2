// Package deck implements the navigation state machine for a loaded
// flashcard deck: current position, answer visibility, and the commands
// that move between cards.
package deck

import (
	"math/rand"

	"github.com/atinyakov/GopherCards/internal/models"
)

// Navigator holds one session's deck together with the current position
// and answer-reveal flag. The zero value is not usable; construct with New.
//
// Invariants: position is 0 when the deck is empty, and otherwise always
// within [0, len(cards)). Every navigation or shuffle command hides the
// answer again.
type Navigator struct {
	cards    []models.Flashcard
	position int
	revealed bool
	rng      *rand.Rand
}

// New returns a Navigator with an empty deck. rng drives Shuffle and may
// be seeded deterministically in tests; if nil, a time-seeded source is
// not substituted here so the caller stays in control of randomness.
func New(rng *rand.Rand) *Navigator {
	return &Navigator{rng: rng}
}

// Load replaces the deck with cards and resets position and visibility,
// regardless of whether cards is empty.
func (n *Navigator) Load(cards []models.Flashcard) {
	n.cards = cards
	n.position = 0
	n.revealed = false
}

// Next advances to the following card, wrapping past the last card back
// to the first. No-op on an empty deck.
func (n *Navigator) Next() {
	if len(n.cards) == 0 {
		return
	}
	n.position = (n.position + 1) % len(n.cards)
	n.revealed = false
}

// Previous moves to the preceding card, wrapping from the first card to
// the last. No-op on an empty deck.
func (n *Navigator) Previous() {
	if len(n.cards) == 0 {
		return
	}
	n.position = (n.position - 1 + len(n.cards)) % len(n.cards)
	n.revealed = false
}

// Shuffle reorders the deck uniformly at random and returns to the first
// card with the answer hidden. No-op on an empty deck.
func (n *Navigator) Shuffle() {
	if len(n.cards) == 0 {
		return
	}
	n.rng.Shuffle(len(n.cards), func(i, j int) {
		n.cards[i], n.cards[j] = n.cards[j], n.cards[i]
	})
	n.position = 0
	n.revealed = false
}

// Reveal makes the current card's answer visible.
func (n *Navigator) Reveal() {
	n.revealed = true
}

// Hide conceals the current card's answer again.
func (n *Navigator) Hide() {
	n.revealed = false
}

// Current returns the card at the current position, or the zero
// Flashcard if the deck is empty.
func (n *Navigator) Current() models.Flashcard {
	if len(n.cards) == 0 {
		return models.Flashcard{}
	}
	return n.cards[n.position]
}

// Position returns the zero-based index of the current card.
func (n *Navigator) Position() int {
	return n.position
}

// Revealed reports whether the current card's answer is visible.
func (n *Navigator) Revealed() bool {
	return n.revealed
}

// Len returns the number of cards in the deck.
func (n *Navigator) Len() int {
	return len(n.cards)
}

// Cards returns a copy of the deck in its current order.
func (n *Navigator) Cards() []models.Flashcard {
	out := make([]models.Flashcard, len(n.cards))
	copy(out, n.cards)
	return out
}
