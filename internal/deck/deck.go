// Package deck holds the four named card piles of a scoundrel game and the
// single move primitive every rule is built from.
package deck

import (
	"errors"
	"fmt"

	"github.com/hitbox/scoundrel/internal/card"
)

// Name identifies one of the four piles using a typed enum, so an illegal
// deck name cannot be constructed.
type Name int

const (
	Dungeon Name = iota
	Room
	Battlefield
	Discard
)

func (n Name) String() string {
	return []string{"dungeon", "room", "battlefield", "discard"}[n]
}

// Names lists every pile.
func Names() []Name {
	return []Name{Dungeon, Room, Battlefield, Discard}
}

var (
	// ErrEmptyDeck is returned when the top card of an empty pile is
	// requested. Callers must check Len first.
	ErrEmptyDeck = errors.New("deck is empty")

	// ErrCardNotFound is returned when a move names a card that is not in
	// the source pile. It signals a stale card reference, not a game state.
	ErrCardNotFound = errors.New("card not found in deck")
)

// Manager owns the ordered card sequences of the four piles. Cards are
// located by value equality; dungeon construction never produces duplicate
// suit/rank pairs, so equality is identity here.
type Manager struct {
	piles [4][]card.Card
}

// NewManager creates a Manager with every pile empty.
func NewManager() *Manager {
	return &Manager{}
}

// SetDeck replaces the contents of a pile. Used once at game start to seed
// the dungeon with a pre-shuffled deck.
func (m *Manager) SetDeck(name Name, cards []card.Card) {
	m.piles[name] = append([]card.Card(nil), cards...)
}

// Len returns the number of cards in the pile.
func (m *Manager) Len(name Name) int {
	return len(m.piles[name])
}

// TopCard returns the last card in the pile, the one drawn first.
func (m *Manager) TopCard(name Name) (card.Card, error) {
	pile := m.piles[name]
	if len(pile) == 0 {
		return card.Card{}, fmt.Errorf("top of %s: %w", name, ErrEmptyDeck)
	}
	return pile[len(pile)-1], nil
}

// Cards returns a read-only view of the pile in order. Callers must not
// mutate the returned slice.
func (m *Manager) Cards(name Name) []card.Card {
	return m.piles[name]
}

// MoveCard removes c from src and appends it to the end of dst, or inserts
// it at the bottom when toBottom is set. This is the sole mutation
// primitive; every higher-level rule is a sequence of moves.
func (m *Manager) MoveCard(c card.Card, src, dst Name, toBottom bool) error {
	from := m.piles[src]
	at := -1
	for i, have := range from {
		if have == c {
			at = i
			break
		}
	}
	if at < 0 {
		return fmt.Errorf("move %s from %s to %s: %w", c, src, dst, ErrCardNotFound)
	}
	m.piles[src] = append(from[:at], from[at+1:]...)

	if toBottom {
		m.piles[dst] = append([]card.Card{c}, m.piles[dst]...)
	} else {
		m.piles[dst] = append(m.piles[dst], c)
	}
	return nil
}
