package events

import (
	"github.com/hitbox/scoundrel/internal/card"
	"github.com/hitbox/scoundrel/internal/deck"
)

// Event is a marker interface for all event types.
type Event interface{}

// Listener defines an interface for any component that wants to react to
// events. Listeners observe state after the triggering mutation and must not
// mutate engine state.
type Listener interface {
	HandleEvent(e Event)
}

// Manager (or Event Bus) manages listeners and dispatches events. One
// Manager is owned by each game instance; it is not shared global state.
type Manager struct {
	listeners []Listener
}

func NewManager() *Manager {
	return &Manager{}
}

func (em *Manager) Subscribe(l Listener) {
	em.listeners = append(em.listeners, l)
}

// Publish invokes every listener synchronously, in subscription order.
// Publishing with no listeners is a no-op.
func (em *Manager) Publish(e Event) {
	for _, l := range em.listeners {
		l.HandleEvent(e)
	}
}

// --- Event Types ---

// MoveCardEvent fires immediately after every deck move, including moves
// nested inside higher-level operations like equipping or running.
type MoveCardEvent struct {
	Card     card.Card
	Source   deck.Name
	Dest     deck.Name
	ToBottom bool
}

// InitRoomEvent fires once a room has been refilled to capacity, or as far
// as the dungeon allows. It fires once per refill, not once per card.
type InitRoomEvent struct{}

// BeginTurnEvent fires at the start of each turn-choice iteration.
type BeginTurnEvent struct{}

// RanAwayEvent fires when the player avoids a room, before its cards are
// returned to the dungeon.
type RanAwayEvent struct{}

// HealEvent fires after health is updated. Amount is the effective healing
// after clamping at max health, possibly zero.
type HealEvent struct {
	Amount int
	Card   card.Card
}

// BattleMonsterEvent fires when a monster is played, before weapon
// applicability or damage is computed.
type BattleMonsterEvent struct {
	Monster card.Card
}

// PlayerDamageEvent fires after health is updated. Damage is the computed
// value, unclamped: zero or negative means the weapon absorbed everything.
// Weapon is nil when the player fought barehanded.
type PlayerDamageEvent struct {
	Damage int
	Source card.Card
	Weapon *card.Card
}

// GameOverEvent fires once, when the outer loop exits. Won is true when the
// player survived the whole dungeon. Health is floored at zero for
// reporting, even when the killing blow overshot.
type GameOverEvent struct {
	Won    bool
	Health int
}
