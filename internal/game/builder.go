package game

import (
	"errors"

	"github.com/hitbox/scoundrel/internal/card"
	"github.com/hitbox/scoundrel/internal/config"
	"github.com/hitbox/scoundrel/internal/deck"
	"github.com/hitbox/scoundrel/internal/events"

	"github.com/sirupsen/logrus"
)

// Builder provides a step-by-step API for constructing a Game object.
type Builder struct {
	cfg          *config.GameConfig
	eventManager *events.Manager
	log          *logrus.Logger
	dungeon      []card.Card
	chooser      Chooser
}

// NewBuilder creates a new Builder with its required dependencies. A fresh
// event manager is created per game; subscribe listeners before Build.
func NewBuilder(cfg *config.GameConfig, logger *logrus.Logger) *Builder {
	return &Builder{
		cfg:          cfg,
		log:          logger,
		eventManager: events.NewManager(),
	}
}

// EventManager is a public getter for the unexported field.
func (b *Builder) EventManager() *events.Manager {
	return b.eventManager
}

// WithDungeon sets the initial dungeon contents, already shuffled. The
// engine draws from the end of the slice first and never shuffles.
func (b *Builder) WithDungeon(cards []card.Card) *Builder {
	b.dungeon = cards
	return b
}

// WithChooser sets the decision protocol the engine will call for turns.
func (b *Builder) WithChooser(ch Chooser) *Builder {
	b.chooser = ch
	return b
}

// Build constructs the Game object after all options have been configured.
// When no dungeon was given, a standard unshuffled one is built from the
// config.
func (b *Builder) Build() (*Game, error) {
	if b.chooser == nil {
		return nil, errors.New("a chooser is required")
	}

	dungeon := b.dungeon
	if dungeon == nil {
		dungeon = card.NewDungeon(b.cfg.HalfMonsters)
	}
	if len(dungeon) == 0 {
		return nil, errors.New("dungeon must hold at least one card")
	}

	game := &Game{
		Decks:        deck.NewManager(),
		EventManager: b.eventManager,
		chooser:      b.chooser,
		invincible:   b.cfg.Invincible,
		health:       MaxHealth,
		log:          b.log,
	}
	game.Decks.SetDeck(deck.Dungeon, dungeon)

	return game, nil
}
