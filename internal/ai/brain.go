package ai

import (
	"github.com/hitbox/scoundrel/internal/card"
	"github.com/hitbox/scoundrel/internal/game"

	"github.com/sirupsen/logrus"
)

// Brain implements game.Chooser with a heuristic decision engine. It walks a
// fixed chain of strategies and plays the first one that applies.
type Brain struct {
	log        logrus.FieldLogger
	strategies []TurnStrategy
}

// NewBrain is the constructor for the AI player. It injects dependencies.
func NewBrain(logger *logrus.Logger) *Brain {
	return &Brain{
		log: logger,
		strategies: []TurnStrategy{
			&RunStrategy{},
			&DrinkStrategy{},
			&EquipStrategy{},
			&FightStrategy{},
		},
	}
}

// ChooseTurn asks each strategy in order. The first room card is the
// fallback so the brain always returns a legal choice.
func (b *Brain) ChooseTurn(g *game.Game, choices []game.Choice) (game.Choice, error) {
	if len(choices) == 0 {
		return game.Choice{}, ErrNoChoices
	}
	for _, s := range b.strategies {
		if choice, ok := s.Consider(b, g, choices); ok {
			return choice, nil
		}
	}
	b.log.Debug("Strategy: FALLBACK. Playing the first card.")
	return choices[0], nil
}

// effectiveDamage is the health the player would lose fighting monster right
// now, honoring the weapon lock: the weapon only helps against monsters
// strictly weaker than the weakest one it has already fought.
func effectiveDamage(g *game.Game, monster card.Card) int {
	damage := monster.Value()
	weapon, err := g.WeaponInPlay()
	if err != nil || weapon == nil {
		return damage
	}
	monsters := g.MonstersInPlay()
	usable := len(monsters) == 0
	if !usable {
		weakest := monsters[0].Value()
		for _, m := range monsters[1:] {
			if m.Value() < weakest {
				weakest = m.Value()
			}
		}
		usable = monster.Value() < weakest
	}
	if usable {
		damage -= weapon.Value()
	}
	if damage < 0 {
		damage = 0
	}
	return damage
}
