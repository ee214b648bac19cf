package ai

import (
	"github.com/hitbox/scoundrel/internal/game"
)

// TurnStrategy defines the interface for one piece of the brain's
// decision-making logic. Consider returns false when the strategy does not
// apply to the current room.
type TurnStrategy interface {
	Consider(b *Brain, g *game.Game, choices []game.Choice) (game.Choice, bool)
}

// --- Strategy Implementations ---

// RunStrategy runs from a room that would likely kill the player: the
// combined unavoidable damage meets or exceeds current health.
type RunStrategy struct{}

func (s *RunStrategy) Consider(b *Brain, g *game.Game, choices []game.Choice) (game.Choice, bool) {
	var run *game.Choice
	threat := 0
	for i, c := range choices {
		if c.IsRun() {
			run = &choices[i]
			continue
		}
		if c.Card.IsMonster() {
			threat += effectiveDamage(g, *c.Card)
		}
	}
	if run != nil && threat >= g.Health() {
		b.log.Debugf("Strategy: RUN. Room threat %d vs health %d.", threat, g.Health())
		return *run, true
	}
	return game.Choice{}, false
}

// DrinkStrategy drinks the biggest potion in the room once enough health is
// missing that little of it would be wasted.
type DrinkStrategy struct{}

func (s *DrinkStrategy) Consider(b *Brain, g *game.Game, choices []game.Choice) (game.Choice, bool) {
	missing := game.MaxHealth - g.Health()
	var best *game.Choice
	for i, c := range choices {
		if c.IsRun() || !c.Card.IsHealth() {
			continue
		}
		if best == nil || c.Card.Value() > best.Card.Value() {
			best = &choices[i]
		}
	}
	if best != nil && missing >= best.Card.Value() {
		b.log.Debugf("Strategy: DRINK. Healing %d of %d missing.", best.Card.Value(), missing)
		return *best, true
	}
	return game.Choice{}, false
}

// EquipStrategy picks up a stronger weapon than the one currently usable.
// A weapon locked by stacked monsters counts as its remaining usefulness,
// so a locked blade is readily replaced.
type EquipStrategy struct{}

func (s *EquipStrategy) Consider(b *Brain, g *game.Game, choices []game.Choice) (game.Choice, bool) {
	var best *game.Choice
	for i, c := range choices {
		if c.IsRun() || !c.Card.IsWeapon() {
			continue
		}
		if best == nil || c.Card.Value() > best.Card.Value() {
			best = &choices[i]
		}
	}
	if best == nil {
		return game.Choice{}, false
	}
	current := 0
	if weapon, err := g.WeaponInPlay(); err == nil && weapon != nil {
		current = weapon.Value()
		if monsters := g.MonstersInPlay(); len(monsters) > 0 {
			weakest := monsters[0].Value()
			for _, m := range monsters[1:] {
				if m.Value() < weakest {
					weakest = m.Value()
				}
			}
			// The lock means the weapon only works below the weakest
			// monster it has fought.
			if weakest-1 < current {
				current = weakest - 1
			}
		}
	}
	if best.Card.Value() > current {
		b.log.Debugf("Strategy: EQUIP. Weapon %d beats current %d.", best.Card.Value(), current)
		return *best, true
	}
	return game.Choice{}, false
}

// FightStrategy fights the monster that costs the least health right now.
type FightStrategy struct{}

func (s *FightStrategy) Consider(b *Brain, g *game.Game, choices []game.Choice) (game.Choice, bool) {
	var best *game.Choice
	bestDamage := 0
	for i, c := range choices {
		if c.IsRun() || !c.Card.IsMonster() {
			continue
		}
		damage := effectiveDamage(g, *c.Card)
		if best == nil || damage < bestDamage {
			best = &choices[i]
			bestDamage = damage
		}
	}
	if best != nil {
		b.log.Debugf("Strategy: FIGHT. %s for %d damage.", best.Card.Label(), bestDamage)
		return *best, true
	}
	return game.Choice{}, false
}
