package game

import (
	"errors"
	"fmt"

	"github.com/hitbox/scoundrel/internal/card"
	"github.com/hitbox/scoundrel/internal/deck"
	"github.com/hitbox/scoundrel/internal/events"

	"github.com/sirupsen/logrus"
)

// MaxHealth is the health the player starts with and can never exceed.
const MaxHealth = 20

// RoomSize is how many cards a room holds at full capacity.
const RoomSize = 4

// ErrBattlefieldState signals that the first battlefield card is not a
// weapon. That can only happen through an engine bug, never through play.
var ErrBattlefieldState = errors.New("first battlefield card must be a weapon")

// Game represents the state and logic of a single game of scoundrel. All
// state is owned and mutated here; listeners on the event manager observe it
// read-only.
type Game struct {
	Decks        *deck.Manager
	EventManager *events.Manager

	chooser     Chooser
	invincible  bool
	health      int
	avoidedRoom bool
	log         *logrus.Logger
}

// Health returns the player's current health, in [0, MaxHealth] except
// transiently below zero on the killing blow.
func (g *Game) Health() int {
	return g.health
}

// IsNewRoom reports whether the room is at full capacity, meaning no card
// has been played from it yet.
func (g *Game) IsNewRoom() bool {
	return g.Decks.Len(deck.Room) == RoomSize
}

// IsAvoidRoomAvailable reports whether running is a legal choice: the room
// is untouched and the player did not run from the previous room.
func (g *Game) IsAvoidRoomAvailable() bool {
	return !g.avoidedRoom && g.IsNewRoom()
}

// IsDungeonAlive reports whether cards remain to be drawn.
func (g *Game) IsDungeonAlive() bool {
	return g.Decks.Len(deck.Dungeon) > 0
}

// IsPlayerAlive reports whether the player can keep fighting.
func (g *Game) IsPlayerAlive() bool {
	return g.invincible || g.health > 0
}

// IsPlaying reports whether the game should continue.
func (g *Game) IsPlaying() bool {
	return g.IsDungeonAlive() && g.IsPlayerAlive()
}

// moveCard wraps the deck primitive so every move, including ones nested in
// higher-level rules, is logged and published.
func (g *Game) moveCard(c card.Card, src, dst deck.Name, toBottom bool) error {
	if err := g.Decks.MoveCard(c, src, dst, toBottom); err != nil {
		return err
	}
	g.log.Debugf("move %s: %s -> %s", c.Label(), src, dst)
	g.EventManager.Publish(events.MoveCardEvent{Card: c, Source: src, Dest: dst, ToBottom: toBottom})
	return nil
}

// InitRoom draws from the dungeon until the room holds four cards or the
// dungeon runs out, then announces the room once.
func (g *Game) InitRoom() error {
	for g.IsDungeonAlive() && g.Decks.Len(deck.Room) < RoomSize {
		c, err := g.Decks.TopCard(deck.Dungeon)
		if err != nil {
			return err
		}
		if err := g.moveCard(c, deck.Dungeon, deck.Room, false); err != nil {
			return err
		}
	}
	g.EventManager.Publish(events.InitRoomEvent{})
	return nil
}

// ChoicesForTurn builds the legal choices for the current turn: every room
// card, plus the run sentinel when avoiding is allowed.
func (g *Game) ChoicesForTurn() []Choice {
	var choices []Choice
	for _, c := range g.Decks.Cards(deck.Room) {
		c := c
		choices = append(choices, Choice{Card: &c, Label: c.Label()})
	}
	if g.IsAvoidRoomAvailable() {
		choices = append(choices, Choice{Label: "Run"})
	}
	return choices
}

// AvoidRoom places the room's cards back at the bottom of the dungeon in
// their original order, re-queueing the whole room for a later draw.
func (g *Game) AvoidRoom() error {
	g.EventManager.Publish(events.RanAwayEvent{})
	g.avoidedRoom = true
	room := append([]card.Card(nil), g.Decks.Cards(deck.Room)...)
	for _, c := range room {
		if err := g.moveCard(c, deck.Room, deck.Dungeon, true); err != nil {
			return err
		}
	}
	return nil
}

// PlayCard takes a card off the room and applies it by role. Playing any
// card makes running available again in the next room.
func (g *Game) PlayCard(c card.Card) error {
	g.avoidedRoom = false
	switch c.Role() {
	case card.RoleHealth:
		g.applyHealthPotion(c)
		return g.moveCard(c, deck.Room, deck.Discard, false)
	case card.RoleWeapon:
		return g.equipWeapon(c)
	case card.RoleMonster:
		return g.battleMonster(c)
	}
	return fmt.Errorf("play %s: unknown role", c)
}

// applyHealthPotion heals up to MaxHealth. Drinking at full health still
// counts as playing the card, healing zero.
func (g *Game) applyHealthPotion(c card.Card) {
	healed := c.Value()
	if headroom := MaxHealth - g.health; healed > headroom {
		healed = headroom
	}
	g.health += healed
	g.log.Debugf("healed %d, health %d", healed, g.health)
	g.EventManager.Publish(events.HealEvent{Amount: healed, Card: c})
}

// WeaponInPlay returns the equipped weapon, or nil when the battlefield is
// empty. A non-weapon first card is an engine bug.
func (g *Game) WeaponInPlay() (*card.Card, error) {
	battlefield := g.Decks.Cards(deck.Battlefield)
	if len(battlefield) == 0 {
		return nil, nil
	}
	first := battlefield[0]
	if !first.IsWeapon() {
		return nil, fmt.Errorf("%w, got %s", ErrBattlefieldState, first)
	}
	return &first, nil
}

// MonstersInPlay returns the monsters stacked on the equipped weapon.
func (g *Game) MonstersInPlay() []card.Card {
	var monsters []card.Card
	for _, c := range g.Decks.Cards(deck.Battlefield) {
		if c.IsMonster() {
			monsters = append(monsters, c)
		}
	}
	return monsters
}

// weakestMonster returns the lowest value monster in play. Callers ensure at
// least one monster is on the battlefield.
func (g *Game) weakestMonster() card.Card {
	monsters := g.MonstersInPlay()
	weakest := monsters[0]
	for _, c := range monsters[1:] {
		if c.Value() < weakest.Value() {
			weakest = c
		}
	}
	return weakest
}

// discardBattlefield moves every battlefield card, top first, to discard.
func (g *Game) discardBattlefield() error {
	for g.Decks.Len(deck.Battlefield) > 0 {
		c, err := g.Decks.TopCard(deck.Battlefield)
		if err != nil {
			return err
		}
		if err := g.moveCard(c, deck.Battlefield, deck.Discard, false); err != nil {
			return err
		}
	}
	return nil
}

// equipWeapon makes c the equipped weapon. Any previous weapon is discarded
// along with the monsters stacked on it, resetting the weapon lock.
func (g *Game) equipWeapon(c card.Card) error {
	weapon, err := g.WeaponInPlay()
	if err != nil {
		return err
	}
	if weapon != nil {
		if err := g.discardBattlefield(); err != nil {
			return err
		}
	}
	return g.moveCard(c, deck.Room, deck.Battlefield, false)
}

// getWeaponForBattle decides whether the equipped weapon may be used against
// monster. A weapon already used against a monster can only be used again
// against strictly weaker monsters; otherwise the player fights barehanded.
func (g *Game) getWeaponForBattle(monster card.Card) (*card.Card, error) {
	weapon, err := g.WeaponInPlay()
	if err != nil {
		return nil, err
	}
	if weapon == nil {
		return nil, nil
	}
	monsters := g.MonstersInPlay()
	if len(monsters) == 0 {
		return weapon, nil
	}
	if monster.Value() < g.weakestMonster().Value() {
		return weapon, nil
	}
	return nil, nil
}

// applyDamage hits the player for the monster's value, reduced by the weapon
// when one was usable. Damage never goes negative against health, but the
// published value is left unclamped so listeners can tell a full block from
// partial mitigation.
func (g *Game) applyDamage(weapon *card.Card, monster card.Card) {
	damage := monster.Value()
	if weapon != nil {
		damage -= weapon.Value()
	}
	if damage > 0 {
		g.health -= damage
	}
	g.log.Debugf("%d damage from %s, health %d", damage, monster.Label(), g.health)
	g.EventManager.Publish(events.PlayerDamageEvent{Damage: damage, Source: monster, Weapon: weapon})
}

// battleMonster resolves fighting a monster: it goes onto the battlefield
// when a weapon is equipped, straight to discard otherwise, then damage is
// applied.
func (g *Game) battleMonster(monster card.Card) error {
	g.EventManager.Publish(events.BattleMonsterEvent{Monster: monster})
	weapon, err := g.getWeaponForBattle(monster)
	if err != nil {
		return err
	}
	dest := deck.Discard
	if g.Decks.Len(deck.Battlefield) > 0 {
		dest = deck.Battlefield
	}
	if err := g.moveCard(monster, deck.Room, dest, false); err != nil {
		return err
	}
	g.applyDamage(weapon, monster)
	return nil
}

// LoopStep fills a room and plays it down to its last card. The final card
// of a room is carried into the next refill rather than resolved.
func (g *Game) LoopStep() error {
	if err := g.InitRoom(); err != nil {
		return err
	}
	for g.IsPlaying() && g.Decks.Len(deck.Room) > 1 {
		g.EventManager.Publish(events.BeginTurnEvent{})
		choices := g.ChoicesForTurn()
		choice, err := g.chooser.ChooseTurn(g, choices)
		if err != nil {
			return err
		}
		if choice.IsRun() {
			err = g.AvoidRoom()
		} else {
			err = g.PlayCard(*choice.Card)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Run loops until the dungeon is exhausted or the player dies, then
// announces the result once.
func (g *Game) Run() error {
	for g.IsPlaying() {
		if err := g.LoopStep(); err != nil {
			return err
		}
	}
	health := g.health
	if health < 0 {
		// Internal health may pass below zero on the killing blow;
		// reporting floors it at zero.
		health = 0
	}
	g.EventManager.Publish(events.GameOverEvent{Won: g.IsPlayerAlive(), Health: health})
	return nil
}
