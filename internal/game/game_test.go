package game

import (
	"errors"
	"io"
	"testing"

	"github.com/hitbox/scoundrel/internal/card"
	"github.com/hitbox/scoundrel/internal/config"
	"github.com/hitbox/scoundrel/internal/deck"
	"github.com/hitbox/scoundrel/internal/events"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// recorder captures every published event in order.
type recorder struct {
	events []events.Event
}

func (r *recorder) HandleEvent(e events.Event) {
	r.events = append(r.events, e)
}

// firstCard always plays the first room card and never runs.
type firstCard struct{}

func (firstCard) ChooseTurn(g *Game, choices []Choice) (Choice, error) {
	return choices[0], nil
}

func mk(s card.Suit, r card.Rank) card.Card {
	return card.Card{Suit: s, Rank: r}
}

// newTestGame builds a game around the given dungeon with events recorded.
func newTestGame(t *testing.T, dungeon []card.Card) (*Game, *recorder) {
	t.Helper()
	rec := &recorder{}
	builder := NewBuilder(config.Default(), testLogger())
	builder.EventManager().Subscribe(rec)
	g, err := builder.WithDungeon(dungeon).WithChooser(firstCard{}).Build()
	if err != nil {
		t.Fatalf("failed to build game: %v", err)
	}
	return g, rec
}

func TestApplyHealthPotion(t *testing.T) {
	potion := mk(card.Hearts, card.Ten)

	t.Run("heals by card value", func(t *testing.T) {
		g, rec := newTestGame(t, []card.Card{mk(card.Clubs, card.Two)})
		g.health = 5
		g.Decks.SetDeck(deck.Room, []card.Card{potion})

		if err := g.PlayCard(potion); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.Health() != 15 {
			t.Errorf("expected health 15, got %d", g.Health())
		}
		assertHeal(t, rec, 10)
	})

	t.Run("clamps at max health", func(t *testing.T) {
		g, rec := newTestGame(t, []card.Card{mk(card.Clubs, card.Two)})
		g.health = 15
		g.Decks.SetDeck(deck.Room, []card.Card{potion})

		if err := g.PlayCard(potion); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.Health() != MaxHealth {
			t.Errorf("expected health %d, got %d", MaxHealth, g.Health())
		}
		assertHeal(t, rec, 5)
	})

	t.Run("still emits a zero heal at full health", func(t *testing.T) {
		g, rec := newTestGame(t, []card.Card{mk(card.Clubs, card.Two)})
		g.Decks.SetDeck(deck.Room, []card.Card{potion})

		if err := g.PlayCard(potion); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.Health() != MaxHealth {
			t.Errorf("expected health %d, got %d", MaxHealth, g.Health())
		}
		assertHeal(t, rec, 0)
	})

	t.Run("moves the potion to discard", func(t *testing.T) {
		g, _ := newTestGame(t, []card.Card{mk(card.Clubs, card.Two)})
		g.Decks.SetDeck(deck.Room, []card.Card{potion})

		if err := g.PlayCard(potion); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.Decks.Len(deck.Room) != 0 || g.Decks.Len(deck.Discard) != 1 {
			t.Errorf("expected the potion in discard")
		}
	})
}

func assertHeal(t *testing.T, rec *recorder, amount int) {
	t.Helper()
	for _, e := range rec.events {
		if heal, ok := e.(events.HealEvent); ok {
			if heal.Amount != amount {
				t.Errorf("expected heal amount %d, got %d", amount, heal.Amount)
			}
			return
		}
	}
	t.Error("no HealEvent was published")
}

func TestEquipWeapon(t *testing.T) {
	t.Run("first weapon goes straight to the battlefield", func(t *testing.T) {
		weapon := mk(card.Diamonds, card.Five)
		g, _ := newTestGame(t, []card.Card{mk(card.Clubs, card.Two)})
		g.Decks.SetDeck(deck.Room, []card.Card{weapon})

		if err := g.PlayCard(weapon); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		battlefield := g.Decks.Cards(deck.Battlefield)
		if len(battlefield) != 1 || battlefield[0] != weapon {
			t.Errorf("expected battlefield [%s], got %v", weapon, battlefield)
		}
	})

	t.Run("replacing discards the old weapon and its monsters", func(t *testing.T) {
		old := mk(card.Diamonds, card.Five)
		monsterA := mk(card.Clubs, card.Four)
		monsterB := mk(card.Spades, card.Two)
		next := mk(card.Diamonds, card.Eight)

		g, _ := newTestGame(t, []card.Card{mk(card.Clubs, card.Two)})
		g.Decks.SetDeck(deck.Battlefield, []card.Card{old, monsterA, monsterB})
		g.Decks.SetDeck(deck.Room, []card.Card{next})

		if err := g.PlayCard(next); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		battlefield := g.Decks.Cards(deck.Battlefield)
		if len(battlefield) != 1 || battlefield[0] != next {
			t.Errorf("expected battlefield [%s], got %v", next, battlefield)
		}
		if g.Decks.Len(deck.Discard) != 3 {
			t.Errorf("expected 3 cards in discard, got %d", g.Decks.Len(deck.Discard))
		}
	})
}

func TestGetWeaponForBattle(t *testing.T) {
	weapon := mk(card.Diamonds, card.Five)
	monster := mk(card.Clubs, card.Eight)

	cases := []struct {
		name        string
		battlefield []card.Card
		attacker    card.Card
		usable      bool
	}{
		{"unarmed player has no weapon", nil, mk(card.Clubs, card.Two), false},
		{"fresh weapon is usable against anything", []card.Card{weapon}, mk(card.Spades, card.Ace), true},
		{"usable against a strictly weaker monster", []card.Card{weapon, monster}, mk(card.Clubs, card.Seven), true},
		{"a tie does not qualify", []card.Card{weapon, monster}, mk(card.Spades, card.Eight), false},
		{"not usable against a stronger monster", []card.Card{weapon, monster}, mk(card.Spades, card.Nine), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newTestGame(t, []card.Card{mk(card.Clubs, card.Two)})
			g.Decks.SetDeck(deck.Battlefield, tc.battlefield)

			got, err := g.getWeaponForBattle(tc.attacker)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.usable && (got == nil || *got != weapon) {
				t.Errorf("expected weapon %s to be usable", weapon)
			}
			if !tc.usable && got != nil {
				t.Errorf("expected no usable weapon, got %s", *got)
			}
		})
	}

	t.Run("weakest monster governs the lock", func(t *testing.T) {
		// Weapon fought an 8 then a 4; only monsters below 4 qualify now.
		g, _ := newTestGame(t, []card.Card{mk(card.Clubs, card.Two)})
		g.Decks.SetDeck(deck.Battlefield, []card.Card{
			weapon,
			mk(card.Clubs, card.Eight),
			mk(card.Spades, card.Four),
		})

		if got, _ := g.getWeaponForBattle(mk(card.Clubs, card.Three)); got == nil {
			t.Error("expected weapon usable against Monster(3)")
		}
		if got, _ := g.getWeaponForBattle(mk(card.Clubs, card.Five)); got != nil {
			t.Error("expected weapon locked against Monster(5)")
		}
	})

	t.Run("non-weapon first card is an engine bug", func(t *testing.T) {
		g, _ := newTestGame(t, []card.Card{mk(card.Clubs, card.Two)})
		g.Decks.SetDeck(deck.Battlefield, []card.Card{mk(card.Clubs, card.Eight)})

		_, err := g.getWeaponForBattle(mk(card.Clubs, card.Three))
		if !errors.Is(err, ErrBattlefieldState) {
			t.Errorf("expected ErrBattlefieldState, got %v", err)
		}
	})
}

func TestBattleMonster(t *testing.T) {
	t.Run("unarmed takes full damage and discards the monster", func(t *testing.T) {
		monster := mk(card.Spades, card.Nine)
		g, rec := newTestGame(t, []card.Card{mk(card.Clubs, card.Two)})
		g.Decks.SetDeck(deck.Room, []card.Card{monster})

		if err := g.PlayCard(monster); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.Health() != 11 {
			t.Errorf("expected health 11, got %d", g.Health())
		}
		if g.Decks.Len(deck.Discard) != 1 || g.Decks.Len(deck.Battlefield) != 0 {
			t.Error("expected the monster in discard, not on the battlefield")
		}
		assertDamage(t, rec, 9, nil)
	})

	t.Run("weapon overkill reports negative damage and costs nothing", func(t *testing.T) {
		weapon := mk(card.Diamonds, card.Ten)
		monster := mk(card.Clubs, card.Four)
		g, rec := newTestGame(t, []card.Card{mk(card.Clubs, card.Two)})
		g.Decks.SetDeck(deck.Battlefield, []card.Card{weapon})
		g.Decks.SetDeck(deck.Room, []card.Card{monster})

		if err := g.PlayCard(monster); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.Health() != MaxHealth {
			t.Errorf("expected full health, got %d", g.Health())
		}
		battlefield := g.Decks.Cards(deck.Battlefield)
		if len(battlefield) != 2 || battlefield[1] != monster {
			t.Errorf("expected the monster stacked on the weapon, got %v", battlefield)
		}
		assertDamage(t, rec, -6, &weapon)
	})

	t.Run("locked weapon means fighting barehanded onto the battlefield", func(t *testing.T) {
		weapon := mk(card.Diamonds, card.Five)
		first := mk(card.Clubs, card.Four)
		next := mk(card.Spades, card.Seven)
		g, rec := newTestGame(t, []card.Card{mk(card.Clubs, card.Two)})
		g.Decks.SetDeck(deck.Battlefield, []card.Card{weapon, first})
		g.Decks.SetDeck(deck.Room, []card.Card{next})

		if err := g.PlayCard(next); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// The monster still stacks, but the weapon gave no protection.
		if g.Health() != 13 {
			t.Errorf("expected health 13, got %d", g.Health())
		}
		if g.Decks.Len(deck.Battlefield) != 3 {
			t.Errorf("expected 3 battlefield cards, got %d", g.Decks.Len(deck.Battlefield))
		}
		assertDamage(t, rec, 7, nil)
	})

	t.Run("announces the monster before resolving", func(t *testing.T) {
		monster := mk(card.Spades, card.Nine)
		g, rec := newTestGame(t, []card.Card{mk(card.Clubs, card.Two)})
		g.Decks.SetDeck(deck.Room, []card.Card{monster})

		if err := g.PlayCard(monster); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var order []string
		for _, e := range rec.events {
			switch e.(type) {
			case events.BattleMonsterEvent:
				order = append(order, "battle")
			case events.MoveCardEvent:
				order = append(order, "move")
			case events.PlayerDamageEvent:
				order = append(order, "damage")
			}
		}
		want := []string{"battle", "move", "damage"}
		if len(order) != len(want) {
			t.Fatalf("expected events %v, got %v", want, order)
		}
		for i := range want {
			if order[i] != want[i] {
				t.Fatalf("expected events %v, got %v", want, order)
			}
		}
	})
}

func assertDamage(t *testing.T, rec *recorder, damage int, weapon *card.Card) {
	t.Helper()
	for _, e := range rec.events {
		if hit, ok := e.(events.PlayerDamageEvent); ok {
			if hit.Damage != damage {
				t.Errorf("expected damage %d, got %d", damage, hit.Damage)
			}
			if (weapon == nil) != (hit.Weapon == nil) {
				t.Errorf("expected weapon %v, got %v", weapon, hit.Weapon)
			} else if weapon != nil && *hit.Weapon != *weapon {
				t.Errorf("expected weapon %s, got %s", *weapon, *hit.Weapon)
			}
			return
		}
	}
	t.Error("no PlayerDamageEvent was published")
}

func TestInitRoom(t *testing.T) {
	// GIVEN a six-card dungeon
	dungeon := []card.Card{
		mk(card.Clubs, card.Two),
		mk(card.Clubs, card.Three),
		mk(card.Hearts, card.Four),
		mk(card.Spades, card.Five),
		mk(card.Diamonds, card.Six),
		mk(card.Clubs, card.Seven),
	}
	g, rec := newTestGame(t, dungeon)

	// WHEN the room is initialized
	if err := g.InitRoom(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// THEN the top four cards moved in draw order and the room was
	// announced exactly once
	if g.Decks.Len(deck.Room) != RoomSize || g.Decks.Len(deck.Dungeon) != 2 {
		t.Errorf("expected room of %d with 2 left, got %d and %d",
			RoomSize, g.Decks.Len(deck.Room), g.Decks.Len(deck.Dungeon))
	}
	room := g.Decks.Cards(deck.Room)
	if room[0] != mk(card.Clubs, card.Seven) || room[3] != mk(card.Hearts, card.Four) {
		t.Errorf("unexpected draw order: %v", room)
	}
	moves, inits := 0, 0
	for _, e := range rec.events {
		switch e.(type) {
		case events.MoveCardEvent:
			moves++
		case events.InitRoomEvent:
			inits++
		}
	}
	if moves != 4 || inits != 1 {
		t.Errorf("expected 4 moves and 1 init, got %d and %d", moves, inits)
	}
}

func TestAvoidRoom(t *testing.T) {
	h5 := mk(card.Hearts, card.Five)
	d8 := mk(card.Diamonds, card.Eight)
	c3 := mk(card.Clubs, card.Three)
	s9 := mk(card.Spades, card.Nine)
	d2 := mk(card.Diamonds, card.Two)

	setup := func(t *testing.T) (*Game, *recorder) {
		g, rec := newTestGame(t, []card.Card{d2})
		g.Decks.SetDeck(deck.Room, []card.Card{h5, d8, c3, s9})
		return g, rec
	}

	t.Run("re-queues the room at the bottom in original order", func(t *testing.T) {
		g, _ := setup(t)
		if err := g.AvoidRoom(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Drawing continues with d2, then the avoided room in its
		// original order.
		want := []card.Card{s9, c3, d8, h5, d2}
		got := g.Decks.Cards(deck.Dungeon)
		if len(got) != len(want) {
			t.Fatalf("expected dungeon %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected dungeon %v, got %v", want, got)
			}
		}
		if g.Decks.Len(deck.Room) != 0 {
			t.Error("expected the room to be empty")
		}
	})

	t.Run("announces running before the cards move", func(t *testing.T) {
		g, rec := setup(t)
		if err := g.AvoidRoom(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := rec.events[0].(events.RanAwayEvent); !ok {
			t.Errorf("expected RanAwayEvent first, got %T", rec.events[0])
		}
	})

	t.Run("cannot run twice in a row", func(t *testing.T) {
		g, _ := setup(t)
		if err := g.AvoidRoom(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := g.InitRoom(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !g.IsNewRoom() {
			t.Fatal("expected a full room after refill")
		}
		if g.IsAvoidRoomAvailable() {
			t.Error("running must not be offered right after running")
		}
		for _, choice := range g.ChoicesForTurn() {
			if choice.IsRun() {
				t.Error("choice set must not include the run sentinel")
			}
		}
	})

	t.Run("playing a card makes running available again", func(t *testing.T) {
		g, _ := setup(t)
		if err := g.AvoidRoom(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := g.InitRoom(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := g.PlayCard(h5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := g.InitRoom(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !g.IsAvoidRoomAvailable() {
			t.Error("expected running to be offered in the next full room")
		}
	})
}

func TestChoicesForTurn(t *testing.T) {
	t.Run("a touched room offers no run", func(t *testing.T) {
		g, _ := newTestGame(t, []card.Card{mk(card.Clubs, card.Two)})
		g.Decks.SetDeck(deck.Room, []card.Card{
			mk(card.Clubs, card.Three),
			mk(card.Hearts, card.Four),
			mk(card.Spades, card.Five),
		})
		choices := g.ChoicesForTurn()
		if len(choices) != 3 {
			t.Fatalf("expected 3 choices, got %d", len(choices))
		}
		for _, c := range choices {
			if c.IsRun() {
				t.Error("unexpected run choice")
			}
		}
	})

	t.Run("a full room offers run last", func(t *testing.T) {
		g, _ := newTestGame(t, []card.Card{mk(card.Clubs, card.Two)})
		g.Decks.SetDeck(deck.Room, []card.Card{
			mk(card.Clubs, card.Three),
			mk(card.Hearts, card.Four),
			mk(card.Spades, card.Five),
			mk(card.Diamonds, card.Six),
		})
		choices := g.ChoicesForTurn()
		if len(choices) != 5 {
			t.Fatalf("expected 5 choices, got %d", len(choices))
		}
		if !choices[4].IsRun() || choices[4].Label != "Run" {
			t.Errorf("expected the run sentinel last, got %+v", choices[4])
		}
		for i, c := range choices[:4] {
			if c.Card == nil || c.Label != c.Card.Label() {
				t.Errorf("choice %d should carry a labeled room card", i)
			}
		}
	})
}

func TestLastCardBoundary(t *testing.T) {
	// GIVEN a dungeon holding a single monster
	lone := mk(card.Clubs, card.Five)
	g, rec := newTestGame(t, []card.Card{lone})

	// WHEN the game runs to completion
	if err := g.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// THEN the player wins without the last card ever resolving
	if !g.IsPlayerAlive() || g.Health() != MaxHealth {
		t.Errorf("expected an unhurt winner, health %d", g.Health())
	}
	room := g.Decks.Cards(deck.Room)
	if len(room) != 1 || room[0] != lone {
		t.Errorf("expected %s left in the room, got %v", lone, room)
	}
	var over *events.GameOverEvent
	for _, e := range rec.events {
		if o, ok := e.(events.GameOverEvent); ok {
			o := o
			over = &o
		}
	}
	if over == nil || !over.Won {
		t.Errorf("expected a winning GameOverEvent, got %+v", over)
	}
}

func TestLosingRun(t *testing.T) {
	// GIVEN a dungeon of monsters too strong to survive
	dungeon := []card.Card{
		mk(card.Spades, card.Ten),
		mk(card.Spades, card.Jack),
		mk(card.Spades, card.Queen),
		mk(card.Spades, card.King),
		mk(card.Spades, card.Ace),
	}
	g, rec := newTestGame(t, dungeon)

	// WHEN the player fights in draw order
	if err := g.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// THEN the game is lost: 14 then 13 damage overruns 20 health. The
	// internal count passes below zero but reporting floors at zero.
	if g.IsPlayerAlive() {
		t.Error("expected a dead player")
	}
	if g.Health() != -7 {
		t.Errorf("expected internal health -7, got %d", g.Health())
	}
	for _, e := range rec.events {
		if over, ok := e.(events.GameOverEvent); ok {
			if over.Won || over.Health != 0 {
				t.Errorf("expected a lost game reported at 0 health, got %+v", over)
			}
		}
	}
}

func TestInvincibleNeverLoses(t *testing.T) {
	// GIVEN god mode and the same deadly dungeon
	cfg := config.Default()
	cfg.Invincible = true
	dungeon := []card.Card{
		mk(card.Spades, card.Ten),
		mk(card.Spades, card.Jack),
		mk(card.Spades, card.Queen),
		mk(card.Spades, card.King),
		mk(card.Spades, card.Ace),
	}
	g, err := NewBuilder(cfg, testLogger()).
		WithDungeon(dungeon).
		WithChooser(firstCard{}).
		Build()
	if err != nil {
		t.Fatalf("failed to build game: %v", err)
	}

	// WHEN the player fights everything
	if err := g.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// THEN the game ends in a win despite the wounds
	if !g.IsPlayerAlive() {
		t.Error("an invincible player must stay alive")
	}
	if g.Health() > 0 {
		t.Errorf("expected health to have been spent anyway, got %d", g.Health())
	}
}
