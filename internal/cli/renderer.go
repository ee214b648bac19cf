package cli

import (
	"github.com/hitbox/scoundrel/internal/events"
	"github.com/hitbox/scoundrel/internal/game"
)

// Renderer implements the events.Listener interface to print game progress
// to the console. Game is set once the game is built; the renderer only ever
// reads from it.
type Renderer struct {
	Game *game.Game
}

// HandleEvent is the central dispatcher for rendering events.
func (r *Renderer) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.InitRoomEvent:
		C.Info.Println("\nYou step into a new room.")
	case events.BeginTurnEvent:
		r.renderBattlefield()
	case events.RanAwayEvent:
		C.Warn.Println("\nYou run from the room.")
	case events.HealEvent:
		C.Good.Printf("\nYou healed for %d.\n", event.Amount)
	case events.BattleMonsterEvent:
		C.Info.Printf("\nYou face %s.\n", ColorizeCard(event.Monster))
	case events.PlayerDamageEvent:
		r.renderDamage(event)
	case events.GameOverEvent:
		r.renderGameOver(event)
	}
}

func (r *Renderer) renderBattlefield() {
	if r.Game == nil {
		return
	}
	RenderBattlefield(r.Game)
}

func (r *Renderer) renderDamage(event events.PlayerDamageEvent) {
	switch {
	case event.Damage <= 0:
		C.Good.Printf("\nYour weapon avoids all damage from %s!\n", ColorizeCard(event.Source))
	case event.Damage == event.Source.Value():
		C.Bad.Printf("\n%s does full damage!\n", ColorizeCard(event.Source))
	default:
		C.Warn.Printf("\n%d damage from %s.\n", event.Damage, ColorizeCard(event.Source))
	}
}

func (r *Renderer) renderGameOver(event events.GameOverEvent) {
	C.Header.Println("\n--- GAME OVER ---")
	if r.Game != nil {
		RenderStatus(r.Game)
	}
	if event.Won {
		C.Good.Println("You win!")
	} else {
		C.Bad.Println("You died")
	}
}
