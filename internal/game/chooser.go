package game

import "github.com/hitbox/scoundrel/internal/card"

// Choice is one legal option for a turn: either a card from the room, or the
// run sentinel (nil Card) when avoiding the room is allowed.
type Choice struct {
	Card  *card.Card
	Label string
}

// IsRun reports whether the choice is the run sentinel.
func (c Choice) IsRun() bool {
	return c.Card == nil
}

// Chooser is the interface the engine uses to obtain the next action. It is
// implemented outside the engine (interactive prompt, scripted agent). The
// engine places no bound on how long ChooseTurn takes; returning an error
// abandons the game and propagates out of the loop.
//
// The returned Choice must be one of the given choices. The engine matches
// the returned card by value against the room, so a stale or invented card
// surfaces as a CardNotFound error.
type Chooser interface {
	ChooseTurn(g *Game, choices []Choice) (Choice, error)
}
