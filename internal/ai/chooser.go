package ai

import (
	"errors"
	"math/rand"

	"github.com/hitbox/scoundrel/internal/game"
)

// ErrNoChoices is returned when a chooser is asked to pick from nothing.
// The engine never does this; it indicates a caller bug.
var ErrNoChoices = errors.New("no choices to pick from")

// RandomChooser implements game.Chooser by picking a choice at random,
// including the run option when it is offered.
type RandomChooser struct {
	rand *rand.Rand
}

// NewRandomChooser creates a new random chooser.
func NewRandomChooser(rand *rand.Rand) *RandomChooser {
	return &RandomChooser{rand: rand}
}

func (r *RandomChooser) ChooseTurn(g *game.Game, choices []game.Choice) (game.Choice, error) {
	if len(choices) == 0 {
		return game.Choice{}, ErrNoChoices
	}
	return choices[r.rand.Intn(len(choices))], nil
}

// FirstCardChooser implements game.Chooser by always playing the first room
// card and never running. This is used for predictable testing.
type FirstCardChooser struct{}

func (d *FirstCardChooser) ChooseTurn(g *game.Game, choices []game.Choice) (game.Choice, error) {
	for _, c := range choices {
		if !c.IsRun() {
			return c, nil
		}
	}
	return game.Choice{}, ErrNoChoices
}
