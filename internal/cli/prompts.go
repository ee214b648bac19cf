package cli

import (
	"fmt"
	"os"

	"github.com/hitbox/scoundrel/internal/card"
	"github.com/hitbox/scoundrel/internal/deck"
	"github.com/hitbox/scoundrel/internal/game"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// C holds pre-configured color objects for printing to the console.
var C = struct {
	Good, Bad, Warn, Info, Header, Prompt *color.Color
}{
	Good:   color.New(color.FgGreen),
	Bad:    color.New(color.FgRed),
	Warn:   color.New(color.FgYellow),
	Info:   color.New(color.FgCyan),
	Header: color.New(color.FgWhite, color.Bold),
	Prompt: color.New(color.FgHiWhite),
}

// roleColors maps card roles to display colors.
var roleColors = map[card.Role]*color.Color{
	card.RoleHealth:  color.New(color.FgGreen),
	card.RoleWeapon:  color.New(color.FgCyan),
	card.RoleMonster: color.New(color.FgRed),
}

// ColorizeCard returns a card's game label colored by its role.
func ColorizeCard(c card.Card) string {
	if col, ok := roleColors[c.Role()]; ok {
		return col.Sprint(c.Label())
	}
	return c.Label()
}

// RenderBattlefield displays the equipped weapon and the monsters stacked on
// it, or a short message when nothing is in play.
func RenderBattlefield(g *game.Game) {
	cards := g.Decks.Cards(deck.Battlefield)
	if len(cards) == 0 {
		C.Info.Println("\nThe battlefield awaits you")
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Battlefield")
	t.AppendHeader(table.Row{"Card", "Suit", "Value"})
	for _, c := range cards {
		t.AppendRow(table.Row{ColorizeCard(c), c.Suit.String(), c.Value()})
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.Render()
}

// RenderStatus displays the run's final standing: health and pile sizes.
func RenderStatus(g *game.Game) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Health", "Dungeon", "Room", "Battlefield", "Discard"})
	t.AppendRow(table.Row{
		g.Health(),
		g.Decks.Len(deck.Dungeon),
		g.Decks.Len(deck.Room),
		g.Decks.Len(deck.Battlefield),
		g.Decks.Len(deck.Discard),
	})
	t.SetStyle(table.StyleLight)
	t.Render()
}

// simResult records the outcome of one simulated game.
type simResult struct {
	Game   int
	Won    bool
	Health int
}

// RenderSimulation displays the outcome table of a batch of simulated games.
func RenderSimulation(results []simResult, wins int) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Simulation Results")
	t.AppendHeader(table.Row{"Game", "Outcome", "Final Health"})
	for _, res := range results {
		outcome := C.Bad.Sprint("died")
		if res.Won {
			outcome = C.Good.Sprint("won")
		}
		t.AppendRow(table.Row{res.Game, outcome, res.Health})
	}
	t.AppendFooter(table.Row{"", "wins", fmt.Sprintf("%d/%d", wins, len(results))})
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignRight}})
	t.Render()
}

func (c *CLI) printUsage() {
	C.Header.Println("\n--- Scoundrel ---")
	fmt.Println("A single-player dungeon crawl through a deck of cards.")

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Command", "Description"})
	t.AppendRows([]table.Row{
		{"play", "Play an interactive game at the terminal."},
		{"sim [n]", "Run n automated games and report the outcomes."},
	})
	t.SetStyle(table.StyleLight)
	t.Render()

	fmt.Println("\nFlags:")
	fmt.Println("  -seed N           Shuffle with a fixed seed.")
	fmt.Println("  -god              Invincible player mode.")
	fmt.Println("  -half-monsters    Exclude spades from the dungeon.")
	fmt.Println("  -loglevel debug   Enable rule-resolution tracing.")
}
