package cli

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/hitbox/scoundrel/internal/ai"
	"github.com/hitbox/scoundrel/internal/card"
	"github.com/hitbox/scoundrel/internal/config"
	"github.com/hitbox/scoundrel/internal/game"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

// ErrQuit reports that the player abandoned the game at a prompt.
var ErrQuit = errors.New("player quit")

// CLI manages all command-line interactions. It doubles as the game.Chooser
// for interactive play: the engine calls back into it for every turn.
type CLI struct {
	log  *logrus.Logger
	line *liner.State
}

// NewCLI creates a new command-line interface manager.
func NewCLI(log *logrus.Logger) *CLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &CLI{
		log:  log,
		line: line,
	}
}

// Run is the main entry point for the CLI application.
func (c *CLI) Run(args []string, cfg *config.GameConfig) error {
	defer c.line.Close()
	if len(args) < 1 {
		c.printUsage()
		return errors.New("no command provided")
	}

	switch args[0] {
	case "play":
		return c.runPlayMode(cfg)
	case "sim":
		count := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				c.printUsage()
				return fmt.Errorf("invalid game count '%s'", args[1])
			}
			count = n
		}
		return c.runSimulationMode(cfg, count)
	default:
		c.printUsage()
		return fmt.Errorf("unknown command '%s'", args[0])
	}
}

// newRand seeds from the config, falling back to the clock.
func newRand(cfg *config.GameConfig) *rand.Rand {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// shuffledDungeon builds and shuffles a dungeon deck. The engine never
// shuffles; it takes the deck as dealt here.
func shuffledDungeon(cfg *config.GameConfig, r *rand.Rand) []card.Card {
	dungeon := card.NewDungeon(cfg.HalfMonsters)
	r.Shuffle(len(dungeon), func(i, j int) { dungeon[i], dungeon[j] = dungeon[j], dungeon[i] })
	return dungeon
}

func (c *CLI) runPlayMode(cfg *config.GameConfig) error {
	C.Header.Println("--- Entering the Dungeon ---")

	builder := game.NewBuilder(cfg, c.log)
	renderer := &Renderer{}
	builder.EventManager().Subscribe(renderer)

	g, err := builder.
		WithDungeon(shuffledDungeon(cfg, newRand(cfg))).
		WithChooser(c).
		Build()
	if err != nil {
		return fmt.Errorf("failed to build game: %w", err)
	}
	renderer.Game = g

	if err := g.Run(); err != nil {
		if errors.Is(err, ErrQuit) {
			C.Info.Println("\nGoodbye!")
			return nil
		}
		return err
	}
	return nil
}

func (c *CLI) runSimulationMode(cfg *config.GameConfig, count int) error {
	C.Header.Printf("--- Running %d Simulated Game(s) ---\n", count)

	r := newRand(cfg)
	wins := 0
	var results []simResult
	for i := 0; i < count; i++ {
		builder := game.NewBuilder(cfg, c.log)
		brain := ai.NewBrain(c.log)

		g, err := builder.
			WithDungeon(shuffledDungeon(cfg, r)).
			WithChooser(brain).
			Build()
		if err != nil {
			return fmt.Errorf("failed to build game: %w", err)
		}
		if err := g.Run(); err != nil {
			return fmt.Errorf("game %d: %w", i+1, err)
		}

		won := g.IsPlayerAlive()
		if won {
			wins++
		}
		results = append(results, simResult{
			Game:   i + 1,
			Won:    won,
			Health: g.Health(),
		})
	}

	RenderSimulation(results, wins)
	return nil
}

// ChooseTurn implements game.Chooser for a human at the terminal. It prints
// the letter-indexed room menu and prompts until a valid pick.
func (c *CLI) ChooseTurn(g *game.Game, choices []game.Choice) (game.Choice, error) {
	for {
		C.Header.Println("\nChoose card from room")
		for i, choice := range choices {
			label := choice.Label
			if !choice.IsRun() {
				label = ColorizeCard(*choice.Card)
			}
			fmt.Printf("(%c) %s\n", 'a'+i, label)
		}

		input, err := c.line.Prompt(fmt.Sprintf("Health x %d> ", g.Health()))
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				return game.Choice{}, ErrQuit
			}
			return game.Choice{}, fmt.Errorf("error reading line: %w", err)
		}
		input = strings.TrimSpace(strings.ToLower(input))
		if input == "q" || input == "quit" {
			return game.Choice{}, ErrQuit
		}
		if len(input) == 1 {
			index := int(input[0] - 'a')
			if index >= 0 && index < len(choices) {
				return choices[index], nil
			}
		}
		C.Warn.Printf("Invalid input: %s\n", input)
	}
}
