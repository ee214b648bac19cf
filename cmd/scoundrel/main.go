package main

import (
	"flag"
	"os"

	"github.com/hitbox/scoundrel/internal/cli"
	"github.com/hitbox/scoundrel/internal/config"

	"github.com/sirupsen/logrus"
)

func main() {
	// 1. Parse command-line flags
	configPath := flag.String("config", "scoundrel.json", "Path to a JSON config file")
	logLevel := flag.String("loglevel", "", "Set logging level (debug, info, warn, error)")
	seed := flag.Int64("seed", 0, "Set the shuffle seed")
	god := flag.Bool("god", false, "Invincible player mode")
	halfMonsters := flag.Bool("half-monsters", false, "Exclude spades from the dungeon")
	flag.Parse()

	// 2. Load game configuration; a missing file just means defaults.
	cfg, err := config.Load(*configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			logrus.Fatalf("Failed to load configuration: %v", err)
		}
		cfg = config.Default()
	}

	// 3. Flags override the file.
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *god {
		cfg.Invincible = true
	}
	if *halfMonsters {
		cfg.HalfMonsters = true
	}

	// 4. Set up top-level dependencies (Logger)
	log := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, ForceColors: true})

	// 5. Create the CLI, injecting the logger, and run the application.
	ui := cli.NewCLI(log)
	if err := ui.Run(flag.Args(), cfg); err != nil {
		log.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}
}
