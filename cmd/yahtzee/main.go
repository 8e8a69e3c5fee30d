package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/louisbranch/yahtzee/internal/app"
	"github.com/louisbranch/yahtzee/internal/platform/config"
	"github.com/louisbranch/yahtzee/internal/random"
)

var (
	players = flag.Int("players", 0, "number of players (1-4); 0 asks in the menu")
	seed    = flag.Int64("seed", 0, "dice seed for reproducible games; 0 draws a random seed")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		config.Exitf("load config: %v", err)
	}
	// Flags win over the environment.
	if *players != 0 {
		cfg.Players = *players
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "yahtzee")
		if err != nil {
			config.Exitf("open log file: %v", err)
		}
		defer f.Close()
	}

	rng, err := random.NewRng(cfg.Seed)
	if err != nil {
		config.Exitf("seed dice: %v", err)
	}

	var model app.Model
	if cfg.Players != 0 {
		model, err = app.NewWithPlayers(rng, cfg.Players)
		if err != nil {
			config.Exitf("start game: %v", err)
		}
	} else {
		model = app.New(rng)
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("run ui: %v", err)
	}
}
