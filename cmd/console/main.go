package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwebster45206/house-hunter/internal/config"
	"github.com/jwebster45206/house-hunter/internal/logger"
	"github.com/jwebster45206/house-hunter/pkg/game"
)

func main() {
	cfg := config.Load()

	// Bubbletea owns stdout, so logs go to stderr.
	log := logger.Setup(cfg, os.Stderr)

	// A fixed HUNT_SEED reproduces room, killer and clue placement.
	var rng *rand.Rand
	if cfg.HuntSeed != 0 {
		rng = rand.New(rand.NewPCG(cfg.HuntSeed, cfg.HuntSeed))
	}

	engine, err := game.New(rng, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(NewConsoleUI(engine),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
