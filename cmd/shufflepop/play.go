package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shufflepop/internal/games/shufflepop"
	"github.com/vovakirdan/shufflepop/internal/platform/tui"
)

var (
	flagMode  string
	flagLevel int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Shuffle Pop",
	Long: `Start a run directly, without the menu.

Controls:
  Space/Enter/T/Click  - Tap
  Esc/B                - Leave
  Ctrl+S               - Screenshot
  Q/Ctrl+C             - Quit

Modes:
  tutorial - Title screen, then levels 1-5 with intro messages
  endless  - Straight into the final level, which never advances

Examples:
  shufflepop play
  shufflepop play --mode endless
  shufflepop play --level 4
  shufflepop play --fps 30 --seed 7`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", string(shufflepop.ModeTutorial), "Mode: tutorial or endless")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start at this tutorial level (1-5)")
}

// selectionFor maps a mode name to its menu selection.
func selectionFor(mode string, level int) (tui.MenuSelection, error) {
	switch shufflepop.Mode(mode) {
	case shufflepop.ModeTutorial:
		return tui.MenuSelection{GameID: shufflepop.GameID, Level: level}, nil
	case shufflepop.ModeEndless:
		return tui.MenuSelection{GameID: shufflepop.EndlessGameID, Level: level}, nil
	}
	return tui.MenuSelection{}, fmt.Errorf("unknown mode %q (want tutorial or endless)", mode)
}

func runPlay(_ *cobra.Command, _ []string) error {
	sel, err := selectionFor(flagMode, flagLevel)
	if err != nil {
		return err
	}
	if flagLevel < 0 {
		return fmt.Errorf("--level must be positive, got %d", flagLevel)
	}

	logger, closeLog, err := newLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := tui.CreateGame(sel)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	_, err = tui.Run(game, store, runtimeConfig(),
		tui.WithLogger(logger),
		tui.WithPlayer(playerName()),
	)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
