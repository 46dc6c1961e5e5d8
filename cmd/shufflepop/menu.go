package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shufflepop/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode, a level or the scoreboard interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
Leaving a run with Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case result.Selection != nil:
			game, err := tui.CreateGame(*result.Selection)
			if err != nil {
				return err
			}
			backToMenu, err := tui.Run(game, store, cfg,
				tui.WithLogger(logger),
				tui.WithPlayer(playerName()),
			)
			if err != nil {
				return fmt.Errorf("running game: %w", err)
			}
			if !backToMenu {
				return nil
			}
		}
	}
}
