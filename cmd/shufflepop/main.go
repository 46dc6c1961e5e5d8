// shufflepop is a falling-tile matching game for the terminal.
//
// Usage:
//
//	shufflepop play            - Play the tutorial (or --mode endless)
//	shufflepop menu            - Pick a mode, level or the scoreboard interactively
//	shufflepop levels          - Print the level catalog
//	shufflepop scores [mode]   - Show high scores
//	shufflepop serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.shufflepop/scores.db)
//	--config <path>      - Load tuning and levels from a YAML file
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shufflepop/internal/config"
	"github.com/vovakirdan/shufflepop/internal/games/shufflepop"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string

	// loadedConfig is the game configuration in effect for this invocation.
	loadedConfig config.ShufflePopConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shufflepop",
	Short: "Shuffle Pop - a falling-tile matching game for your terminal",
	Long: `Shuffle Pop scrolls a board of tiles down the screen. Tap to pop the
tile at the selection point; matching the previous tile by suit or color
scores and restores power. Five tutorial levels introduce stars, movement,
speed and dice tiles.

Available commands:
  play     - Play directly
  menu     - Interactive mode and level picker
  levels   - Show the level catalog
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  shufflepop play
  shufflepop play --mode endless
  shufflepop play --level 3 --seed 42
  shufflepop menu --config ./shufflepop.yaml
  shufflepop serve --ssh :2222`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return loadGameConfig()
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shufflepop/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadGameConfig installs the tuning and level catalog for every game created
// afterwards.
func loadGameConfig() error {
	cfg, err := config.LoadShufflePop(flagConfig)
	if err != nil {
		return err
	}
	if err := shufflepop.Configure(cfg); err != nil {
		return fmt.Errorf("invalid game config: %w", err)
	}
	loadedConfig = cfg
	return nil
}
