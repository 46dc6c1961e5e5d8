package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shufflepop/internal/games/shufflepop"
	"github.com/vovakirdan/shufflepop/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 scores for a mode (tutorial or endless; default
tutorial).

Examples:
  shufflepop scores
  shufflepop scores endless
  shufflepop scores endless --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores of the mode")
}

// gameIDFor accepts a mode name or a registry ID.
func gameIDFor(arg string) (string, error) {
	switch strings.ToLower(arg) {
	case "", string(shufflepop.ModeTutorial), shufflepop.GameID:
		return shufflepop.GameID, nil
	case string(shufflepop.ModeEndless), shufflepop.EndlessGameID:
		return shufflepop.EndlessGameID, nil
	}
	return "", fmt.Errorf("unknown mode %q (want tutorial or endless)", arg)
}

func runScores(cmd *cobra.Command, args []string) error {
	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	gameID, err := gameIDFor(arg)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared scores for %s.\n", gameID)
		return nil
	}

	scores, err := store.TopScores(gameID, storage.DefaultLimit)
	if err != nil {
		return err
	}
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	printScores(out, gameID, scores, stats)
	return nil
}

func printScores(w io.Writer, gameID string, scores []storage.ScoreEntry, stats *storage.GameStats) {
	fmt.Fprintf(w, "High Scores - %s\n\n", gameID)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		return
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-12s  %s\n", "Rank", "Score", "Level", "Player", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-12s  %s\n", "----", "-----", "-----", "------", "----")
	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(w, "  %-4d  %-8d  %-5d  %-12s  %s\n",
			i+1, e.Score, e.Level, player, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats != nil {
		fmt.Fprintf(w, "\nBest: %d  Runs: %d  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
}
