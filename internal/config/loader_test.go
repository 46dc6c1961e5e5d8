package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_MatchesHardcoded(t *testing.T) {
	embedded := Default()
	hardcoded := DefaultShufflePopConfig()

	assert.Equal(t, hardcoded.Tuning, embedded.Tuning)
	require.Len(t, embedded.Levels, LevelCount)
	for i := range hardcoded.Levels {
		want, got := hardcoded.Levels[i], embedded.Levels[i]
		assert.Equal(t, want.Title, got.Title, "level %d title", i)
		assert.Equal(t, want.Text, got.Text, "level %d text", i)
		assert.Equal(t, want.Bag, got.Bag, "level %d bag", i)
		assert.ElementsMatch(t, want.Examples, got.Examples, "level %d examples", i)
	}
}

func TestDefault_LevelBags(t *testing.T) {
	cfg := Default()

	assert.Equal(t, BagConfig{Dice: 1}, cfg.Levels[0].Bag)
	assert.Equal(t, BagConfig{Suites: 32, Stars: 3, Movements: 12, Speeds: 1, Dice: 4}, cfg.Levels[5].Bag)
	assert.Equal(t, 52, cfg.Levels[5].Bag.Total())
	assert.NoError(t, cfg.Validate())
}

func TestLoadShufflePop_CustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("tuning:\n  advance_score: 300\n  flash_ticks: 10\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadShufflePop(path)
	require.NoError(t, err)

	assert.Equal(t, 300.0, cfg.Tuning.AdvanceScore)
	assert.Equal(t, 10, cfg.Tuning.FlashTicks)
	// Untouched keys keep their defaults
	assert.Equal(t, 0.015, cfg.Tuning.InitialSpeed)
	assert.Len(t, cfg.Levels, LevelCount)
}

func TestLoadShufflePop_MissingCustomPath(t *testing.T) {
	_, err := LoadShufflePop(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParse_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"too few levels", "levels:\n  - title: only\n    bag: {suites: 1}\n"},
		{"degenerate bag", "tuning: {}\nlevels:\n" + levelsWithBag(0, 0, 0, 0, 0)},
		{"negative weight", "levels:\n" + levelsWithBag(-1, 2, 0, 0, 0)},
		{"zero speed", "tuning:\n  initial_speed: 0\n"},
		{"malformed", "tuning: [1, 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParse_ValidationErrorsAreWrapped(t *testing.T) {
	_, err := Parse([]byte("tuning:\n  flash_ticks: 0\n  decay_divisor: 0\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "flash_ticks")
	assert.Contains(t, err.Error(), "decay_divisor")
}

func TestMarshal_RoundTripsThroughParse(t *testing.T) {
	data, err := Marshal(DefaultShufflePopConfig())
	require.NoError(t, err)

	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, DefaultTuning(), cfg.Tuning)
	assert.Equal(t, "Dice", cfg.Levels[5].Title)
}

func TestForTickRate(t *testing.T) {
	base := DefaultTuning()

	assert.Equal(t, base, base.ForTickRate(ReferenceTickRate))
	assert.Equal(t, base, base.ForTickRate(0))

	half := base.ForTickRate(30)
	assert.InDelta(t, base.InitialSpeed*2, half.InitialSpeed, 1e-12)
	assert.InDelta(t, base.Acceleration*2, half.Acceleration, 1e-12)
	assert.InDelta(t, base.SpeedBoost*2, half.SpeedBoost, 1e-12)
	assert.Equal(t, 8, half.FlashTicks)
	assert.Equal(t, base.DecayDivisor, half.DecayDivisor)

	// Rows scrolled per second stay the same
	assert.InDelta(t, base.InitialSpeed*60, half.InitialSpeed*30, 1e-12)
}

func levelsWithBag(suites, stars, moves, speeds, dice int) string {
	var sb strings.Builder
	for i := 0; i < LevelCount; i++ {
		fmt.Fprintf(&sb, "  - title: level%d\n", i)
		fmt.Fprintf(&sb, "    bag: {suites: %d, stars: %d, movements: %d, speeds: %d, dice: %d}\n",
			suites, stars, moves, speeds, dice)
	}
	return sb.String()
}
