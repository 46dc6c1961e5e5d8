package config

import (
	_ "embed"
)

//go:embed defaults/shufflepop.yaml
var defaultShufflePopYAML []byte

// DefaultTuning returns the tuning the game was balanced with at 60 ticks per second.
func DefaultTuning() TuningConfig {
	return TuningConfig{
		BaseScore:       10,
		PowerScore:      5,
		InitialSpeed:    0.015,
		Acceleration:    0.00055,
		SpeedBoost:      0.003,
		SpeedScore:      50,
		MismatchPenalty: 0.1,
		PowerEasing:     10,
		DecayDivisor:    50,
		AdvanceScore:    150,
		LowPower:        0.25,
		FlashTicks:      15,
	}
}

// DefaultShufflePopConfig returns the built-in configuration.
// It mirrors defaults/shufflepop.yaml and is used when the embedded file
// cannot be parsed.
func DefaultShufflePopConfig() ShufflePopConfig {
	return ShufflePopConfig{
		Tuning: DefaultTuning(),
		Levels: []LevelConfig{
			{
				Title:    "Shuffle Pop",
				Text:     "S H U F F L E       P O P\n\nTap or click to continue...",
				Bag:      BagConfig{Dice: 1},
				Examples: []string{},
			},
			{
				Title: "Matching",
				Text: "Tap or click to select\n" +
					"cards as they go past the\n" +
					"circle at the bottom of\n" +
					"the screen. Match them by\n" +
					"color or suite.\n" +
					"Get 150 points to continue\n" +
					"to the next tutorial level.\n" +
					"Tap or click to continue...",
				Bag:      BagConfig{Suites: 1},
				Examples: []string{"S11", "S22", "S33", "S44", "S13"},
			},
			{
				Title: "Stars",
				Text: "Star cards can match with\n" +
					"any other card.\n" +
					"Tap or click to continue...",
				Bag:      BagConfig{Suites: 6, Stars: 1},
				Examples: []string{"_", "_", "*"},
			},
			{
				Title: "Movement",
				Text: "Movement cards will allow\n" +
					"you to move between rows\n" +
					"and select cards in\n" +
					"different rows.\n" +
					"Tap or click to continue...",
				Bag:      BagConfig{Suites: 10, Stars: 1, Movements: 3},
				Examples: []string{"_", "<", "_", ">"},
			},
			{
				Title: "Speed",
				Text: "Speed cards increase the\n" +
					"speed, and are worth 50\n" +
					"points.\n" +
					"Tap or click to continue...",
				Bag:      BagConfig{Suites: 32, Stars: 3, Movements: 12, Speeds: 1},
				Examples: []string{"_", "_", "+"},
			},
			{
				Title: "Dice",
				Text: "Die cards will shuffle\n" +
					"some number of cards above\n" +
					"them.\n" +
					"You completed the tutorial.\n" +
					"Tap or click to continue...",
				Bag:      BagConfig{Suites: 32, Stars: 3, Movements: 12, Speeds: 1, Dice: 4},
				Examples: []string{"D5", "D2", "D4", "D0", "D1"},
			},
		},
	}
}
