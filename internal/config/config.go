// Package config provides YAML-based configuration for ShufflePop: the
// scoring and speed tuning constants and the scripted level catalog.
package config

import (
	"errors"
	"fmt"
)

// ReferenceTickRate is the cadence the default tuning was balanced against.
const ReferenceTickRate = 60

// LevelCount is the number of catalog entries: the title screen plus five
// tutorial levels.
const LevelCount = 6

// MaxExamples is the number of example tiles an intro screen can show.
const MaxExamples = 5

// ShufflePopConfig contains all configuration for the game.
type ShufflePopConfig struct {
	Tuning TuningConfig  `yaml:"tuning"`
	Levels []LevelConfig `yaml:"levels"`
}

// TuningConfig holds the per-tick gameplay constants.
// Rates are expressed per tick at ReferenceTickRate.
type TuningConfig struct {
	BaseScore       float64 `yaml:"base_score"`       // Points for any match
	PowerScore      float64 `yaml:"power_score"`      // Extra points per unit of power on a match
	InitialSpeed    float64 `yaml:"initial_speed"`    // Rows scrolled per tick at level start
	Acceleration    float64 `yaml:"acceleration"`     // Speed gained per unit of power on a match
	SpeedBoost      float64 `yaml:"speed_boost"`      // Speed gained from a speed tile
	SpeedScore      float64 `yaml:"speed_score"`      // Points for a speed tile
	MismatchPenalty float64 `yaml:"mismatch_penalty"` // Power lost on a mismatch
	PowerEasing     float64 `yaml:"power_easing"`     // Divisor of the gap to full power recovered on a match
	DecayDivisor    float64 `yaml:"decay_divisor"`    // Power lost per tick is speed / DecayDivisor
	AdvanceScore    float64 `yaml:"advance_score"`    // Score that must be exceeded to clear a level
	LowPower        float64 `yaml:"low_power"`        // Power at or below which the bar flashes
	FlashTicks      int     `yaml:"flash_ticks"`      // Length of one flash phase in ticks
}

// LevelConfig describes one scripted message screen and its tile bag.
type LevelConfig struct {
	Title    string    `yaml:"title"`
	Text     string    `yaml:"text"`
	Bag      BagConfig `yaml:"bag"`
	Examples []string  `yaml:"examples"` // Tile codes, "_" for an empty slot
}

// BagConfig holds the relative weights of each tile kind.
type BagConfig struct {
	Suites    int `yaml:"suites"`
	Stars     int `yaml:"stars"`
	Movements int `yaml:"movements"`
	Speeds    int `yaml:"speeds"`
	Dice      int `yaml:"dice"`
}

// Total returns the sum of all weights.
func (b BagConfig) Total() int {
	return b.Suites + b.Stars + b.Movements + b.Speeds + b.Dice
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate checks the configuration and returns all problems found.
func (c ShufflePopConfig) Validate() error {
	var errs []error

	errs = append(errs, c.Tuning.validate()...)

	if len(c.Levels) != LevelCount {
		errs = append(errs, fmt.Errorf("%w: expected %d levels, got %d", ErrInvalidConfig, LevelCount, len(c.Levels)))
	}
	for i, lvl := range c.Levels {
		b := lvl.Bag
		if b.Suites < 0 || b.Stars < 0 || b.Movements < 0 || b.Speeds < 0 || b.Dice < 0 {
			errs = append(errs, fmt.Errorf("%w: level %d: negative bag weight", ErrInvalidConfig, i))
		}
		if b.Total() <= 0 {
			errs = append(errs, fmt.Errorf("%w: level %d: bag has no weight", ErrInvalidConfig, i))
		}
		if len(lvl.Examples) > MaxExamples {
			errs = append(errs, fmt.Errorf("%w: level %d: %d examples, at most %d allowed", ErrInvalidConfig, i, len(lvl.Examples), MaxExamples))
		}
	}

	return errors.Join(errs...)
}

func (t TuningConfig) validate() []error {
	var errs []error
	positive := []struct {
		name string
		v    float64
	}{
		{"initial_speed", t.InitialSpeed},
		{"power_easing", t.PowerEasing},
		{"decay_divisor", t.DecayDivisor},
		{"advance_score", t.AdvanceScore},
	}
	for _, p := range positive {
		if p.v <= 0 {
			errs = append(errs, fmt.Errorf("%w: tuning.%s must be positive", ErrInvalidConfig, p.name))
		}
	}
	if t.BaseScore < 0 || t.PowerScore < 0 || t.Acceleration < 0 || t.SpeedBoost < 0 || t.SpeedScore < 0 || t.MismatchPenalty < 0 {
		errs = append(errs, fmt.Errorf("%w: tuning values must not be negative", ErrInvalidConfig))
	}
	if t.FlashTicks <= 0 {
		errs = append(errs, fmt.Errorf("%w: tuning.flash_ticks must be positive", ErrInvalidConfig))
	}
	return errs
}

// ForTickRate re-derives the per-tick constants for another cadence.
// Speed-like rates scale by ReferenceTickRate/tickRate so the board moves at
// the same rows per second; the flash window scales the other way. Power decay
// is speed/DecayDivisor per tick, so it follows the scaled speed.
func (t TuningConfig) ForTickRate(tickRate int) TuningConfig {
	if tickRate <= 0 || tickRate == ReferenceTickRate {
		return t
	}
	k := float64(ReferenceTickRate) / float64(tickRate)

	out := t
	out.InitialSpeed = t.InitialSpeed * k
	out.Acceleration = t.Acceleration * k
	out.SpeedBoost = t.SpeedBoost * k
	out.FlashTicks = max(1, int(float64(t.FlashTicks)/k+0.5))
	return out
}
