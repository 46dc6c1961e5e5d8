package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks a time-based seed
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the coarse status a game reports to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Active level (1-based)
	Playing  bool // Whether the board is scrolling (false on message screens)
	GameOver bool // Set on the tick the run ended
}

// EventType identifies something notable that happened during a tick.
type EventType int

const (
	EventNone EventType = iota
	EventMatch
	EventMismatch
	EventSpeedBoost
	EventShuffle
	EventLevelStarted
	EventLevelCleared
	EventGameOver
)

// String returns the event name used in logs.
func (e EventType) String() string {
	switch e {
	case EventMatch:
		return "match"
	case EventMismatch:
		return "mismatch"
	case EventSpeedBoost:
		return "speed_boost"
	case EventShuffle:
		return "shuffle"
	case EventLevelStarted:
		return "level_started"
	case EventLevelCleared:
		return "level_cleared"
	case EventGameOver:
		return "game_over"
	default:
		return "none"
	}
}

// Event is a single occurrence reported by Game.Step.
type Event struct {
	Type  EventType
	Level int
	Score int
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given type occurred this tick.
func (r StepResult) Has(t EventType) bool {
	for _, e := range r.Events {
		if e.Type == t {
			return true
		}
	}
	return false
}
