package shufflepop

// Phase is the coarse state of the game.
type Phase int

const (
	PhaseIntro    Phase = iota // Title screen
	PhaseTutorial              // A level intro message
	PhasePlaying               // Board scrolling
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseTutorial:
		return "tutorial"
	case PhasePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// CellView is one visible board cell.
type CellView struct {
	Tile     Tile
	Row      int     // Logical board row
	Y        float64 // Vertical position in rows from the top of the viewport
	Selected bool    // At the selection point; visual only
}

// Frame describes everything a renderer needs for one tick.
// Message screens carry Message; the board fields are set only while playing.
type Frame struct {
	Phase         Phase
	Screen        int
	Level         int
	Message       *Message
	PreviousScore int // Shown once on the title screen after a run ends

	Cells  [Rows][Cols]CellView
	Offset float64 // Sub-row scroll, in (-1, 0]
	Cursor int
	Last   Tile

	Score         int
	Power         float64
	PowerFraction float64 // Power clamped to [0, 1] for the health bar
	LowPower      bool
	Flash         bool // Health bar shows its alert color this tick
	Tick          int
}

// Selected returns the cell view at the selection point.
func (f Frame) Selected() CellView {
	return f.Cells[SelectRow][f.Cursor]
}

// Snapshot captures the complete simulation state for tests and replays.
type Snapshot struct {
	Tick   int
	Phase  Phase
	Screen int
	Level  int
	Play   bool
	X      int
	Y      float64
	Speed  float64
	Power  float64
	Score  float64
	Last   Tile
	Board  [Rows]Row
}
