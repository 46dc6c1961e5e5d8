// Package shufflepop implements ShufflePop, a falling-tile matching game.
// Tiles scroll down a five column board; tapping pops the tile passing the
// selection point and scores when it matches the previous pop by suit or
// color. A title screen and five tutorial levels wrap the play loop.
package shufflepop

import (
	"math"
	"math/rand"
	"sync"

	"github.com/vovakirdan/shufflepop/internal/config"
	"github.com/vovakirdan/shufflepop/internal/core"
	"github.com/vovakirdan/shufflepop/internal/registry"
)

// Mode selects where a run starts.
type Mode string

const (
	ModeTutorial Mode = "tutorial" // Starts at level 1
	ModeEndless  Mode = "endless"  // Starts at the final level, which never advances
)

// Registry IDs.
const (
	GameID        = "shufflepop"
	EndlessGameID = "shufflepop_endless"
)

// Game is the ShufflePop state machine. It is driven one tick at a time by
// Advance (or Step) and is not safe for concurrent use.
type Game struct {
	mode       Mode
	catalog    Catalog
	baseTuning config.TuningConfig
	tuning     config.TuningConfig
	rng        Source
	fixedRNG   bool
	startLevel int

	board        Board
	bag          Bag
	x            int
	y            float64
	speed        float64
	power        float64
	score        float64
	last         Tile
	screen       int
	currentLevel int
	tickCounter  int
	play         bool

	gameOver bool
	events   []core.Event
	frame    Frame
}

// Option configures a Game.
type Option func(*Game)

// WithMode sets the run mode.
func WithMode(m Mode) Option {
	return func(g *Game) { g.mode = m }
}

// WithCatalog replaces the level catalog.
func WithCatalog(c Catalog) Option {
	return func(g *Game) { g.catalog = c }
}

// WithTuning replaces the tuning constants (given at the reference tick rate).
func WithTuning(t config.TuningConfig) Option {
	return func(g *Game) { g.baseTuning = t }
}

// WithStartLevel makes runs begin at the given tutorial level.
func WithStartLevel(level int) Option {
	return func(g *Game) { g.startLevel = level }
}

// WithRand fixes the random source; Reset will not reseed it.
func WithRand(src Source) Option {
	return func(g *Game) {
		g.rng = src
		g.fixedRNG = true
	}
}

// Package defaults for games created without WithCatalog or WithTuning.
var (
	defaultsMu     sync.RWMutex
	defaultCatalog = DefaultCatalog()
	defaultTuning  = config.DefaultTuning()
)

// Configure sets the catalog and tuning used by games created afterwards,
// including those created through the registry.
func Configure(cfg config.ShufflePopConfig) error {
	catalog, err := CatalogFromConfig(cfg)
	if err != nil {
		return err
	}
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaultCatalog = catalog
	defaultTuning = cfg.Tuning
	return nil
}

// New creates a game. Call Reset before the first tick.
func New(opts ...Option) *Game {
	defaultsMu.RLock()
	g := &Game{
		mode:       ModeTutorial,
		catalog:    defaultCatalog,
		baseTuning: defaultTuning,
	}
	defaultsMu.RUnlock()

	for _, opt := range opts {
		opt(g)
	}
	g.tuning = g.baseTuning
	return g
}

// ID returns the registry identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return EndlessGameID
	}
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Shuffle Pop (Endless)"
	}
	return "Shuffle Pop"
}

// Levels returns the titles of the playable levels, first level first.
func (g *Game) Levels() []string {
	names := make([]string, 0, g.catalog.LastLevel())
	for i := 1; i <= g.catalog.LastLevel(); i++ {
		names = append(names, g.catalog.Message(i).Title)
	}
	return names
}

// SetStartLevel chooses the level the next Reset starts at (1-based).
// Zero restores the mode's default.
func (g *Game) SetStartLevel(level int) {
	g.startLevel = level
}

// Catalog returns the level catalog in use.
func (g *Game) Catalog() Catalog { return g.catalog }

// Reset seeds the random source, fills the board and shows the title screen.
// Tuning is re-derived for cfg.TickRate.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.fixedRNG || g.rng == nil {
		g.rng = rand.New(rand.NewSource(cfg.Seed))
	}
	g.tuning = g.baseTuning.ForTickRate(cfg.TickRate)

	g.currentLevel = g.firstLevel()
	g.InitLevel(g.currentLevel)
	g.score = 0
	g.gameOver = false
	g.events = g.events[:0]
	g.frame = g.buildFrame()
}

func (g *Game) firstLevel() int {
	last := g.catalog.LastLevel()
	if g.startLevel > 0 {
		return core.Clamp(g.startLevel, 1, last)
	}
	if g.mode == ModeEndless {
		return last
	}
	return 1
}

// InitLevel resets the run to the start of level: the level's bag, a freshly
// filled board, cursor, scroll, speed, power, score and the star reference
// tile. The title screen is shown until the next tap.
func (g *Game) InitLevel(level int) {
	g.currentLevel = core.Clamp(level, 1, g.catalog.LastLevel())
	g.bag = g.catalog.Message(g.currentLevel).Bag
	g.board.FillBoard(g.bag, g.rng)
	g.x = Cols / 2
	g.y = 0
	g.speed = g.tuning.InitialSpeed
	g.power = 1
	g.score = 0
	g.screen = TitleScreen
	g.tickCounter = 0
	g.last = Star()
	g.play = false
}

// Advance runs one tick. tapped reports whether a tap occurred during it.
// It returns the frame to draw.
func (g *Game) Advance(tapped bool) Frame {
	g.events = g.events[:0]
	g.gameOver = false
	g.tickCounter++

	if g.play {
		g.tickPlaying(tapped)
	} else if tapped {
		g.tapMessage()
	}

	g.frame = g.buildFrame()
	return g.frame
}

// tapMessage leaves a message screen. From the title screen a tap shows the
// current level's intro, except at the last level which starts immediately.
func (g *Game) tapMessage() {
	g.score = 0
	if g.screen == TitleScreen && g.currentLevel < g.catalog.LastLevel() {
		g.screen = g.currentLevel
		return
	}
	g.InitLevel(g.currentLevel)
	g.play = true
	g.emit(core.EventLevelStarted)
}

func (g *Game) tickPlaying(tapped bool) {
	// Refill the row about to scroll into view when crossing a row boundary.
	if math.Floor(g.y-g.speed) != math.Floor(g.y) {
		g.board.FillRow(g.bag, g.rng, int(g.y-2))
	}
	g.y -= g.speed

	if tapped {
		g.pop()
	}

	g.power -= g.speed / g.tuning.DecayDivisor

	if g.score > g.tuning.AdvanceScore && g.currentLevel < g.catalog.LastLevel() {
		g.emit(core.EventLevelCleared)
		g.currentLevel++
		g.screen = g.currentLevel
		g.play = false
		g.score = 0
	}
	if g.power < 0 {
		g.screen = TitleScreen
		g.play = false
		g.gameOver = true
		g.emit(core.EventGameOver)
	}
}

// selectRow returns the logical row at the selection point.
func (g *Game) selectRow() int {
	return int(math.Floor(g.y)) + SelectRow
}

// pop removes the tile at the selection point and applies its effect.
func (g *Game) pop() {
	row := g.selectRow()
	cell := g.board.At(row, g.x)
	popped := *cell
	*cell = Empty()

	switch {
	case popped.IsSuite():
		if popped.Match(g.last) {
			g.score += g.tuning.BaseScore + g.tuning.PowerScore*g.power
			g.speed += g.tuning.Acceleration * g.power
			g.power += (1 - g.power) / g.tuning.PowerEasing
			g.emit(core.EventMatch)
		} else {
			g.power -= g.tuning.MismatchPenalty
			g.emit(core.EventMismatch)
		}
		g.last = popped
	case popped.IsMovement():
		g.x = core.Mod(g.x+int(popped.Dir), Cols)
	case popped.IsSpeed():
		g.speed += g.tuning.SpeedBoost
		g.score += g.tuning.SpeedScore
		g.emit(core.EventSpeedBoost)
	case popped.IsDie():
		// Reshuffle the popped cell and the pips+1 cells above it.
		for i := 0; i < int(popped.Pips)+2; i++ {
			g.board.Set(row-i, g.x, g.bag.Grab(g.rng))
		}
		g.emit(core.EventShuffle)
	}
}

func (g *Game) emit(t core.EventType) {
	g.events = append(g.events, core.Event{
		Type:  t,
		Level: g.currentLevel,
		Score: int(g.score),
	})
}

func (g *Game) buildFrame() Frame {
	f := Frame{
		Screen: g.screen,
		Level:  g.currentLevel,
		Cursor: g.x,
		Last:   g.last,
		Score:  int(g.score),
		Power:  g.power,
		Tick:   g.tickCounter,
	}
	f.PowerFraction = core.ClampF(g.power, 0, 1)
	f.LowPower = g.power <= g.tuning.LowPower
	f.Flash = f.LowPower && (g.tickCounter/g.tuning.FlashTicks)%2 == 1

	if !g.play {
		f.Phase = PhaseTutorial
		if g.screen == TitleScreen {
			f.Phase = PhaseIntro
			f.PreviousScore = int(g.score)
		}
		msg := g.catalog.Message(g.screen)
		f.Message = &msg
		return f
	}

	f.Phase = PhasePlaying
	top := math.Floor(g.y)
	f.Offset = top - g.y
	for i := 0; i < Rows; i++ {
		row := int(top) + i
		for c := 0; c < Cols; c++ {
			f.Cells[i][c] = CellView{
				Tile:     g.board.Get(row, c),
				Row:      row,
				Y:        float64(i) + top - g.y,
				Selected: i == SelectRow && c == g.x,
			}
		}
	}
	return f
}

// Step advances one tick from platform input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.Advance(in.Has(core.ActionTap))
	return core.StepResult{
		State:  g.State(),
		Events: append([]core.Event(nil), g.events...),
	}
}

// Frame returns the frame produced by the last tick.
func (g *Game) Frame() Frame { return g.frame }

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	switch {
	case g.play:
		return PhasePlaying
	case g.screen == TitleScreen:
		return PhaseIntro
	default:
		return PhaseTutorial
	}
}

// State returns the coarse game state for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(g.score),
		Level:    g.currentLevel,
		Playing:  g.play,
		GameOver: g.gameOver,
	}
}

// Snapshot returns the full simulation state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:   g.tickCounter,
		Phase:  g.Phase(),
		Screen: g.screen,
		Level:  g.currentLevel,
		Play:   g.play,
		X:      g.x,
		Y:      g.y,
		Speed:  g.speed,
		Power:  g.power,
		Score:  g.score,
		Last:   g.last,
		Board:  g.board.Cells(),
	}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(EndlessGameID, func() registry.Game {
		return New(WithMode(ModeEndless))
	})
}
