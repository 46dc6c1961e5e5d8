package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/shufflepop/internal/core"
	"github.com/vovakirdan/shufflepop/internal/registry"
	"github.com/vovakirdan/shufflepop/internal/storage"
)

// ScoreSaver persists finished runs. *storage.Store satisfies it.
type ScoreSaver interface {
	SaveScore(e storage.ScoreEntry) (int64, error)
}

// GameOption configures a GameModel.
type GameOption func(*GameModel)

// WithLogger sets the logger for game events.
func WithLogger(l *log.Logger) GameOption {
	return func(m *GameModel) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithPlayer sets the name recorded with saved scores.
func WithPlayer(name string) GameOption {
	return func(m *GameModel) { m.player = name }
}

// WithScreenshotDir sets where ctrl+s writes screenshots.
func WithScreenshotDir(dir string) GameOption {
	return func(m *GameModel) { m.screenshotDir = dir }
}

// GameModel drives one game at a fixed tick rate: it collects input between
// ticks, steps the game once per tick, and saves the score when a run ends.
type GameModel struct {
	game          registry.Game
	screen        *core.Screen
	store         ScoreSaver
	config        core.RuntimeConfig
	inputFrame    core.InputFrame
	gameState     core.GameState
	keyMapper     *KeyMapper
	logger        *log.Logger
	player        string
	runID         string
	loop          int64
	screenshotDir string
	quitting      bool
	backToMenu    bool
}

// NewGameModel creates a model for the given game. store may be nil.
func NewGameModel(game registry.Game, store ScoreSaver, cfg core.RuntimeConfig, opts ...GameOption) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if s, ok := store.(*storage.Store); ok && s == nil {
		store = nil
	}

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		logger:     log.New(io.Discard),
		runID:      uuid.NewString(),
		loop:       time.Now().UnixNano(),
	}
	if home, err := os.UserHomeDir(); err == nil {
		m.screenshotDir = filepath.Join(home, ".shufflepop", "screenshots")
	}
	for _, opt := range opts {
		opt(&m)
	}

	// Reset here rather than in Init: Init has a value receiver.
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.logger.Info("game started", "game", m.game.ID(), "run", m.runID, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if action := m.keyMapper.MapMouse(msg); action != core.ActionNone {
			m.inputFrame.Set(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.logger.Debug("back to menu", "run", m.runID, "score", m.gameState.Score)
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, ev := range result.Events {
		m.logEvent(ev)
		if ev.Type == core.EventGameOver {
			m.saveScore(ev)
		}
	}

	return m, tickCmd(m.config.TickRate, m.loop)
}

func (m *GameModel) logEvent(ev core.Event) {
	switch ev.Type {
	case core.EventLevelStarted, core.EventLevelCleared, core.EventGameOver:
		m.logger.Info(ev.Type.String(), "run", m.runID, "level", ev.Level, "score", ev.Score)
	default:
		m.logger.Debug(ev.Type.String(), "level", ev.Level, "score", ev.Score)
	}
}

// saveScore records the finished run once and starts a new run ID.
func (m *GameModel) saveScore(ev core.Event) {
	runID := m.runID
	m.runID = uuid.NewString()

	if m.store == nil || ev.Score <= 0 {
		return
	}
	_, err := m.store.SaveScore(storage.ScoreEntry{
		RunID:  runID,
		GameID: m.game.ID(),
		Player: m.player,
		Level:  ev.Level,
		Score:  ev.Score,
	})
	if err != nil {
		m.logger.Error("cannot save score", "run", runID, "error", err)
		return
	}
	m.logger.Info("score saved", "run", runID, "score", ev.Score)
}

// saveScreenshot writes the current screen as plain text.
func (m *GameModel) saveScreenshot() (string, error) {
	if m.screenshotDir == "" {
		return "", fmt.Errorf("screenshot: no directory configured")
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the current terminal until the user quits or goes back.
// It reports whether the user asked to return to the menu.
func Run(game registry.Game, store ScoreSaver, cfg core.RuntimeConfig, opts ...GameOption) (backToMenu bool, err error) {
	model := NewGameModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(GameModel)
	return ok && m.BackToMenu(), nil
}
