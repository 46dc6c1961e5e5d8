package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/shufflepop/internal/core"
	"github.com/vovakirdan/shufflepop/internal/storage"
)

// fakeGame records inputs and replays scripted events, one slice per step.
type fakeGame struct {
	resets int
	taps   []bool
	script [][]core.Event
	state  core.GameState
}

func (g *fakeGame) ID() string                   { return "fake" }
func (g *fakeGame) Title() string                { return "Fake" }
func (g *fakeGame) Reset(cfg core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) State() core.GameState        { return g.state }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.taps = append(g.taps, in.Has(core.ActionTap))
	var events []core.Event
	if n := len(g.taps) - 1; n < len(g.script) {
		events = g.script[n]
	}
	g.state.GameOver = false
	for _, ev := range events {
		if ev.Type == core.EventGameOver {
			g.state.GameOver = true
		}
	}
	return core.StepResult{State: g.state, Events: events}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.DrawTextColor(0, 0, "fake game", core.ColorBrightGreen)
}

type fakeStore struct {
	saved []storage.ScoreEntry
}

func (s *fakeStore) SaveScore(e storage.ScoreEntry) (int64, error) {
	s.saved = append(s.saved, e)
	return int64(len(s.saved)), nil
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(game *fakeGame, store ScoreSaver) GameModel {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	return NewGameModel(game, store, cfg, WithPlayer("alice"), WithScreenshotDir(""))
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	require.True(t, ok, "Update returned %T", next)
	return gm, cmd
}

func tick(t *testing.T, m GameModel) GameModel {
	t.Helper()
	m, cmd := update(t, m, TickMsg{Loop: m.loop, Time: time.Now()})
	assert.NotNil(t, cmd, "tick loop stopped")
	return m
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{" ", core.ActionTap, false},
		{"enter", core.ActionTap, false},
		{"t", core.ActionTap, false},
		{"esc", core.ActionBack, false},
		{"b", core.ActionBack, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}
	for _, tt := range tests {
		action, quit := km.MapKey(keyMsg(tt.key))
		assert.Equal(t, tt.action, action, "key %q", tt.key)
		assert.Equal(t, tt.quit, quit, "key %q", tt.key)
	}

	assert.Equal(t, MenuActionScoreboard, km.MapKeyToMenuAction(keyMsg("tab")))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(keyMsg("enter")))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(keyMsg("j")))
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	press := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	assert.Equal(t, core.ActionTap, km.MapMouse(press))

	press.Button = tea.MouseButtonRight
	assert.Equal(t, core.ActionTap, km.MapMouse(press))

	release := tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	assert.Equal(t, core.ActionNone, km.MapMouse(release))

	wheel := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}
	assert.Equal(t, core.ActionNone, km.MapMouse(wheel))
}

func TestTapsCollapseIntoOneTick(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, nil)
	assert.Equal(t, 1, game.resets)

	m, _ = update(t, m, keyMsg(" "))
	m, _ = update(t, m, keyMsg("enter"))
	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tick(t, m)
	m = tick(t, m)
	_ = m

	assert.Equal(t, []bool{true, false}, game.taps)
}

func TestStaleTicksIgnored(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, nil)

	m, cmd := update(t, m, TickMsg{Loop: m.loop + 1})
	assert.Nil(t, cmd)
	assert.Empty(t, game.taps)

	tick(t, m)
	assert.Len(t, game.taps, 1)
}

func TestScoreSavedOnGameOver(t *testing.T) {
	game := &fakeGame{script: [][]core.Event{
		{{Type: core.EventMatch, Level: 3, Score: 42}},
		{{Type: core.EventGameOver, Level: 3, Score: 42}},
		nil,
		{{Type: core.EventGameOver, Level: 1, Score: 0}},
		{{Type: core.EventGameOver, Level: 2, Score: 7}},
	}}
	store := &fakeStore{}
	m := newTestModel(game, store)

	for range game.script {
		m = tick(t, m)
	}

	require.Len(t, store.saved, 2, "zero scores are not saved")
	first, second := store.saved[0], store.saved[1]

	assert.Equal(t, "fake", first.GameID)
	assert.Equal(t, "alice", first.Player)
	assert.Equal(t, 3, first.Level)
	assert.Equal(t, 42, first.Score)
	assert.Equal(t, 7, second.Score)

	_, err := uuid.Parse(first.RunID)
	assert.NoError(t, err)
	assert.NotEqual(t, first.RunID, second.RunID)
	assert.True(t, m.State().GameOver)
}

func TestNilStoreIsSafe(t *testing.T) {
	game := &fakeGame{script: [][]core.Event{{{Type: core.EventGameOver, Score: 10}}}}
	var store *storage.Store
	m := newTestModel(game, store)

	assert.NotPanics(t, func() { tick(t, m) })
}

func TestBackAndQuit(t *testing.T) {
	m := newTestModel(&fakeGame{}, nil)
	back, cmd := update(t, m, keyMsg("esc"))
	assert.True(t, back.BackToMenu())
	assert.False(t, back.IsQuitting())
	assert.NotNil(t, cmd)

	quit, cmd := update(t, m, keyMsg("q"))
	assert.True(t, quit.IsQuitting())
	assert.NotNil(t, cmd)
	assert.Empty(t, quit.View())
}

func TestResizeKeepsGame(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 1, game.resets)
	assert.Equal(t, 100, m.screen.Width())
	assert.Contains(t, m.View(), "fake game")
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColor(0, 0, "red", core.ColorRed)
	s.DrawTextColor(4, 0, "plain", core.ColorDefault)
	s.DrawTextColor(0, 1, "gray", core.ColorGray)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "red")
	assert.Contains(t, lines[0], "plain")
	assert.Contains(t, lines[1], "gray")
}
