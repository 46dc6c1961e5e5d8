package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shufflepop/internal/core"
	"github.com/vovakirdan/shufflepop/internal/registry"
	"github.com/vovakirdan/shufflepop/internal/storage"
)

// Registry IDs of the two play modes.
const (
	tutorialGameID = "shufflepop"
	endlessGameID  = "shufflepop_endless"
)

type menuEntry int

const (
	entryTutorial menuEntry = iota
	entryEndless
	entryLevels
	entryScores
	entryQuit
)

// MenuItem is one line of the main menu.
type MenuItem struct {
	entry  menuEntry
	Title  string
	GameID string // Empty for non-game entries
}

// MenuSelection is what the user picked to play.
type MenuSelection struct {
	GameID string
	Level  int // 0 = the mode's default start
}

// MenuModel is the Bubble Tea model for the main menu and level picker.
type MenuModel struct {
	items          []MenuItem
	levels         []string
	highScores     map[string]int
	cursor         int
	levelCursor    int
	inLevelSelect  bool
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuSelection
	openScoreboard bool
}

// NewMenuModel creates a new menu model. store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		items: []MenuItem{
			{entry: entryTutorial, Title: "Tutorial", GameID: tutorialGameID},
			{entry: entryEndless, Title: "Endless", GameID: endlessGameID},
			{entry: entryLevels, Title: "Select Level..."},
			{entry: entryScores, Title: "High Scores"},
			{entry: entryQuit, Title: "Quit"},
		},
		highScores: make(map[string]int),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
	}

	if g, err := registry.Create(tutorialGameID); err == nil {
		if ls, ok := g.(registry.LevelSelector); ok {
			m.levels = ls.Levels()
		}
	}

	if store != nil {
		for _, item := range m.items {
			if item.GameID == "" {
				continue
			}
			if high, err := store.HighScore(item.GameID); err == nil {
				m.highScores[item.GameID] = high
			}
		}
	}

	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelect(action)
		}
		return m.handleMain(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleMain(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		switch item := m.items[m.cursor]; item.entry {
		case entryTutorial, entryEndless:
			m.selected = &MenuSelection{GameID: item.GameID}
			return m, tea.Quit
		case entryLevels:
			if len(m.levels) > 0 {
				m.inLevelSelect = true
				m.levelCursor = 0
			}
		case entryScores:
			m.openScoreboard = true
			return m, tea.Quit
		case entryQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m MenuModel) handleLevelSelect(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(m.levels)-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.selected = &MenuSelection{GameID: tutorialGameID, Level: m.levelCursor + 1}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}
	return m, nil
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S H U F F L E   P O P"), m.width))
	b.WriteString("\n\n")

	if m.inLevelSelect {
		b.WriteString(centerText("Start at level:", m.width))
		b.WriteString("\n\n")
		for i, name := range m.levels {
			b.WriteString(centerText(m.menuLine(i == m.levelCursor, fmt.Sprintf("%d. %s", i+1, name)), m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(centerText(menuHintStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))
		b.WriteString("\n")
		return b.String()
	}

	for i, item := range m.items {
		label := item.Title
		if high, ok := m.highScores[item.GameID]; ok && high > 0 {
			label = fmt.Sprintf("%s  (best %d)", label, high)
		}
		b.WriteString(centerText(m.menuLine(i == m.cursor, label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) menuLine(active bool, label string) string {
	if active {
		return menuCursorStyle.Render("> " + label)
	}
	return "  " + label
}

// Selected returns the selection, or nil if none was made.
func (m MenuModel) Selected() *MenuSelection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, ignoring ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Selection       *MenuSelection
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.Selection = m.Selected()
	default:
		result.Quit = true
	}
	return result, nil
}

// CreateGame instantiates the game for a menu selection.
func CreateGame(sel MenuSelection) (registry.Game, error) {
	game, err := registry.Create(sel.GameID)
	if err != nil {
		return nil, err
	}
	if sel.Level > 0 {
		if ls, ok := game.(registry.LevelSelector); ok {
			ls.SetStartLevel(sel.Level)
		}
	}
	return game, nil
}
