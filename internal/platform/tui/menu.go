package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pang/internal/config"
	"github.com/vovakirdan/tui-pang/internal/core"
	"github.com/vovakirdan/tui-pang/internal/games/pang"
	"github.com/vovakirdan/tui-pang/internal/levels"
	"github.com/vovakirdan/tui-pang/internal/registry"
	"github.com/vovakirdan/tui-pang/internal/storage"
)

var difficulties = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuSelection is what the menu starts a game with.
type MenuSelection struct {
	GameID     string
	StartLevel int
	Difficulty config.DifficultyPreset
}

// MenuModel is the Bubble Tea model for the game picker menu. The rows are the
// registered games followed by the level and difficulty pickers.
type MenuModel struct {
	games      []registry.GameInfo
	levels     []levels.Descriptor
	cursor     int
	gameCursor int
	level      int
	difficulty int
	width      int
	height     int
	store      *storage.Store
	config     core.RuntimeConfig
	keys       MenuKeyMap
	help       help.Model
	highScore  int
	quitting   bool
	selected   bool
	scoreboard bool
}

// NewMenuModel creates a menu preset to the last selection.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, last MenuSelection) MenuModel {
	m := MenuModel{
		games:      registry.List(),
		levels:     pang.LevelTable(),
		difficulty: 1,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		store:      store,
		config:     cfg,
		keys:       DefaultMenuKeyMap(),
		help:       help.New(),
	}
	for i, g := range m.games {
		if g.ID == last.GameID {
			m.gameCursor = i
			m.cursor = i
		}
	}
	if last.StartLevel >= 0 && last.StartLevel < len(m.levels) {
		m.level = last.StartLevel
	}
	for i, d := range difficulties {
		if d == last.Difficulty {
			m.difficulty = i
		}
	}
	m.refreshHighScore()
	return m
}

func (m *MenuModel) levelRow() int      { return len(m.games) }
func (m *MenuModel) difficultyRow() int { return len(m.games) + 1 }

func (m *MenuModel) refreshHighScore() {
	m.highScore = 0
	if m.store == nil || len(m.games) == 0 {
		return
	}
	if hs, err := m.store.HighScore(m.games[m.gameCursor].ID); err == nil {
		m.highScore = hs
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
		m.syncGameCursor()

	case MenuActionDown:
		if m.cursor < m.difficultyRow() {
			m.cursor++
		}
		m.syncGameCursor()

	case MenuActionLeft:
		m.shift(-1)

	case MenuActionRight:
		m.shift(1)

	case MenuActionSelect:
		if len(m.games) > 0 {
			m.selected = true
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.scoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *MenuModel) syncGameCursor() {
	if m.cursor < len(m.games) && m.cursor != m.gameCursor {
		m.gameCursor = m.cursor
		m.refreshHighScore()
	}
}

// shift changes the picker under the cursor, wrapping around.
func (m *MenuModel) shift(delta int) {
	switch m.cursor {
	case m.levelRow():
		if n := len(m.levels); n > 0 {
			m.level = (m.level + delta + n) % n
		}
	case m.difficultyRow():
		n := len(difficulties)
		m.difficulty = (m.difficulty + delta + n) % n
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  P A N G  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuDimStyle.Render("Pop every bubble before the clock runs out"), m.width))
	b.WriteString("\n\n")

	for i, g := range m.games {
		b.WriteString(centerText(m.row(i, g.Title), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	levelLabel := "none"
	if len(m.levels) > 0 {
		d := m.levels[m.level]
		levelLabel = fmt.Sprintf("%d (%s)", d.Level, d.BackgroundID)
	}
	b.WriteString(centerText(m.row(m.levelRow(), "Level:      < "+levelLabel+" >"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.row(m.difficultyRow(), "Difficulty: < "+string(difficulties[m.difficulty])+" >"), m.width))
	b.WriteString("\n\n")

	if m.highScore > 0 {
		b.WriteString(centerText(fmt.Sprintf("High score: %d", m.highScore), m.width))
		b.WriteString("\n\n")
	}

	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) row(i int, text string) string {
	if i == m.cursor {
		return menuSelectedStyle.Render("> " + text)
	}
	return "  " + text
}

// Selection returns the current picks.
func (m MenuModel) Selection() MenuSelection {
	sel := MenuSelection{
		StartLevel: m.level,
		Difficulty: difficulties[m.difficulty],
	}
	if len(m.games) > 0 {
		sel.GameID = m.games[m.gameCursor].ID
	}
	return sel
}

// Selected reports whether the user picked a game.
func (m MenuModel) Selected() bool {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.scoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	MenuSelection
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, last MenuSelection) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg, last), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{MenuSelection: last, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{MenuSelection: last, Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		MenuSelection:   m.Selection(),
		Config:          m.Config(),
		WantsScoreboard: m.WantsScoreboard(),
		Quit:            m.IsQuitting() || (!m.Selected() && !m.WantsScoreboard()),
	}
	return result, nil
}

// NewGame creates the selected game configured with the menu picks.
func NewGame(sel MenuSelection) (registry.Game, error) {
	game, err := registry.Create(sel.GameID)
	if err != nil {
		return nil, err
	}
	if pg, ok := game.(*pang.Game); ok {
		pg.SetStartLevel(sel.StartLevel)
		pg.SetDifficulty(sel.Difficulty)
	}
	return game, nil
}
