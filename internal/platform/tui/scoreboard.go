package tui

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pang/internal/registry"
	"github.com/vovakirdan/tui-pang/internal/storage"
)

const (
	boardRows      = 50 // Results loaded per mode and seat
	boardChrome    = 14 // Lines used around the table
	boardMinHeight = 3
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boardPanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Mode key.Binding
	Prev key.Binding
	Seat key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Mode, k.Seat, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Mode, k.Prev, k.Seat}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Mode: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "mode")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev mode")),
		Seat: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "seat")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// boardMode is one game mode shown on the board.
type boardMode struct {
	id    string
	title string
	seats int
}

func boardModes() []boardMode {
	infos := registry.List()
	modes := make([]boardMode, 0, len(infos))
	for _, info := range infos {
		seats := 1
		if g, err := registry.Create(info.ID); err == nil {
			seats = g.Players()
		}
		modes = append(modes, boardMode{id: info.ID, title: info.Title, seats: seats})
	}
	return modes
}

// ScoreboardModel shows stored Pang results per mode. Co-op results can be
// narrowed to one seat, and a summary panel counts how far matches got and
// how they ended.
type ScoreboardModel struct {
	store *storage.Store
	modes []boardMode
	mode  int
	seat  int // 1-based, 0 for every seat

	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	breakdown *storage.Breakdown

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		modes:  boardModes(),
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.load()
	return m
}

func (m *ScoreboardModel) current() (boardMode, bool) {
	if len(m.modes) == 0 {
		return boardMode{}, false
	}
	return m.modes[m.mode], true
}

// load reads the results of the current mode and seat and rebuilds the table.
func (m *ScoreboardModel) load() {
	m.scores, m.stats, m.breakdown = nil, nil, nil
	mode, ok := m.current()
	if ok && m.store != nil {
		if scores, err := m.store.SeatTopScores(mode.id, m.seat, boardRows); err == nil {
			m.scores = scores
		} else {
			logger.Warn("could not load scores", "game", mode.id, "err", err)
		}
		if stats, err := m.store.GetGameStats(mode.id); err == nil {
			m.stats = stats
		}
		if b, err := m.store.GetBreakdown(mode.id); err == nil {
			m.breakdown = b
		}
	}
	m.table = m.buildTable(mode.seats > 1)
}

func (m *ScoreboardModel) buildTable(coop bool) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 6},
	}
	if coop {
		columns = append(columns, table.Column{Title: "Seat", Width: 4})
	}
	columns = append(columns,
		table.Column{Title: "Level", Width: 5},
		table.Column{Title: "Ended", Width: 15},
		table.Column{Title: "When", Width: 12},
	)

	rows := make([]table.Row, 0, len(m.scores))
	for i, e := range m.scores {
		row := table.Row{strconv.Itoa(i + 1), strconv.Itoa(e.Score)}
		if coop {
			row = append(row, fmt.Sprintf("P%d", e.Player))
		}
		ended := e.EndReason
		if ended == "" {
			ended = "-"
		}
		row = append(row, strconv.Itoa(e.Level), ended, e.CreatedAt.Format("Jan 02 15:04"))
		rows = append(rows, row)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-boardChrome, boardMinHeight)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).BorderBottom(true).Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(false)
	t.SetStyles(s)
	return t
}

// switchMode moves to another mode and shows every seat again.
func (m *ScoreboardModel) switchMode(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.mode = (m.mode + delta + len(m.modes)) % len(m.modes)
	m.seat = 0
	m.load()
}

// cycleSeat steps through every seat, P1, P2, ... on multi-seat modes.
func (m *ScoreboardModel) cycleSeat() {
	mode, ok := m.current()
	if !ok || mode.seats < 2 {
		return
	}
	m.seat = (m.seat + 1) % (mode.seats + 1)
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Mode):
			m.switchMode(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.switchMode(-1)
			return m, nil
		case key.Matches(msg, m.keys.Seat):
			m.cycleSeat()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(max(m.height-boardChrome, boardMinHeight))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render("HALL OF FAME"), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.modes))
	for i, mode := range m.modes {
		style := boardTabStyle
		if i == m.mode {
			style = boardActiveTab
		}
		tabs[i] = style.Render(mode.title)
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n")

	mode, ok := m.current()
	if ok && mode.seats > 1 {
		b.WriteString(centerText(boardDimStyle.Render("showing "+m.seatLabel()), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if panel := m.summary(); panel != "" {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boardPanelStyle.Render(panel)))
		b.WriteString("\n")
	}

	if len(m.scores) == 0 {
		b.WriteString(centerText(boardDimStyle.Italic(true).Render("No results yet. Pop some bubbles!"), m.width))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.table.View()))
	}
	b.WriteString("\n\n")
	b.WriteString(centerText(boardDimStyle.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

func (m ScoreboardModel) seatLabel() string {
	if m.seat == 0 {
		return "every seat"
	}
	return fmt.Sprintf("P%d only", m.seat)
}

// summary describes all results of the mode, whatever the seat filter.
func (m ScoreboardModel) summary() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	lines := []string{fmt.Sprintf("%d results   best %d   furthest L%d   average %.0f   last played %s",
		m.stats.GamesCount, m.stats.HighScore, m.stats.BestLevel, m.stats.AvgScore, m.stats.LastPlayed.Format("Jan 02 15:04"))}

	if m.breakdown != nil {
		if len(m.breakdown.ByLevel) > 0 {
			parts := []string{"reached"}
			for _, level := range slices.Sorted(maps.Keys(m.breakdown.ByLevel)) {
				parts = append(parts, fmt.Sprintf("L%d x%d", level, m.breakdown.ByLevel[level]))
			}
			lines = append(lines, strings.Join(parts, "  "))
		}
		if len(m.breakdown.ByReason) > 0 {
			parts := []string{"ended"}
			for _, reason := range slices.Sorted(maps.Keys(m.breakdown.ByReason)) {
				label := reason
				if label == "" {
					label = "unknown"
				}
				parts = append(parts, fmt.Sprintf("%s x%d", label, m.breakdown.ByReason[reason]))
			}
			lines = append(lines, strings.Join(parts, "  "))
		}
	}
	return strings.Join(lines, "\n")
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
