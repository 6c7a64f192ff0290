package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pang/internal/core"
	"github.com/vovakirdan/tui-pang/internal/games/pang"
	"github.com/vovakirdan/tui-pang/internal/registry"
	"github.com/vovakirdan/tui-pang/internal/storage"
)

var logger = log.New(io.Discard)

// SetLogger routes host logs to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// summarizer is implemented by games that report a result per seat.
type summarizer interface {
	Summary() pang.Summary
}

// resizer is implemented by games that can follow a terminal resize
// without restarting.
type resizer interface {
	Resize(width, height int)
}

// wallPlacer is implemented by games that accept walls placed with the mouse.
type wallPlacer interface {
	PlaceWall(col int) bool
}

// GameModel runs one game inside a Bubble Tea program.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	fixedSeed bool
	keys      *KeyMapper
	input     core.MultiInputFrame
	gameState core.GameState
	loop      uint64
	tick      uint64

	standalone bool // Back quits instead of returning to a menu
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a model for the given game. A zero seed is replaced
// with a time-based one on every start.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		fixedSeed: fixed,
		keys:      NewKeyMapper(game.Players()),
		input:     core.NewMultiInputFrame(),
		loop:      newLoop(),
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	logger.Info("match started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKey(msg, m.tick, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.input.Any(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
	}
	return m, nil
}

func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if p, ok := m.game.(wallPlacer); ok && p.PlaceWall(msg.X) {
		logger.Debug("wall placed", "col", msg.X)
	}
	return m, nil
}

func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	m.tick++
	m.keys.Expire(m.tick, &m.input)

	if m.input.Any(core.ActionRestart) && m.gameState.GameOver {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.keys.Reset()
		m.input.Clear()
		logger.Info("match restarted", "game", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate, m.loop)
	}

	result := m.game.Step(m.input)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveResults()
		m.scoreSaved = true
	}

	m.input.Clear()
	return m, tickCmd(m.config.TickRate, m.loop)
}

// saveResults stores one entry per seat that scored.
func (m *GameModel) saveResults() {
	entries := resultEntries(m.game, m.gameState)
	logger.Info("match over", "game", m.game.ID(), "level", m.gameState.Level, "best", m.gameState.Score)
	if m.store == nil {
		return
	}
	for _, e := range entries {
		if e.Score <= 0 {
			continue
		}
		if _, err := m.store.SaveScore(e); err != nil {
			logger.Warn("could not save score", "game", e.GameID, "err", err)
		}
	}
}

func resultEntries(game registry.Game, state core.GameState) []storage.ScoreEntry {
	s, ok := game.(summarizer)
	if !ok {
		return []storage.ScoreEntry{{GameID: game.ID(), Score: state.Score, Level: state.Level}}
	}
	sum := s.Summary()
	entries := make([]storage.ScoreEntry, 0, len(sum.Scores))
	for seat, score := range sum.Scores {
		entries = append(entries, storage.ScoreEntry{
			GameID:    game.ID(),
			Player:    seat + 1,
			Score:     score,
			Level:     sum.Level,
			EndReason: sum.Reason.String(),
		})
	}
	return entries
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("could not create screenshot directory", "err", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600); err != nil {
		logger.Warn("could not save screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program playing the given game until the user quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Click to place a wall
	)

	_, err := p.Run()
	return err
}
