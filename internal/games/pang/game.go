package pang

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pang/internal/config"
	"github.com/vovakirdan/tui-pang/internal/core"
	"github.com/vovakirdan/tui-pang/internal/levels"
	"github.com/vovakirdan/tui-pang/internal/registry"
)

// Settings chosen on the command line before a game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	extraLevels      []levels.Descriptor
	startLevel       int
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetStartLevel selects the level index new matches start at.
func SetStartLevel(index int) {
	startLevel = index
}

// StartLevel returns the level index new matches start at.
func StartLevel() int {
	return startLevel
}

// AddLevels appends custom levels after the built-in table.
// If start is true new matches begin at the first appended level.
func AddLevels(descs []levels.Descriptor, start bool) {
	if start {
		startLevel = len(levels.Builtin()) + len(extraLevels)
	}
	extraLevels = append(extraLevels, descs...)
}

// SetLogger routes match logs to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// LevelTable returns the built-in levels followed by any added ones.
func LevelTable() []levels.Descriptor {
	table := levels.Builtin()
	for _, d := range extraLevels {
		table = append(table, d.Clone())
	}
	return table
}

// Game adapts a Manager to the platform's fixed-step game interface. Time
// advances with ticks so pausing freezes the countdown.
type Game struct {
	seats      int
	startLevel int
	preset     config.DifficultyPreset

	runtime core.RuntimeConfig
	cfg     config.PangConfig
	mgr     *Manager
	clock   *ManualClock
	frame   *core.Screen
	hud     *hud
	paused  bool
	pacer   *TickPacer

	screenTooSmall bool
}

// New creates a single player game.
func New() *Game {
	return newGame(1)
}

// NewCoop creates a two player cooperative game.
func NewCoop() *Game {
	return newGame(2)
}

func newGame(seats int) *Game {
	return &Game{seats: seats, startLevel: startLevel, preset: difficultyPreset}
}

// SetStartLevel overrides the starting level index for this game only.
// It takes effect on the next Reset.
func (g *Game) SetStartLevel(index int) {
	g.startLevel = index
}

// SetDifficulty overrides the difficulty preset for this game only.
func (g *Game) SetDifficulty(preset config.DifficultyPreset) {
	g.preset = preset
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.seats == 2 {
		return "pang_coop"
	}
	return "pang"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.seats == 2 {
		return "Pang (Co-op)"
	}
	return "Pang"
}

// Players returns the number of seats.
func (g *Game) Players() int {
	return g.seats
}

// Reset starts a new match.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadPang(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultPangConfig()
	}
	if g.preset != "" {
		config.ApplyPangPreset(&cfg, g.preset)
	}
	g.cfg = cfg

	g.pacer = NewTickPacer(runtime.TickRate)

	g.screenTooSmall = runtime.ScreenW < minScreenWidth || runtime.ScreenH < minScreenHeight
	g.frame = core.NewScreen(runtime.ScreenW, runtime.ScreenH)
	g.hud = newHUD(g.seats)
	g.clock = &ManualClock{}
	g.paused = false

	g.mgr = NewManager(Options{
		Config:     cfg,
		Levels:     LevelTable(),
		StartLevel: g.startLevel,
		Players:    g.seats,
		Seed:       runtime.Seed,
		Clock:      g.clock,
		UI:         g.hud,
		Renderer:   newScreenRenderer(g.frame, cfg.World.Width, cfg.World.Height),
		Logger:     logger,
	})
	g.mgr.Render()
}

// Resize adapts the frame to a new terminal size without restarting the match.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < minScreenWidth || height < minScreenHeight
	g.frame.Resize(width, height)
	g.mgr.Render()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	over := g.mgr.State() == StateEnd

	if in.Any(core.ActionRestart) && over {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Any(core.ActionPause) && !over {
		g.paused = !g.paused
	}

	if g.paused || over || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	for seat := range g.seats {
		id := core.PlayerID(seat)
		frame := in.Player(id)
		// An explicit stop wins over a direction pressed in the same tick.
		switch {
		case frame.Has(core.ActionStop):
			g.mgr.OnMoveEnd(id)
		case frame.Has(core.ActionLeft):
			g.mgr.OnMoveStart(MoveLeft, id)
		case frame.Has(core.ActionRight):
			g.mgr.OnMoveStart(MoveRight, id)
		}
		if frame.Has(core.ActionShoot) {
			g.mgr.OnShoot(id)
		}
	}

	g.clock.Advance(g.pacer.Next())
	g.mgr.Tick()

	return core.StepResult{State: g.State()}
}

// Render copies the last frame into dst and draws the HUD over it.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenWidth, minScreenHeight))
		return
	}

	dst.CopyFrom(g.frame)
	g.hud.draw(dst)

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, " PAUSED - P to resume ")
	}
}

// State returns the platform view of the match.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.mgr.Summary().Best(),
		Level:    g.mgr.Level(),
		GameOver: g.mgr.State() == StateEnd,
		Paused:   g.paused,
	}
}

// PlaceWall adds a custom wall centered on a screen column.
func (g *Game) PlaceWall(col int) bool {
	if g.paused || g.screenTooSmall || g.frame.Width() == 0 {
		return false
	}
	x := (float64(col)+0.5)*g.cfg.World.Width/float64(g.frame.Width()) - g.cfg.World.WallWidth/2
	if !g.mgr.AddWall(x) {
		return false
	}
	g.mgr.Render()
	return true
}

// Summary returns the per-seat results of the current match.
func (g *Game) Summary() Summary {
	return g.mgr.Summary()
}

// Manager exposes the running match.
func (g *Game) Manager() *Manager {
	return g.mgr
}

func init() {
	registry.Register("pang", func() registry.Game { return New() })
	registry.Register("pang_coop", func() registry.Game { return NewCoop() })
}
