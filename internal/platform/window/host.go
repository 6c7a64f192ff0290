// Package window runs Pang in a desktop window with ebiten. The match is
// driven by ebiten's fixed update rate and drawn from a display list
// recorded during the update.
package window

import (
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-pang/internal/config"
	"github.com/vovakirdan/tui-pang/internal/core"
	"github.com/vovakirdan/tui-pang/internal/games/pang"
	"github.com/vovakirdan/tui-pang/internal/levels"
	"github.com/vovakirdan/tui-pang/internal/platform/window/scene"
	"github.com/vovakirdan/tui-pang/internal/storage"
)

const lineHeight = 16

type seatKeys struct {
	left, right, shoot ebiten.Key
}

var bindings = [2]seatKeys{
	{left: ebiten.KeyArrowLeft, right: ebiten.KeyArrowRight, shoot: ebiten.KeySpace},
	{left: ebiten.KeyA, right: ebiten.KeyD, shoot: ebiten.KeyW},
}

var overlayColor = color.RGBA{A: 170}

// Options configures a window session.
type Options struct {
	GameID     string // Score table key
	Players    int
	Config     config.PangConfig
	Levels     []levels.Descriptor
	StartLevel int
	Seed       int64 // 0 picks a time-based seed per match
	TPS        int
	Scale      float64
	Store      *storage.Store // Optional
	Logger     *log.Logger
}

// Host implements ebiten.Game around a pang.Manager.
type Host struct {
	opts   Options
	mgr    *pang.Manager
	clock  *pang.ManualClock
	list   *scene.DisplayList
	hud    *scene.HUD
	keys   [2]scene.MoveKeys
	paused bool
	saved  bool
	pacer  *pang.TickPacer
}

// NewHost creates a host and starts the first match.
func NewHost(opts Options) *Host {
	if opts.Players < 1 || opts.Players > 2 {
		opts.Players = 1
	}
	if opts.TPS <= 0 {
		opts.TPS = 60
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Config == (config.PangConfig{}) {
		opts.Config = config.DefaultPangConfig()
	}
	if opts.GameID == "" {
		opts.GameID = "pang"
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := &Host{opts: opts}
	h.reset()
	return h
}

func (h *Host) reset() {
	seed := h.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	h.clock = &pang.ManualClock{}
	h.pacer = pang.NewTickPacer(h.opts.TPS)
	h.list = &scene.DisplayList{}
	h.hud = scene.NewHUD(h.opts.Players)
	h.keys = [2]scene.MoveKeys{}
	h.paused = false
	h.saved = false
	h.mgr = pang.NewManager(pang.Options{
		Config:     h.opts.Config,
		Levels:     h.opts.Levels,
		StartLevel: h.opts.StartLevel,
		Players:    h.opts.Players,
		Seed:       seed,
		Clock:      h.clock,
		UI:         h.hud,
		Renderer:   h.list,
		Logger:     h.opts.Logger,
	})
	h.mgr.Render()
	h.opts.Logger.Info("match started", "game", h.opts.GameID, "seed", seed)
}

// Update advances the match by one tick.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if h.mgr.State() == pang.StateEnd {
		h.saveResults()
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			h.reset()
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		h.paused = !h.paused
	}
	if h.paused {
		return nil
	}

	h.readSeats()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, _ := ebiten.CursorPosition()
		h.mgr.AddWall(float64(x) - h.opts.Config.World.WallWidth/2)
	}

	h.clock.Advance(h.pacer.Next())
	h.mgr.Tick()
	return nil
}

func (h *Host) readSeats() {
	for seat := range h.opts.Players {
		b := bindings[seat]
		id := core.PlayerID(seat)
		k := &h.keys[seat]

		for _, d := range [...]struct {
			key ebiten.Key
			dir pang.Movement
		}{{b.left, pang.MoveLeft}, {b.right, pang.MoveRight}} {
			if inpututil.IsKeyJustPressed(d.key) {
				h.move(id, k.Press(d.dir))
			}
			if inpututil.IsKeyJustReleased(d.key) {
				h.move(id, k.Release(d.dir))
			}
		}

		if inpututil.IsKeyJustPressed(b.shoot) {
			h.mgr.OnShoot(id)
		}
	}
}

func (h *Host) move(id core.PlayerID, dir pang.Movement) {
	if dir == pang.MoveStationary {
		h.mgr.OnMoveEnd(id)
		return
	}
	h.mgr.OnMoveStart(dir, id)
}

// saveResults stores every seat that scored, once per match.
func (h *Host) saveResults() {
	if h.saved {
		return
	}
	h.saved = true

	s := h.mgr.Summary()
	h.opts.Logger.Info("match over", "game", h.opts.GameID, "reason", s.Reason, "level", s.Level, "scores", s.Scores)
	if h.opts.Store == nil {
		return
	}
	for seat, score := range s.Scores {
		if score <= 0 {
			continue
		}
		_, err := h.opts.Store.SaveScore(storage.ScoreEntry{
			GameID:    h.opts.GameID,
			Player:    seat + 1,
			Score:     score,
			Level:     s.Level,
			EndReason: s.Reason.String(),
		})
		if err != nil {
			h.opts.Logger.Warn("could not save score", "err", err)
		}
	}
}

// Draw replays the display list.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(h.list.Background)
	for _, s := range h.list.Shapes {
		switch s.Kind {
		case scene.ShapeRect:
			vector.DrawFilledRect(screen, s.X, s.Y, s.W, s.H, s.Color, false)
		case scene.ShapeCircle:
			vector.DrawFilledCircle(screen, s.X, s.Y, s.W, s.Color, true)
		}
	}

	cfg := h.opts.Config
	ebitenutil.DebugPrintAt(screen, h.hud.Line(), 8, int(cfg.World.GroundY())+8)

	switch {
	case h.list.Over != nil:
		w, ht := float32(cfg.World.Width), float32(cfg.World.Height)
		vector.DrawFilledRect(screen, 0, 0, w, ht, overlayColor, false)
		lines := scene.SummaryLines(*h.list.Over)
		y := int(cfg.World.Height)/2 - len(lines)*lineHeight/2
		for i, line := range lines {
			ebitenutil.DebugPrintAt(screen, line, int(cfg.World.Width)/2-len(line)*3, y+i*lineHeight)
		}
	case h.paused:
		msg := "PAUSED - P to resume"
		ebitenutil.DebugPrintAt(screen, msg, int(cfg.World.Width)/2-len(msg)*3, int(cfg.World.Height)/2)
	}
}

// Layout keeps the world resolution and lets ebiten scale it to the window.
func (h *Host) Layout(_, _ int) (int, int) {
	return int(h.opts.Config.World.Width), int(h.opts.Config.World.Height)
}

// Manager exposes the running match.
func (h *Host) Manager() *pang.Manager {
	return h.mgr
}

// Run opens the window and blocks until it is closed or Esc is pressed.
func Run(opts Options) error {
	h := NewHost(opts)
	cfg := h.opts.Config

	title := "Pang"
	if h.opts.Players == 2 {
		title = "Pang (Co-op)"
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(int(cfg.World.Width*h.opts.Scale), int(cfg.World.Height*h.opts.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(h.opts.TPS)

	return ebiten.RunGame(h)
}
