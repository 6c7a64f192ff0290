// Package pang implements the Pang simulation: players on a ground line
// shoot harpoons at bouncing bubbles that split until they vanish, before a
// countdown expires.
//
// The Manager owns every entity and advances them with Tick. Drawing goes
// through the Renderer interface and HUD values through the UISink, so the
// package has no dependency on a display.
package pang

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pang/internal/config"
	"github.com/vovakirdan/tui-pang/internal/core"
	"github.com/vovakirdan/tui-pang/internal/levels"
)

// State is the match state.
type State int

const (
	StateRunning State = iota
	StateEnd
)

// String returns the name of the state.
func (s State) String() string {
	if s == StateEnd {
		return "END"
	}
	return "RUNNING"
}

// Options configures a new Manager. Zero values select defaults.
type Options struct {
	Config     config.PangConfig
	Levels     []levels.Descriptor // Level table; built-in levels if empty
	StartLevel int                 // Index into Levels
	Players    int                 // 1 or 2
	Seed       int64
	Clock      Clock
	UI         UISink
	Renderer   Renderer
	Logger     *log.Logger
}

// Manager runs one match.
type Manager struct {
	cfg      config.PangConfig
	arena    *arena
	loader   *levelLoader
	timer    *Timer
	rng      *RNG
	ui       UISink
	renderer Renderer
	log      *log.Logger

	state     State
	endReason EndReason
	ticks     uint64
	pops      int

	background  string
	level       int
	wallPresent bool

	players  []*Player // Active roster in seat order
	seats    int       // Seats at match start
	finals   []int     // Last score per seat, kept after a player leaves
	bubbles  []*Bubble
	walls    []*Wall // Level and custom walls, left to right
	borders  []*Wall
	powerUps []*PowerUp
}

// NewManager creates a running match with the start level loaded.
func NewManager(opts Options) *Manager {
	cfg := opts.Config
	if cfg == (config.PangConfig{}) {
		cfg = config.DefaultPangConfig()
	}
	table := opts.Levels
	if len(table) == 0 {
		table = levels.Builtin()
	}
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	ui := opts.UI
	if ui == nil {
		ui = NopSink{}
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = NopRenderer{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seats := opts.Players
	if seats < 1 {
		seats = 1
	}
	if seats > 2 {
		seats = 2
	}

	m := &Manager{
		cfg:      cfg,
		arena:    newArena(cfg),
		loader:   newLevelLoader(table),
		timer:    newTimer(clock, cfg.Timer.LimitMS),
		rng:      NewRNG(opts.Seed),
		ui:       ui,
		renderer: renderer,
		log:      logger,
		state:    StateRunning,
		seats:    seats,
		finals:   make([]int, seats),
	}

	for i := range seats {
		m.players = append(m.players, m.newPlayer(core.PlayerID(i)))
	}

	start := opts.StartLevel
	if !m.LoadLevel(start) {
		m.LoadLevel(0)
	}
	m.timer.reset()
	return m
}

func (m *Manager) newPlayer(seat core.PlayerID) *Player {
	pc := m.cfg.Player
	x := m.arena.left
	if seat == core.Player2 {
		x = m.arena.right - pc.Width
	}
	return &Player{
		Seat:     seat,
		X:        x,
		Y:        m.arena.groundY - pc.Height,
		W:        pc.Width,
		H:        pc.Height,
		Lives:    pc.Lives,
		initialX: x,
	}
}

// Tick runs one frame: collisions, updates, the level advance check and the
// render pass. It returns whether the host should schedule another tick.
func (m *Manager) Tick() bool {
	if m.state != StateRunning {
		return false
	}
	m.ticks++

	m.checkCollisions()
	m.update()

	if m.state == StateRunning && len(m.bubbles) == 0 {
		m.LoadNextLevel()
	}

	m.Render()
	return m.state == StateRunning
}

// checkCollisions flags contacts between entities. A bubble touching a player
// costs that player a life; only the first contact in a tick counts since the
// reset clears every bubble.
func (m *Manager) checkCollisions() {
	if m.state != StateRunning {
		return
	}

	if p := m.firstBubbleContact(); p != nil {
		m.loseLife(p)
		if m.state != StateRunning {
			return
		}
	}

	groundY := m.arena.groundY
	width := m.cfg.Arrow.Width
	for _, b := range m.bubbles {
		b.hitBy = nil
		for _, p := range m.players {
			if p.Arrow.overlaps(b, width, groundY) {
				b.hitBy = p
				break
			}
		}
	}

	kept := m.powerUps[:0]
	for _, pu := range m.powerUps {
		var taker *Player
		for _, p := range m.players {
			if core.RectsOverlap(p.X, p.Y, p.W, p.H, pu.left(), pu.top(), pu.Size, pu.Size) {
				taker = p
				break
			}
		}
		if taker == nil {
			kept = append(kept, pu)
			continue
		}
		m.applyPowerUp(pu, taker)
	}
	clear(m.powerUps[len(kept):])
	m.powerUps = kept
}

func (m *Manager) firstBubbleContact() *Player {
	for _, b := range m.bubbles {
		for _, p := range m.players {
			if core.CircleIntersectsRect(b.X, b.Y, b.R, p.X, p.Y, p.W, p.H) {
				return p
			}
		}
	}
	return nil
}

func (m *Manager) applyPowerUp(pu *PowerUp, p *Player) {
	switch pu.Option {
	case PowerUpScore:
		p.incrementScore(m.cfg.PowerUps.ScoreBonus)
	case PowerUpSticky:
		p.Sticky = true
	case PowerUpPenalty:
		m.timer.penalize(m.cfg.Timer.PenaltyMS)
	}
	m.log.Debug("power-up collected", "player", int(p.Seat)+1, "option", pu.Option)
}

// update advances every entity by one tick in a fixed order.
func (m *Manager) update() {
	if m.state != StateRunning {
		return
	}

	for _, pu := range m.powerUps {
		pu.update(m.cfg.PowerUps.FallSpeed, m.arena.groundY)
	}

	if m.timer.recompute() <= 0 {
		m.end(EndTimeUp)
		return
	}

	if len(m.walls) > 0 && m.walls[0].gone() {
		m.log.Debug("wall removed", "x", m.walls[0].X)
		m.walls = slices.Delete(m.walls, 0, 1)
	}

	for _, p := range m.players {
		p.update(m.arena, m.walls, m.cfg.Player.Speed)
	}

	m.resolvePops()

	for _, b := range m.bubbles {
		b.update(m.arena, m.walls)
	}

	for _, p := range m.players {
		p.Arrow.update(m.cfg.Arrow.Speed, p.Sticky, m.cfg.Arrow.StickyHoldTicks)
	}

	m.checkBubblesOnPlayerSide()

	for _, w := range m.walls {
		w.update(m.cfg.Walls.ShrinkSpeed)
	}
}

// resolvePops turns flagged harpoon contacts into pops. Each harpoon claims
// at most one bubble: the first flagged in bubble order.
func (m *Manager) resolvePops() {
	next := make([]*Bubble, 0, len(m.bubbles)+2)
	for _, b := range m.bubbles {
		p := m.popper(b)
		b.hitBy = nil
		if p == nil {
			next = append(next, b)
			continue
		}

		if b.R >= m.cfg.Bubbles.MinSplitRadius {
			left, right := b.split(m.cfg.Physics.BubbleDX, m.cfg.Bubbles.SplitKick)
			next = append(next, left, right)
			m.spawnPowerUp(b.X, b.Y)
		}

		p.Arrow.consume(p.Sticky, m.cfg.Arrow.StickyRearmTicks)
		for _, pl := range m.players {
			pl.incrementScore(1)
		}
		m.pops++
	}
	m.bubbles = next
}

// popper returns the player whose harpoon pops b this tick. When the flagged
// harpoon is already spent, another armed harpoon touching b takes over.
func (m *Manager) popper(b *Bubble) *Player {
	if b.hitBy == nil {
		return nil
	}
	if canPop(b.hitBy) {
		return b.hitBy
	}
	for _, p := range m.players {
		if canPop(p) && p.Arrow.overlaps(b, m.cfg.Arrow.Width, m.arena.groundY) {
			return p
		}
	}
	return nil
}

func canPop(p *Player) bool {
	return p.Arrow.Active && p.Arrow.Hittable
}

func (m *Manager) spawnPowerUp(x, y float64) {
	opt := PowerUpOption(m.rng.Intn(powerUpOptions) + 1)
	m.powerUps = append(m.powerUps, &PowerUp{X: x, Y: y, Size: m.cfg.PowerUps.Size, Option: opt})
}

// checkBubblesOnPlayerSide starts retracting the nearest wall once no bubble
// remains at or left of it. Later walls wait until it is gone.
func (m *Manager) checkBubblesOnPlayerSide() {
	if len(m.walls) == 0 {
		return
	}
	w := m.walls[0]
	if w.Disappearing || w.gone() {
		return
	}
	for _, b := range m.bubbles {
		if b.X <= w.X {
			return
		}
	}
	w.startDisappearing()
	m.log.Debug("wall retracting", "x", w.X)
}

// loseLife restarts the current level after a bubble touched p.
func (m *Manager) loseLife(p *Player) {
	m.bubbles = nil
	m.powerUps = nil
	for _, pl := range m.players {
		pl.X = pl.initialX
		pl.shootQueued = false
		pl.Arrow.deactivate()
	}

	m.LoadLevel(m.loader.index)
	m.timer.reset()

	p.updateLives()
	m.log.Info("life lost", "player", int(p.Seat)+1, "lives", p.Lives)

	m.players = slices.DeleteFunc(m.players, func(pl *Player) bool {
		if pl.Lives > 0 {
			return false
		}
		m.finals[pl.Seat] = pl.Score
		m.ui.UpdateLives(pl.Seat, 0)
		m.log.Info("player out", "player", int(pl.Seat)+1, "score", pl.Score)
		return true
	})
	if len(m.players) == 0 {
		m.end(EndNoPlayers)
	}
}

func (m *Manager) end(reason EndReason) {
	if m.state == StateEnd {
		return
	}
	m.state = StateEnd
	m.endReason = reason
	m.log.Info("match over", "reason", reason, "level", m.level, "ticks", m.ticks)
}

// Render issues the render pass and pushes HUD values. Tick calls it; hosts
// may call it again to redraw without advancing.
func (m *Manager) Render() {
	r := m.renderer
	if m.state == StateEnd {
		r.DrawGameOver(m.Summary())
		m.pushUI()
		return
	}

	r.DrawBackground(m.background)

	groundY := m.arena.groundY
	for _, p := range m.players {
		if p.Arrow.Active {
			r.DrawArrow(ArrowView{
				Seat:   p.Seat,
				X:      p.Arrow.X,
				TipY:   p.Arrow.TipY,
				BaseY:  groundY,
				Width:  m.cfg.Arrow.Width,
				Sticky: p.Sticky,
			})
		}
	}
	for _, p := range m.players {
		r.DrawPlayer(PlayerView{Seat: p.Seat, X: p.X, Y: p.Y, W: p.W, H: p.H, Movement: p.Movement})
	}
	for _, pu := range m.powerUps {
		r.DrawPowerUp(PowerUpView{X: pu.X, Y: pu.Y, Size: pu.Size, Option: pu.Option})
	}
	for _, b := range m.bubbles {
		r.DrawBubble(BubbleView{X: b.X, Y: b.Y, R: b.R})
	}
	for _, w := range m.borders {
		r.DrawDefaultWall(wallView(w))
	}
	r.DrawGround(GroundView{Y: groundY, Width: m.arena.width, Height: m.arena.height - groundY})
	for _, w := range m.walls {
		if !w.gone() {
			r.DrawExtraWall(wallView(w))
		}
	}

	m.pushUI()
}

func wallView(w *Wall) WallView {
	return WallView{X: w.X, Y: w.Y, W: w.W, H: w.H, Kind: w.Kind, Disappearing: w.Disappearing}
}

func (m *Manager) pushUI() {
	for _, p := range m.players {
		m.ui.UpdateScore(p.Seat, p.Score)
		m.ui.UpdateLives(p.Seat, p.Lives)
	}
	m.ui.UpdateLevel(m.level)
	m.ui.UpdateTimer(max(m.timer.Remaining(), 0))
}

func (m *Manager) player(seat core.PlayerID) *Player {
	for _, p := range m.players {
		if p.Seat == seat {
			return p
		}
	}
	return nil
}

// OnMoveStart latches a movement intent for seat, read on the next tick.
func (m *Manager) OnMoveStart(dir Movement, seat core.PlayerID) {
	if p := m.player(seat); p != nil && dir != MoveStationary {
		p.Movement = dir
	}
}

// OnMoveEnd stops the player at seat.
func (m *Manager) OnMoveEnd(seat core.PlayerID) {
	if p := m.player(seat); p != nil {
		p.Movement = MoveStationary
	}
}

// OnShoot queues a shot for seat. It is ignored on the next tick if the
// player's harpoon is still out.
func (m *Manager) OnShoot(seat core.PlayerID) {
	if p := m.player(seat); p != nil {
		p.shootQueued = true
	}
}

// AddWall places a custom wall at x between the level walls. It lasts until
// the next life is lost. It returns false if x is outside the play area.
func (m *Manager) AddWall(x float64) bool {
	ww := m.cfg.World.WallWidth
	if m.state != StateRunning || x <= m.arena.left || x+ww >= m.arena.right {
		return false
	}
	w := newWall(x, ww, m.arena.groundY, WallCustom)
	i, _ := slices.BinarySearchFunc(m.walls, x, func(e *Wall, t float64) int {
		switch {
		case e.X < t:
			return -1
		case e.X > t:
			return 1
		}
		return 0
	})
	if i == 0 && len(m.walls) > 0 && m.walls[0].Disappearing {
		i = 1
	}
	m.walls = slices.Insert(m.walls, i, w)
	m.log.Debug("custom wall added", "x", x)
	return true
}

// State returns the match state.
func (m *Manager) State() State { return m.state }

// EndReason returns why the match ended, or EndNone while running.
func (m *Manager) EndReason() EndReason { return m.endReason }

// Level returns the level number currently loaded.
func (m *Manager) Level() int { return m.level }

// LevelIndex returns the index of the loaded level in the level table.
func (m *Manager) LevelIndex() int { return m.loader.index }

// LevelCount returns the size of the level table.
func (m *Manager) LevelCount() int { return len(m.loader.levels) }

// Background returns the background id of the loaded level.
func (m *Manager) Background() string { return m.background }

// WallPresent reports whether the loaded level declares walls.
func (m *Manager) WallPresent() bool { return m.wallPresent }

// Ticks returns the number of ticks run.
func (m *Manager) Ticks() uint64 { return m.ticks }

// Pops returns the number of bubbles popped in the match.
func (m *Manager) Pops() int { return m.pops }

// Timer returns the level countdown.
func (m *Manager) Timer() *Timer { return m.timer }

// Bubbles returns the live bubbles. The slice must not be modified.
func (m *Manager) Bubbles() []*Bubble { return m.bubbles }

// Walls returns the level and custom walls, nearest first.
func (m *Manager) Walls() []*Wall { return m.walls }

// PowerUps returns the power-ups in play.
func (m *Manager) PowerUps() []*PowerUp { return m.powerUps }

// Players returns the active roster.
func (m *Manager) Players() []*Player { return m.players }

// AllCleared reports whether the last level has no bubbles left.
func (m *Manager) AllCleared() bool {
	return len(m.bubbles) == 0 && !m.loader.hasNext()
}

// Scores returns the score of every seat, including players already out.
func (m *Manager) Scores() []int {
	out := slices.Clone(m.finals)
	for _, p := range m.players {
		out[p.Seat] = p.Score
	}
	return out
}

// Summary describes the match as it stands.
func (m *Manager) Summary() Summary {
	return Summary{
		Reason:     m.endReason,
		Level:      m.level,
		Scores:     m.Scores(),
		AllCleared: m.AllCleared(),
	}
}
