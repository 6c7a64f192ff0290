package pang

import (
	"testing"

	"github.com/vovakirdan/tui-pang/internal/config"
	"github.com/vovakirdan/tui-pang/internal/core"
	"github.com/vovakirdan/tui-pang/internal/levels"
)

// staticConfig freezes bubbles in place so collisions can be staged.
func staticConfig() config.PangConfig {
	cfg := config.DefaultPangConfig()
	cfg.Physics.Gravity = 0
	cfg.Physics.BubbleDX = 0
	cfg.Physics.BubbleDY = 0
	return cfg
}

func level(n int, walls []float64, bubbles ...levels.BubbleSpec) levels.Descriptor {
	return levels.Descriptor{
		BackgroundID:  "test",
		Level:         n,
		Bubbles:       bubbles,
		WallsPosX:     walls,
		IsWallPresent: len(walls) > 0,
	}
}

type recordingSink struct {
	scores map[core.PlayerID]int
	lives  map[core.PlayerID]int
	levels []int
	timer  int64
	calls  int
}

func newRecordingSink() *recordingSink {
	return &recordingSink{scores: map[core.PlayerID]int{}, lives: map[core.PlayerID]int{}}
}

func (s *recordingSink) UpdateScore(p core.PlayerID, score int) { s.scores[p] = score }
func (s *recordingSink) UpdateLives(p core.PlayerID, lives int) { s.lives[p] = lives }
func (s *recordingSink) UpdateLevel(n int)                      { s.levels = append(s.levels, n) }
func (s *recordingSink) UpdateTimer(ms int64) {
	s.timer = ms
	s.calls++
}

type recordingRenderer struct {
	calls   []string
	summary *Summary
}

func (r *recordingRenderer) DrawBackground(string)    { r.calls = append(r.calls, "background") }
func (r *recordingRenderer) DrawArrow(ArrowView)      { r.calls = append(r.calls, "arrow") }
func (r *recordingRenderer) DrawPlayer(PlayerView)    { r.calls = append(r.calls, "player") }
func (r *recordingRenderer) DrawPowerUp(PowerUpView)  { r.calls = append(r.calls, "powerup") }
func (r *recordingRenderer) DrawBubble(BubbleView)    { r.calls = append(r.calls, "bubble") }
func (r *recordingRenderer) DrawDefaultWall(WallView) { r.calls = append(r.calls, "defaultWall") }
func (r *recordingRenderer) DrawGround(GroundView)    { r.calls = append(r.calls, "ground") }
func (r *recordingRenderer) DrawExtraWall(WallView)   { r.calls = append(r.calls, "extraWall") }
func (r *recordingRenderer) DrawGameOver(s Summary) {
	r.calls = append(r.calls, "gameOver")
	r.summary = &s
}

// touch places a bubble inside p so the next collision pass costs a life.
func touch(m *Manager, p *Player) {
	m.bubbles = append(m.bubbles, newBubble(p.centerX(), p.Y+10, 20, 0, 0))
}

func TestPopSplitsBubbleAndRewardsEveryone(t *testing.T) {
	m := NewManager(Options{
		Config:  staticConfig(),
		Levels:  []levels.Descriptor{level(1, nil, levels.BubbleSpec{CenterX: 100, CenterY: 100, Radius: 30})},
		Players: 2,
		Clock:   &ManualClock{},
	})

	shooter := m.Players()[0]
	shooter.X = 100 - shooter.W/2
	m.OnShoot(core.Player1)

	for i := 0; i < 100 && len(m.Bubbles()) == 1; i++ {
		m.Tick()
	}

	bubbles := m.Bubbles()
	if len(bubbles) != 2 {
		t.Fatalf("got %d bubbles after the pop, expected 2", len(bubbles))
	}
	for _, b := range bubbles {
		if b.R != 15 {
			t.Errorf("child radius = %f, expected 15", b.R)
		}
	}

	pus := m.PowerUps()
	if len(pus) != 1 {
		t.Fatalf("got %d power-ups, expected 1", len(pus))
	}
	if pus[0].X != 100 || pus[0].Y != 100 {
		t.Errorf("power-up at (%f, %f), expected (100, 100)", pus[0].X, pus[0].Y)
	}
	if pus[0].Option < PowerUpScore || pus[0].Option > PowerUpPenalty {
		t.Errorf("power-up option %d out of range", pus[0].Option)
	}

	for _, p := range m.Players() {
		if p.Score != 1 {
			t.Errorf("player %d score = %d, expected 1", p.Seat, p.Score)
		}
	}
	if shooter.Arrow.Active {
		t.Error("plain harpoon should be spent by the pop")
	}
	if m.Pops() != 1 {
		t.Errorf("Pops() = %d, expected 1", m.Pops())
	}
}

func TestSmallBubblePopLeavesNoChildren(t *testing.T) {
	m := NewManager(Options{
		Config: staticConfig(),
		Levels: []levels.Descriptor{level(1, nil,
			levels.BubbleSpec{CenterX: 100, CenterY: 100, Radius: 15},
			levels.BubbleSpec{CenterX: 600, CenterY: 100, Radius: 30},
		)},
		Clock: &ManualClock{},
	})

	p := m.Players()[0]
	p.X = 100 - p.W/2
	m.OnShoot(core.Player1)

	for i := 0; i < 100 && len(m.Bubbles()) == 2; i++ {
		m.Tick()
	}

	if len(m.Bubbles()) != 1 {
		t.Fatalf("got %d bubbles, expected 1", len(m.Bubbles()))
	}
	if m.Bubbles()[0].X != 600 {
		t.Error("the wrong bubble was popped")
	}
	if len(m.PowerUps()) != 0 {
		t.Error("a bubble too small to split should not drop a power-up")
	}
	if p.Score != 1 {
		t.Errorf("score = %d, expected 1", p.Score)
	}
}

func TestOneHarpoonPopsOneBubble(t *testing.T) {
	m := NewManager(Options{
		Config: staticConfig(),
		Levels: []levels.Descriptor{level(1, nil,
			levels.BubbleSpec{CenterX: 100, CenterY: 200, Radius: 15},
			levels.BubbleSpec{CenterX: 100, CenterY: 200, Radius: 15},
		)},
		Clock: &ManualClock{},
	})
	p := m.Players()[0]
	p.X = 100 - p.W/2
	m.OnShoot(core.Player1)

	// Both bubbles reach the harpoon on the same tick.
	for i := 0; i < 100 && len(m.Bubbles()) == 2; i++ {
		m.Tick()
	}
	if len(m.Bubbles()) != 1 {
		t.Fatalf("got %d bubbles, expected exactly one pop", len(m.Bubbles()))
	}
	if p.Score != 1 {
		t.Errorf("score = %d, expected 1", p.Score)
	}
}

func TestSpentHarpoonLeavesPopToPartner(t *testing.T) {
	m := NewManager(Options{
		Config: staticConfig(),
		Levels: []levels.Descriptor{level(1, nil,
			levels.BubbleSpec{CenterX: 100, CenterY: 200, Radius: 15},
			levels.BubbleSpec{CenterX: 112, CenterY: 200, Radius: 15},
		)},
		Players: 2,
		Clock:   &ManualClock{},
	})
	p1, p2 := m.Players()[0], m.Players()[1]
	// P1's harpoon touches both bubbles, P2's only the second.
	p1.Arrow.fire(100, 100)
	p2.Arrow.fire(120, 100)

	m.checkCollisions()
	m.resolvePops()

	if len(m.Bubbles()) != 0 {
		t.Fatalf("got %d bubbles, expected both popped", len(m.Bubbles()))
	}
	if p1.Arrow.Active || p2.Arrow.Active {
		t.Error("each harpoon should be spent by one pop")
	}
	if m.Pops() != 2 || p1.Score != 2 || p2.Score != 2 {
		t.Errorf("pops = %d, scores = %d/%d, expected 2 each", m.Pops(), p1.Score, p2.Score)
	}
}

func TestThreeContactsRemovePlayer(t *testing.T) {
	sink := newRecordingSink()
	m := NewManager(Options{
		Config:  staticConfig(),
		Levels:  []levels.Descriptor{level(1, nil, levels.BubbleSpec{CenterX: 400, CenterY: 100, Radius: 30})},
		Players: 2,
		Clock:   &ManualClock{},
		UI:      sink,
	})

	p1 := m.Players()[0]
	p2 := m.Players()[1]
	for i := 1; i <= 3; i++ {
		touch(m, p1)
		m.Tick()
		if p1.Lives != 3-i {
			t.Fatalf("after contact %d lives = %d, expected %d", i, p1.Lives, 3-i)
		}
	}

	if len(m.Players()) != 1 || m.Players()[0] != p2 {
		t.Fatalf("player 1 should be out, roster has %d players", len(m.Players()))
	}
	if p2.Lives != 3 {
		t.Errorf("player 2 lives = %d, expected 3", p2.Lives)
	}
	if m.State() != StateRunning {
		t.Error("match should continue while a player remains")
	}
	if sink.lives[core.Player1] != 0 {
		t.Errorf("UI should show player 1 with no lives, got %d", sink.lives[core.Player1])
	}

	// Input for a seat that left is ignored.
	m.OnShoot(core.Player1)
	m.OnMoveStart(MoveLeft, core.Player1)
}

func TestOnlyFirstContactPerTickCounts(t *testing.T) {
	m := NewManager(Options{
		Config:  staticConfig(),
		Levels:  []levels.Descriptor{level(1, nil, levels.BubbleSpec{CenterX: 400, CenterY: 100, Radius: 30})},
		Players: 2,
		Clock:   &ManualClock{},
	})
	p1, p2 := m.Players()[0], m.Players()[1]
	touch(m, p2)
	touch(m, p1)
	m.Tick()

	if p2.Lives != 2 || p1.Lives != 3 {
		t.Errorf("lives = %d/%d, expected only player 2 to lose one", p1.Lives, p2.Lives)
	}
}

func TestEmptyRosterEndsMatch(t *testing.T) {
	rec := &recordingRenderer{}
	m := NewManager(Options{
		Config:   staticConfig(),
		Levels:   []levels.Descriptor{level(1, nil, levels.BubbleSpec{CenterX: 400, CenterY: 100, Radius: 30})},
		Clock:    &ManualClock{},
		Renderer: rec,
	})
	p := m.Players()[0]
	p.Score = 7

	var more bool
	for range 3 {
		touch(m, p)
		more = m.Tick()
	}

	if more {
		t.Error("Tick should stop scheduling at END")
	}
	if m.State() != StateEnd || m.EndReason() != EndNoPlayers {
		t.Fatalf("state = %s (%s), expected END with no players", m.State(), m.EndReason())
	}
	if rec.summary == nil || rec.summary.Scores[0] != 7 {
		t.Errorf("game over screen should carry the final score, got %+v", rec.summary)
	}

	ticks := m.Ticks()
	for range 5 {
		if m.Tick() {
			t.Fatal("END must be absorbing")
		}
	}
	if m.State() != StateEnd || m.Ticks() != ticks {
		t.Error("ticks after END should not run")
	}
}

func TestTimerEndsMatchAtLimit(t *testing.T) {
	clock := &ManualClock{}
	m := NewManager(Options{
		Config: staticConfig(),
		Levels: []levels.Descriptor{level(1, nil, levels.BubbleSpec{CenterX: 400, CenterY: 100, Radius: 30})},
		Clock:  clock,
	})

	clock.Set(39999)
	if !m.Tick() {
		t.Fatal("match ended before the limit")
	}
	if got := m.Timer().Remaining(); got != 1 {
		t.Errorf("remaining = %d, expected 1", got)
	}

	clock.Set(40000)
	if m.Tick() {
		t.Error("Tick should report the end")
	}
	if m.State() != StateEnd || m.EndReason() != EndTimeUp {
		t.Fatalf("state = %s (%s), expected END by time", m.State(), m.EndReason())
	}

	clock.Set(0)
	m.Tick()
	if m.State() != StateEnd {
		t.Error("state reverted from END")
	}
}

func TestPowerUpEffects(t *testing.T) {
	tests := []struct {
		name   string
		option PowerUpOption
		check  func(t *testing.T, m *Manager, taker, other *Player)
	}{
		{
			name:   "score bonus",
			option: PowerUpScore,
			check: func(t *testing.T, m *Manager, taker, other *Player) {
				if taker.Score != 1 || other.Score != 0 {
					t.Errorf("scores = %d/%d, expected bonus for the collector only", taker.Score, other.Score)
				}
			},
		},
		{
			name:   "sticky harpoon",
			option: PowerUpSticky,
			check: func(t *testing.T, m *Manager, taker, other *Player) {
				if !taker.Sticky || other.Sticky {
					t.Error("sticky should go to the collector only")
				}
			},
		},
		{
			name:   "time penalty",
			option: PowerUpPenalty,
			check: func(t *testing.T, m *Manager, taker, other *Player) {
				if m.Timer().Adjusted() != 3000 {
					t.Errorf("adjusted = %d, expected 3000", m.Timer().Adjusted())
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewManager(Options{
				Config:  staticConfig(),
				Levels:  []levels.Descriptor{level(1, nil, levels.BubbleSpec{CenterX: 400, CenterY: 100, Radius: 30})},
				Players: 2,
				Clock:   &ManualClock{},
			})
			taker, other := m.Players()[1], m.Players()[0]
			m.powerUps = append(m.powerUps, &PowerUp{X: taker.centerX(), Y: taker.Y + 20, Size: 30, Option: tc.option})
			m.Tick()

			if len(m.PowerUps()) != 0 {
				t.Error("collected power-up should be removed")
			}
			tc.check(t, m, taker, other)
		})
	}
}

func TestPenaltyTakesTimeWithoutChangingLimit(t *testing.T) {
	clock := &ManualClock{}
	m := NewManager(Options{
		Config: staticConfig(),
		Levels: []levels.Descriptor{level(1, nil, levels.BubbleSpec{CenterX: 400, CenterY: 100, Radius: 30})},
		Clock:  clock,
	})

	clock.Set(1000)
	m.Tick()
	if got := m.Timer().Remaining(); got != 39000 {
		t.Fatalf("remaining = %d, expected 39000", got)
	}

	p := m.Players()[0]
	m.powerUps = append(m.powerUps, &PowerUp{X: p.centerX(), Y: p.Y + 20, Size: 30, Option: PowerUpPenalty})
	m.Tick()

	if got := m.Timer().Remaining(); got != 36000 {
		t.Errorf("remaining = %d, expected 36000", got)
	}
	if m.Timer().Limit() != 40000 {
		t.Errorf("limit = %d, expected 40000", m.Timer().Limit())
	}
}

func TestLoadNextLevelPastEndIsNoop(t *testing.T) {
	m := NewManager(Options{
		Config: staticConfig(),
		Levels: []levels.Descriptor{
			level(1, nil, levels.BubbleSpec{CenterX: 400, CenterY: 100, Radius: 30}),
			level(2, []float64{300}, levels.BubbleSpec{CenterX: 100, CenterY: 100, Radius: 30}),
		},
		Clock: &ManualClock{},
	})

	m.LoadNextLevel()
	if m.LevelIndex() != 1 || m.Level() != 2 {
		t.Fatalf("level = %d (index %d), expected level 2", m.Level(), m.LevelIndex())
	}

	before := m.Snapshot()
	for range 3 {
		m.LoadNextLevel()
	}
	after := m.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("LoadNextLevel past the last level changed the state")
	}
	if m.LevelIndex() != 1 {
		t.Errorf("level index = %d, expected 1", m.LevelIndex())
	}
	if m.LoadLevel(5) {
		t.Error("LoadLevel outside the table should fail")
	}
}

func TestClearingLevelAdvances(t *testing.T) {
	clock := &ManualClock{}
	sink := newRecordingSink()
	m := NewManager(Options{
		Config: staticConfig(),
		Levels: []levels.Descriptor{
			level(1, nil, levels.BubbleSpec{CenterX: 400, CenterY: 100, Radius: 30}),
			level(2, nil, levels.BubbleSpec{CenterX: 200, CenterY: 100, Radius: 30}, levels.BubbleSpec{CenterX: 600, CenterY: 100, Radius: 30}),
		},
		Clock: clock,
		UI:    sink,
	})

	clock.Set(5000)
	m.bubbles = nil
	m.Tick()

	if m.Level() != 2 || len(m.Bubbles()) != 2 {
		t.Fatalf("level = %d with %d bubbles, expected level 2 with 2", m.Level(), len(m.Bubbles()))
	}
	if m.Timer().Remaining() != 40000 {
		t.Errorf("timer not reset on level advance: %d", m.Timer().Remaining())
	}
	if sink.levels[len(sink.levels)-1] != 2 {
		t.Errorf("UI level = %v, expected 2 last", sink.levels)
	}

	m.bubbles = nil
	m.Tick()
	if !m.AllCleared() {
		t.Error("clearing the last level should be reported")
	}
	if m.State() != StateRunning {
		t.Error("clearing the last level does not end the match")
	}
}

func TestLevelWallsIgnoreFlag(t *testing.T) {
	tests := []struct {
		name    string
		posX    []float64
		flagged bool
	}{
		{"walls without flag", []float64{300, 500}, false},
		{"flag without walls", nil, true},
		{"flag and walls", []float64{390}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := level(1, nil, levels.BubbleSpec{CenterX: 100, CenterY: 100, Radius: 30})
			d.WallsPosX = tt.posX
			d.IsWallPresent = tt.flagged
			m := NewManager(Options{Config: staticConfig(), Levels: []levels.Descriptor{d}, Clock: &ManualClock{}})

			if len(m.Walls()) != len(tt.posX) {
				t.Fatalf("got %d walls, want %d", len(m.Walls()), len(tt.posX))
			}
			for i, w := range m.Walls() {
				if w.X != tt.posX[i] || w.Kind != WallLevel {
					t.Errorf("wall %d = %+v", i, w)
				}
			}
			if m.WallPresent() != tt.flagged {
				t.Errorf("WallPresent() = %v, want %v", m.WallPresent(), tt.flagged)
			}
		})
	}
}

func TestWallsRetreatInOrder(t *testing.T) {
	m := NewManager(Options{
		Config: staticConfig(),
		Levels: []levels.Descriptor{level(1, []float64{270, 530},
			levels.BubbleSpec{CenterX: 140, CenterY: 150, Radius: 30},
			levels.BubbleSpec{CenterX: 400, CenterY: 150, Radius: 30},
			levels.BubbleSpec{CenterX: 660, CenterY: 150, Radius: 40},
		)},
		Clock: &ManualClock{},
	})

	m.Tick()
	first, second := m.Walls()[0], m.Walls()[1]
	if first.Disappearing {
		t.Fatal("wall should stay while a bubble is on its left")
	}

	// Leave only the bubble right of both walls.
	m.bubbles = m.bubbles[2:]
	m.Tick()
	if !first.Disappearing {
		t.Fatal("first wall should start retreating")
	}

	for i := 0; i < 200 && len(m.Walls()) == 2; i++ {
		if second.Disappearing {
			t.Fatal("second wall started retreating before the first was removed")
		}
		m.Tick()
	}

	if len(m.Walls()) != 1 || m.Walls()[0] != second {
		t.Fatalf("first wall should be removed, %d walls left", len(m.Walls()))
	}
	if !second.Disappearing {
		t.Error("second wall should retreat once it is the nearest")
	}
}

func TestWallBlocksPlayerUntilRetracted(t *testing.T) {
	m := NewManager(Options{
		Config: staticConfig(),
		Levels: []levels.Descriptor{level(1, []float64{300}, levels.BubbleSpec{CenterX: 100, CenterY: 100, Radius: 20})},
		Clock:  &ManualClock{},
	})
	p := m.Players()[0]
	m.OnMoveStart(MoveRight, core.Player1)

	for range 200 {
		m.Tick()
	}
	if p.X != 300-p.W {
		t.Fatalf("X = %f, expected to stop at the wall", p.X)
	}

	m.Bubbles()[0].X = 500
	for range 300 {
		m.Tick()
	}
	if p.X != 780-p.W {
		t.Errorf("X = %f, expected to reach the right border", p.X)
	}
	if len(m.Walls()) != 0 {
		t.Error("retracted wall should be removed")
	}

	m.OnMoveEnd(core.Player1)
	x := p.X
	m.Tick()
	if p.X != x {
		t.Error("player kept moving after OnMoveEnd")
	}
}

func TestLifeLossRestartsLevel(t *testing.T) {
	clock := &ManualClock{}
	m := NewManager(Options{
		Config:  staticConfig(),
		Levels:  []levels.Descriptor{level(1, []float64{500}, levels.BubbleSpec{CenterX: 400, CenterY: 100, Radius: 30})},
		Players: 2,
		Clock:   clock,
	})
	p1, p2 := m.Players()[0], m.Players()[1]
	p1.Sticky = true
	p1.Score = 4
	p1.X = 200
	p2.X = 600
	p1.Arrow.fire(p1.centerX(), p1.Y)
	m.powerUps = append(m.powerUps, &PowerUp{X: 400, Y: 200, Size: 30, Option: PowerUpScore})
	if !m.AddWall(150) {
		t.Fatal("AddWall failed")
	}
	m.bubbles[0].R = 20

	clock.Set(12000)
	touch(m, p2)
	m.Tick()

	if p1.X != p1.initialX || p2.X != p2.initialX {
		t.Errorf("players not returned to start: %f, %f", p1.X, p2.X)
	}
	if p2.Lives != 2 || p1.Lives != 3 {
		t.Errorf("lives = %d/%d, expected only player 2 to lose one", p1.Lives, p2.Lives)
	}
	if len(m.PowerUps()) != 0 {
		t.Error("power-ups should be cleared")
	}
	if len(m.Walls()) != 1 || m.Walls()[0].Kind != WallLevel {
		t.Errorf("custom wall should be discarded, walls: %d", len(m.Walls()))
	}
	if len(m.Bubbles()) != 1 || m.Bubbles()[0].R != 30 {
		t.Error("level layout should be reloaded")
	}
	if m.Timer().Remaining() != 40000 {
		t.Errorf("timer not reset: %d", m.Timer().Remaining())
	}
	if p1.Arrow.Active {
		t.Error("harpoons should be cleared")
	}
	if !p1.Sticky || p1.Score != 4 {
		t.Error("score and sticky harpoon survive a lost life")
	}
}

func TestAddWall(t *testing.T) {
	m := NewManager(Options{
		Config: staticConfig(),
		Levels: []levels.Descriptor{level(1, []float64{300, 600}, levels.BubbleSpec{CenterX: 100, CenterY: 100, Radius: 20})},
		Clock:  &ManualClock{},
	})

	for _, x := range []float64{0, 10, 770, 900} {
		if m.AddWall(x) {
			t.Errorf("AddWall(%f) should fail outside the play area", x)
		}
	}
	if !m.AddWall(450) {
		t.Fatal("AddWall(450) failed")
	}

	walls := m.Walls()
	if len(walls) != 3 {
		t.Fatalf("got %d walls, expected 3", len(walls))
	}
	if walls[1].X != 450 || walls[1].Kind != WallCustom {
		t.Errorf("custom wall not kept in order: %+v", walls[1])
	}
}

func TestStickyHarpoonKeepsPopping(t *testing.T) {
	m := NewManager(Options{
		Config: staticConfig(),
		Levels: []levels.Descriptor{level(1, nil, levels.BubbleSpec{CenterX: 100, CenterY: 100, Radius: 30})},
		Clock:  &ManualClock{},
	})
	p := m.Players()[0]
	p.Sticky = true
	p.X = 100 - p.W/2
	m.OnShoot(core.Player1)

	for i := 0; i < 100 && m.Pops() == 0; i++ {
		m.Tick()
	}
	if m.Pops() != 1 {
		t.Fatal("first pop did not happen")
	}
	if !p.Arrow.Active || p.Arrow.Hittable {
		t.Fatalf("sticky harpoon should stay up unarmed, active=%v hittable=%v", p.Arrow.Active, p.Arrow.Hittable)
	}

	for i := 0; i < 60 && len(m.Bubbles()) > 0; i++ {
		m.Tick()
	}
	if m.Pops() != 3 || len(m.Bubbles()) != 0 {
		t.Errorf("pops = %d with %d bubbles left, expected the harpoon to clear both halves", m.Pops(), len(m.Bubbles()))
	}
	if p.Score != 3 {
		t.Errorf("score = %d, expected 3", p.Score)
	}
}

func TestShotIgnoredWhileHarpoonOut(t *testing.T) {
	m := NewManager(Options{
		Config: staticConfig(),
		Levels: []levels.Descriptor{level(1, nil, levels.BubbleSpec{CenterX: 600, CenterY: 100, Radius: 30})},
		Clock:  &ManualClock{},
	})
	p := m.Players()[0]
	m.OnShoot(core.Player1)
	m.Tick()
	tip := p.Arrow.TipY

	m.OnShoot(core.Player1)
	m.Tick()
	if p.Arrow.TipY != tip-m.cfg.Arrow.Speed {
		t.Errorf("TipY = %f, a second shot should not restart the harpoon", p.Arrow.TipY)
	}
}

func TestRenderPassOrder(t *testing.T) {
	rec := &recordingRenderer{}
	sink := newRecordingSink()
	m := NewManager(Options{
		Config:   staticConfig(),
		Levels:   []levels.Descriptor{level(1, []float64{500}, levels.BubbleSpec{CenterX: 100, CenterY: 100, Radius: 30})},
		Clock:    &ManualClock{},
		Renderer: rec,
		UI:       sink,
	})
	m.powerUps = append(m.powerUps, &PowerUp{X: 300, Y: 100, Size: 30, Option: PowerUpScore})
	m.OnShoot(core.Player1)

	rec.calls = nil
	m.Tick()

	want := []string{"background", "arrow", "player", "powerup", "bubble", "defaultWall", "defaultWall", "ground", "extraWall"}
	if len(rec.calls) != len(want) {
		t.Fatalf("render calls = %v, expected %v", rec.calls, want)
	}
	for i := range want {
		if rec.calls[i] != want[i] {
			t.Fatalf("render calls = %v, expected %v", rec.calls, want)
		}
	}

	if sink.timer != 40000 || sink.calls != 1 {
		t.Errorf("timer updates: last=%d calls=%d", sink.timer, sink.calls)
	}
	if lives, ok := sink.lives[core.Player1]; !ok || lives != 3 {
		t.Errorf("lives update = %d, expected 3", lives)
	}
	if _, ok := sink.scores[core.Player1]; !ok {
		t.Error("score should be pushed every tick")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		clock := &ManualClock{}
		m := NewManager(Options{Players: 2, Seed: 12345, Clock: clock})
		for i := range 900 {
			switch {
			case i%97 == 0:
				m.OnShoot(core.Player1)
			case i%89 == 0:
				m.OnShoot(core.Player2)
			}
			switch (i / 40) % 3 {
			case 0:
				m.OnMoveStart(MoveRight, core.Player1)
				m.OnMoveStart(MoveLeft, core.Player2)
			case 1:
				m.OnMoveStart(MoveLeft, core.Player1)
				m.OnMoveEnd(core.Player2)
			default:
				m.OnMoveEnd(core.Player1)
				m.OnMoveStart(MoveRight, core.Player2)
			}
			clock.Advance(16)
			if !m.Tick() {
				break
			}
		}
		return m.Snapshot()
	}

	a, b := run(), run()
	if a.Hash() != b.Hash() {
		t.Errorf("determinism failed: hashes differ %d vs %d", a.Hash(), b.Hash())
	}
	if a.Tick != b.Tick {
		t.Errorf("tick counts differ: %d vs %d", a.Tick, b.Tick)
	}
}
