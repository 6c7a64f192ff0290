package pang

import "github.com/vovakirdan/tui-pang/internal/core"

// UISink receives the values shown around the play field.
// It is called on every running tick.
type UISink interface {
	UpdateScore(player core.PlayerID, score int)
	UpdateLives(player core.PlayerID, lives int)
	UpdateLevel(level int)
	UpdateTimer(msRemaining int64)
}

// Renderer receives one draw call per visible entity per running tick, in
// painter's order. Views carry world coordinates.
type Renderer interface {
	DrawBackground(id string)
	DrawArrow(ArrowView)
	DrawPlayer(PlayerView)
	DrawPowerUp(PowerUpView)
	DrawBubble(BubbleView)
	DrawDefaultWall(WallView)
	DrawGround(GroundView)
	DrawExtraWall(WallView)
	DrawGameOver(Summary)
}

// BubbleView is the drawable state of a bubble.
type BubbleView struct {
	X, Y, R float64
}

// ArrowView is the drawable state of a harpoon.
type ArrowView struct {
	Seat   core.PlayerID
	X      float64
	TipY   float64
	BaseY  float64
	Width  float64
	Sticky bool
}

// PlayerView is the drawable state of a player.
type PlayerView struct {
	Seat     core.PlayerID
	X, Y     float64
	W, H     float64
	Movement Movement
}

// PowerUpView is the drawable state of a power-up.
type PowerUpView struct {
	X, Y   float64 // Center
	Size   float64
	Option PowerUpOption
}

// WallView is the drawable state of a wall.
type WallView struct {
	X, Y, W, H   float64
	Kind         WallKind
	Disappearing bool
}

// GroundView is the strip below the play field.
type GroundView struct {
	Y      float64
	Width  float64
	Height float64
}

// EndReason tells why a match ended.
type EndReason int

const (
	EndNone EndReason = iota
	EndTimeUp
	EndNoPlayers
)

// String returns a short description of the reason.
func (r EndReason) String() string {
	switch r {
	case EndTimeUp:
		return "time up"
	case EndNoPlayers:
		return "no players left"
	default:
		return ""
	}
}

// Summary describes a finished match.
type Summary struct {
	Reason     EndReason
	Level      int
	Scores     []int // Indexed by seat
	AllCleared bool
}

// Best returns the highest score of the match.
func (s Summary) Best() int {
	best := 0
	for _, v := range s.Scores {
		best = max(best, v)
	}
	return best
}

// NopSink discards UI updates.
type NopSink struct{}

func (NopSink) UpdateScore(core.PlayerID, int) {}
func (NopSink) UpdateLives(core.PlayerID, int) {}
func (NopSink) UpdateLevel(int)                {}
func (NopSink) UpdateTimer(int64)              {}

// NopRenderer discards draw calls.
type NopRenderer struct{}

func (NopRenderer) DrawBackground(string)    {}
func (NopRenderer) DrawArrow(ArrowView)      {}
func (NopRenderer) DrawPlayer(PlayerView)    {}
func (NopRenderer) DrawPowerUp(PowerUpView)  {}
func (NopRenderer) DrawBubble(BubbleView)    {}
func (NopRenderer) DrawDefaultWall(WallView) {}
func (NopRenderer) DrawGround(GroundView)    {}
func (NopRenderer) DrawExtraWall(WallView)   {}
func (NopRenderer) DrawGameOver(Summary)     {}
