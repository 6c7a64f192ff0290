package pang

import (
	"github.com/vovakirdan/tui-pang/internal/core"
)

// Movement is a player's horizontal movement intent.
type Movement int

const (
	MoveStationary Movement = iota
	MoveLeft
	MoveRight
)

// String returns the name of the movement.
func (m Movement) String() string {
	switch m {
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	default:
		return "stationary"
	}
}

// Player is one local player standing on the ground.
type Player struct {
	Seat     core.PlayerID
	X, Y     float64 // Top-left corner
	W, H     float64
	Movement Movement
	Lives    int
	Score    int
	Sticky   bool // Granted by a power-up, kept for the rest of the run
	Arrow    Arrow

	initialX    float64
	shootQueued bool
}

func (p *Player) centerX() float64 {
	return p.X + p.W/2
}

func (p *Player) incrementScore(n int) {
	p.Score += n
}

func (p *Player) updateLives() {
	p.Lives--
}

// update fires a queued shot or moves the player. Firing holds the player in
// place for that tick; the movement intent is kept and resumes on the next one.
func (p *Player) update(a *arena, walls []*Wall, speed float64) {
	if p.shootQueued {
		p.shootQueued = false
		if !p.Arrow.Active {
			p.Arrow.fire(p.centerX(), p.Y)
			return
		}
	}

	left, right := p.bounds(a, walls)
	switch p.Movement {
	case MoveLeft:
		p.X -= speed
	case MoveRight:
		p.X += speed
	}
	p.X = core.ClampF(p.X, left, right)
}

// bounds returns the range of X the player may occupy. Standing walls act as
// extra borders on the side they are on.
func (p *Player) bounds(a *arena, walls []*Wall) (float64, float64) {
	left := a.left
	right := a.right - p.W
	c := p.centerX()
	for _, w := range walls {
		if !w.blocksSpan(p.Y, p.Y+p.H) {
			continue
		}
		if w.X+w.W/2 < c {
			left = max(left, w.X+w.W)
		} else {
			right = min(right, w.X-p.W)
		}
	}
	if right < left {
		right = left
	}
	return left, right
}
