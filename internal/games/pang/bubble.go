package pang

import (
	"math"

	"github.com/vovakirdan/tui-pang/internal/core"
)

// Bubble is a bouncing ball that splits when hit by a harpoon.
type Bubble struct {
	X, Y   float64 // Center
	R      float64
	DX, DY float64

	// hitBy is the player whose harpoon overlaps the bubble this tick, nil if none.
	// Recomputed every collision pass.
	hitBy *Player
}

func newBubble(x, y, r, dx, dy float64) *Bubble {
	return &Bubble{X: x, Y: y, R: r, DX: dx, DY: dy}
}

// update integrates one tick of motion: reflect at the side bounds and at
// standing walls, reflect at the ground, otherwise fall under gravity.
func (b *Bubble) update(a *arena, walls []*Wall) {
	b.X += b.DX
	b.Y += b.DY

	if b.X-b.R <= a.left {
		b.X = a.left + b.R
		b.DX = math.Abs(b.DX)
	} else if b.X+b.R >= a.right {
		b.X = a.right - b.R
		b.DX = -math.Abs(b.DX)
	}

	for _, w := range walls {
		if w.H <= 0 || !core.CircleIntersectsRect(b.X, b.Y, b.R, w.X, w.Y, w.W, w.H) {
			continue
		}
		if b.X < w.X+w.W/2 {
			b.X = w.X - b.R
			b.DX = -math.Abs(b.DX)
		} else {
			b.X = w.X + w.W + b.R
			b.DX = math.Abs(b.DX)
		}
	}

	if b.Y-b.R < 0 {
		b.Y = b.R
		b.DY = math.Abs(b.DY)
	}

	if b.Y+b.R >= a.groundY {
		b.Y = a.groundY - b.R
		b.DY = -math.Abs(b.DY)
	} else {
		b.DY += a.gravity
	}
}

// split returns the two halves of the bubble, launched apart and upward from
// its current center.
func (b *Bubble) split(minDX, kick float64) (*Bubble, *Bubble) {
	dx := math.Abs(b.DX)
	if dx == 0 {
		dx = minDX
	}
	r := b.R / 2
	return newBubble(b.X, b.Y, r, -dx, kick), newBubble(b.X, b.Y, r, dx, kick)
}
