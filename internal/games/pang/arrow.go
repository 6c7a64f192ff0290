package pang

import "github.com/vovakirdan/tui-pang/internal/core"

// Arrow is a player's harpoon. It is a vertical line from its tip down to
// the ground, climbing while active.
type Arrow struct {
	X        float64 // Center of the harpoon line
	TipY     float64
	Active   bool // Travelling and drawn
	Hittable bool // Can still pop a bubble

	hold  int // Ticks left pinned at the ceiling
	rearm int // Ticks until a sticky harpoon can pop again
}

func (a *Arrow) fire(x, tipY float64) {
	*a = Arrow{X: x, TipY: tipY, Active: true, Hittable: true}
}

func (a *Arrow) deactivate() {
	a.Active = false
	a.Hittable = false
	a.hold = 0
	a.rearm = 0
}

// overlaps reports whether the harpoon line touches the circle.
// An inactive harpoon touches nothing.
func (a *Arrow) overlaps(b *Bubble, width, groundY float64) bool {
	if !a.Active {
		return false
	}
	return core.CircleIntersectsRect(b.X, b.Y, b.R, a.X-width/2, a.TipY, width, groundY-a.TipY)
}

// consume spends the harpoon after a pop. A sticky harpoon stays up but
// cannot pop again until it re-arms.
func (a *Arrow) consume(sticky bool, rearmTicks int) {
	if !sticky {
		a.deactivate()
		return
	}
	a.Hittable = false
	a.rearm = rearmTicks
	if a.rearm <= 0 {
		a.Hittable = true
	}
}

func (a *Arrow) update(speed float64, sticky bool, holdTicks int) {
	if !a.Active {
		return
	}

	if a.rearm > 0 {
		a.rearm--
		if a.rearm == 0 {
			a.Hittable = true
		}
	}

	if a.TipY > 0 {
		a.TipY -= speed
		if a.TipY > 0 {
			return
		}
		a.TipY = 0
		if !sticky || holdTicks <= 0 {
			a.deactivate()
			return
		}
		a.hold = holdTicks
		return
	}

	a.hold--
	if a.hold <= 0 {
		a.deactivate()
	}
}
