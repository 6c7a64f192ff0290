// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an axis-aligned box in screen cells, used by renderers.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// CircleIntersectsRect reports whether a circle touches an axis-aligned
// rectangle. The circle center is clamped into the rectangle to find the
// closest point; the shapes touch when that point is within r of the center.
func CircleIntersectsRect(cx, cy, r, rx, ry, rw, rh float64) bool {
	closestX := ClampF(cx, rx, rx+rw)
	closestY := ClampF(cy, ry, ry+rh)

	dx := cx - closestX
	dy := cy - closestY
	return math.Sqrt(dx*dx+dy*dy) <= r
}

// RectsOverlap is the world-space AABB test. Rectangles that only share an
// edge do not overlap, same as Rect.Intersects.
func RectsOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	if ax >= bx+bw || bx >= ax+aw {
		return false
	}
	if ay >= by+bh || by >= ay+ah {
		return false
	}
	return true
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
