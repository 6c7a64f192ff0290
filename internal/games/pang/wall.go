package pang

// WallKind distinguishes the wall populations.
type WallKind int

const (
	WallDefault WallKind = iota // Play area borders
	WallLevel                   // Placed by the level layout
	WallCustom                  // Added during play
)

// String returns the name of the wall kind.
func (k WallKind) String() string {
	switch k {
	case WallDefault:
		return "default"
	case WallLevel:
		return "level"
	case WallCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Wall is a vertical barrier hanging from the ceiling. A disappearing wall
// retracts upward until its height reaches zero.
type Wall struct {
	X, Y, W, H   float64
	Kind         WallKind
	Disappearing bool
}

func newWall(x, width, height float64, kind WallKind) *Wall {
	return &Wall{X: x, W: width, H: height, Kind: kind}
}

func (w *Wall) startDisappearing() {
	w.Disappearing = true
}

// gone reports whether the wall has fully retracted.
func (w *Wall) gone() bool {
	return w.H <= 0
}

// blocksSpan reports whether the wall still reaches down into [top, bottom).
func (w *Wall) blocksSpan(top, bottom float64) bool {
	return w.H > 0 && w.Y < bottom && w.Y+w.H > top
}

func (w *Wall) update(shrink float64) {
	if !w.Disappearing || w.H <= 0 {
		return
	}
	w.H -= shrink
	if w.H < 0 {
		w.H = 0
	}
}
