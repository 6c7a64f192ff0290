// Package scene records Pang frames as plain shapes and status text so a
// graphics host can replay them. It has no graphics dependency.
package scene

import (
	"image/color"

	"github.com/vovakirdan/tui-pang/internal/core"
	"github.com/vovakirdan/tui-pang/internal/games/pang"
)

// ShapeKind tells how a Shape is drawn.
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
)

// Shape is one recorded draw call in world coordinates. Circles use X, Y as
// the center and W as the radius.
type Shape struct {
	Kind       ShapeKind
	X, Y, W, H float32
	Color      color.RGBA
}

var (
	groundColor     = color.RGBA{R: 92, G: 64, B: 51, A: 255}
	borderColor     = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	levelWallColor  = color.RGBA{R: 150, G: 120, B: 90, A: 255}
	customWallColor = color.RGBA{R: 200, G: 160, B: 60, A: 255}
	stickyColor     = color.RGBA{R: 255, G: 90, B: 200, A: 255}
)

var seatColors = [...]color.RGBA{
	{R: 80, G: 200, B: 255, A: 255},
	{R: 120, G: 255, B: 120, A: 255},
}

var backgrounds = map[string]color.RGBA{
	"city":   {R: 30, G: 36, B: 60, A: 255},
	"forest": {R: 20, G: 50, B: 30, A: 255},
	"desert": {R: 80, G: 60, B: 30, A: 255},
	"harbor": {R: 20, G: 45, B: 70, A: 255},
	"temple": {R: 55, G: 30, B: 50, A: 255},
}

var defaultBackground = color.RGBA{R: 24, G: 24, B: 32, A: 255}

func backgroundColor(id string) color.RGBA {
	if c, ok := backgrounds[id]; ok {
		return c
	}
	return defaultBackground
}

func seatColor(seat core.PlayerID) color.RGBA {
	if int(seat) < len(seatColors) && seat >= 0 {
		return seatColors[seat]
	}
	return seatColors[0]
}

func bubbleColor(r float64) color.RGBA {
	switch {
	case r >= 50:
		return color.RGBA{R: 230, G: 60, B: 60, A: 255}
	case r >= 30:
		return color.RGBA{R: 240, G: 150, B: 40, A: 255}
	case r >= 20:
		return color.RGBA{R: 240, G: 220, B: 60, A: 255}
	default:
		return color.RGBA{R: 120, G: 220, B: 240, A: 255}
	}
}

func powerUpColor(o pang.PowerUpOption) color.RGBA {
	switch o {
	case pang.PowerUpScore:
		return color.RGBA{R: 255, G: 215, B: 0, A: 255}
	case pang.PowerUpSticky:
		return stickyColor
	default:
		return color.RGBA{R: 200, G: 40, B: 40, A: 255}
	}
}

// DisplayList is a pang.Renderer that records one frame of draw calls for
// a graphics host to replay.
type DisplayList struct {
	Background color.RGBA
	Shapes     []Shape
	Over       *pang.Summary // Set once the match ended
}

func (d *DisplayList) rect(x, y, w, h float64, c color.RGBA) {
	d.Shapes = append(d.Shapes, Shape{Kind: ShapeRect, X: float32(x), Y: float32(y), W: float32(w), H: float32(h), Color: c})
}

func (d *DisplayList) DrawBackground(id string) {
	d.Shapes = d.Shapes[:0]
	d.Over = nil
	d.Background = backgroundColor(id)
}

func (d *DisplayList) DrawArrow(v pang.ArrowView) {
	c := seatColor(v.Seat)
	if v.Sticky {
		c = stickyColor
	}
	d.rect(v.X-v.Width/2, v.TipY, v.Width, v.BaseY-v.TipY, c)
}

func (d *DisplayList) DrawPlayer(v pang.PlayerView) {
	d.rect(v.X, v.Y, v.W, v.H, seatColor(v.Seat))
}

func (d *DisplayList) DrawPowerUp(v pang.PowerUpView) {
	d.rect(v.X-v.Size/2, v.Y-v.Size/2, v.Size, v.Size, powerUpColor(v.Option))
}

func (d *DisplayList) DrawBubble(v pang.BubbleView) {
	d.Shapes = append(d.Shapes, Shape{Kind: ShapeCircle, X: float32(v.X), Y: float32(v.Y), W: float32(v.R), Color: bubbleColor(v.R)})
}

func (d *DisplayList) DrawDefaultWall(v pang.WallView) {
	d.rect(v.X, v.Y, v.W, v.H, borderColor)
}

func (d *DisplayList) DrawGround(v pang.GroundView) {
	d.rect(0, v.Y, v.Width, v.Height, groundColor)
}

func (d *DisplayList) DrawExtraWall(v pang.WallView) {
	c := levelWallColor
	if v.Kind == pang.WallCustom {
		c = customWallColor
	}
	if v.Disappearing {
		c.A = 160
	}
	d.rect(v.X, v.Y, v.W, v.H, c)
}

// DrawGameOver keeps the last frame and adds the summary overlay.
func (d *DisplayList) DrawGameOver(s pang.Summary) {
	d.Over = &s
}
