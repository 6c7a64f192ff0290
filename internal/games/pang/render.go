package pang

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-pang/internal/core"
)

// Visual characters for terminal rendering
const (
	BubbleChar      = 'O'
	ArrowChar       = '|'
	ArrowTipChar    = '^'
	PlayerChar      = '█'
	BorderWallChar  = '▒'
	ExtraWallChar   = '#'
	GroundChar      = '▀'
	hudRows         = 1
	minScreenWidth  = 40
	minScreenHeight = 16
)

// seatColors gives each seat its own color.
var seatColors = []core.Color{core.ColorBrightCyan, core.ColorBrightMagenta}

func seatColor(seat core.PlayerID) core.Color {
	if int(seat) < len(seatColors) {
		return seatColors[seat]
	}
	return core.ColorWhite
}

// screenRenderer draws world entities into a cell buffer. The top hudRows
// rows are left to the HUD.
type screenRenderer struct {
	dst    *core.Screen
	worldW float64
	worldH float64
}

func newScreenRenderer(dst *core.Screen, worldW, worldH float64) *screenRenderer {
	return &screenRenderer{dst: dst, worldW: worldW, worldH: worldH}
}

func (r *screenRenderer) rows() int {
	return r.dst.Height() - hudRows
}

func (r *screenRenderer) col(x float64) int {
	return int(math.Floor(x * float64(r.dst.Width()) / r.worldW))
}

func (r *screenRenderer) row(y float64) int {
	return hudRows + int(math.Floor(y*float64(r.rows())/r.worldH))
}

// cellRect maps a world rectangle to cells, covering at least one cell.
func (r *screenRenderer) cellRect(x, y, w, h float64) core.Rect {
	x0, y0 := r.col(x), r.row(y)
	x1, y1 := r.col(x+w), r.row(y+h)
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

func (r *screenRenderer) DrawBackground(string) {
	r.dst.Clear()
}

func (r *screenRenderer) DrawArrow(v ArrowView) {
	x := r.col(v.X)
	top := r.row(v.TipY)
	bottom := r.row(v.BaseY)
	c := seatColor(v.Seat)
	r.dst.DrawVLine(x, top, bottom-top, ArrowChar, c)
	tip := ArrowTipChar
	if v.Sticky {
		tip = 'T'
	}
	r.dst.SetColored(x, top, tip, c)
}

func (r *screenRenderer) DrawPlayer(v PlayerView) {
	rect := r.cellRect(v.X, v.Y, v.W, v.H)
	c := seatColor(v.Seat)
	r.dst.DrawRect(rect, PlayerChar, c)
	r.dst.SetColored(rect.X+rect.W/2, rect.Y, rune('1'+int(v.Seat)), core.ColorBrightWhite)
}

func (r *screenRenderer) DrawPowerUp(v PowerUpView) {
	glyph, c := '?', core.ColorWhite
	switch v.Option {
	case PowerUpScore:
		glyph, c = '$', core.ColorBrightYellow
	case PowerUpSticky:
		glyph, c = 'S', core.ColorBrightGreen
	case PowerUpPenalty:
		glyph, c = '!', core.ColorBrightRed
	}
	r.dst.SetColored(r.col(v.X), r.row(v.Y), glyph, c)
}

// DrawBubble fills every cell whose center lies inside the circle; the center
// cell is always drawn so small bubbles stay visible.
func (r *screenRenderer) DrawBubble(v BubbleView) {
	c := bubbleColor(v.R)
	cw := r.worldW / float64(r.dst.Width())
	ch := r.worldH / float64(r.rows())
	rect := r.cellRect(v.X-v.R, v.Y-v.R, 2*v.R, 2*v.R)
	for y := rect.Y; y <= rect.Bottom(); y++ {
		wy := (float64(y-hudRows) + 0.5) * ch
		for x := rect.X; x <= rect.Right(); x++ {
			wx := (float64(x) + 0.5) * cw
			if math.Hypot(wx-v.X, wy-v.Y) <= v.R {
				r.dst.SetColored(x, y, BubbleChar, c)
			}
		}
	}
	r.dst.SetColored(r.col(v.X), r.row(v.Y), BubbleChar, c)
}

func bubbleColor(radius float64) core.Color {
	switch {
	case radius >= 40:
		return core.ColorRed
	case radius >= 20:
		return core.ColorOrange
	default:
		return core.ColorYellow
	}
}

func (r *screenRenderer) DrawDefaultWall(v WallView) {
	r.dst.DrawRect(r.cellRect(v.X, v.Y, v.W, v.H), BorderWallChar, core.ColorGray)
}

func (r *screenRenderer) DrawGround(v GroundView) {
	y := r.row(v.Y)
	for ; y < r.dst.Height(); y++ {
		r.dst.DrawHLine(0, y, r.dst.Width(), GroundChar, core.ColorGreen)
	}
}

func (r *screenRenderer) DrawExtraWall(v WallView) {
	c := core.ColorBlue
	if v.Kind == WallCustom {
		c = core.ColorCyan
	}
	if v.Disappearing {
		c = core.ColorGray
	}
	r.dst.DrawRect(r.cellRect(v.X, v.Y, v.W, v.H), ExtraWallChar, c)
}

func (r *screenRenderer) DrawGameOver(s Summary) {
	h := r.dst.Height()
	box := core.NewRect(r.dst.Width()/2-14, h/2-4, 28, 8)
	r.dst.DrawRect(box, ' ', core.ColorDefault)
	r.dst.DrawBox(box)

	title := "GAME OVER"
	if s.AllCleared {
		title = "ALL LEVELS CLEARED"
	}
	r.dst.DrawTextCentered(box.Y+1, title)
	r.dst.DrawTextCentered(box.Y+2, s.Reason.String())
	for i, score := range s.Scores {
		r.dst.DrawTextCentered(box.Y+3+i, fmt.Sprintf("P%d score: %d", i+1, score))
	}
	r.dst.DrawTextCentered(box.Y+6, "R restart  Q quit")
}

// hud keeps the latest UI sink values and draws them on the top row.
type hud struct {
	scores    []int
	lives     []int
	level     int
	remaining int64
}

func newHUD(seats int) *hud {
	return &hud{scores: make([]int, seats), lives: make([]int, seats)}
}

func (h *hud) UpdateScore(player core.PlayerID, score int) {
	if int(player) < len(h.scores) {
		h.scores[player] = score
	}
}

func (h *hud) UpdateLives(player core.PlayerID, lives int) {
	if int(player) < len(h.lives) {
		h.lives[player] = lives
	}
}

func (h *hud) UpdateLevel(level int)         { h.level = level }
func (h *hud) UpdateTimer(msRemaining int64) { h.remaining = msRemaining }

func (h *hud) draw(dst *core.Screen) {
	x := 1
	for i := range h.scores {
		text := fmt.Sprintf("P%d %s %04d", i+1, hearts(h.lives[i]), h.scores[i])
		dst.DrawTextColored(x, 0, text, seatColor(core.PlayerID(i)))
		x += len([]rune(text)) + 3
	}

	level := fmt.Sprintf("Level %d", h.level)
	dst.DrawTextColored(x, 0, level, core.ColorBrightWhite)

	timeText := fmt.Sprintf("Time %4.1f", float64(h.remaining)/1000)
	c := core.ColorBrightWhite
	if h.remaining < 10000 {
		c = core.ColorBrightRed
	}
	dst.DrawTextColored(dst.Width()-len(timeText)-1, 0, timeText, c)
}

func hearts(n int) string {
	if n <= 0 {
		return "---"
	}
	out := make([]rune, 0, n)
	for range min(n, 5) {
		out = append(out, '♥')
	}
	return string(out)
}
