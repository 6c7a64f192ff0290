package scene

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pang/internal/core"
	"github.com/vovakirdan/tui-pang/internal/games/pang"
)

// HUD is a pang.UISink keeping the values of the status line.
type HUD struct {
	scores    []int
	lives     []int
	level     int
	remaining int64
}

// NewHUD creates a HUD for the given number of seats.
func NewHUD(seats int) *HUD {
	return &HUD{scores: make([]int, seats), lives: make([]int, seats)}
}

func (h *HUD) UpdateScore(player core.PlayerID, score int) {
	if int(player) < len(h.scores) {
		h.scores[player] = score
	}
}

func (h *HUD) UpdateLives(player core.PlayerID, lives int) {
	if int(player) < len(h.lives) {
		h.lives[player] = lives
	}
}

func (h *HUD) UpdateLevel(level int)         { h.level = level }
func (h *HUD) UpdateTimer(msRemaining int64) { h.remaining = msRemaining }

// Line formats the status row.
func (h *HUD) Line() string {
	parts := make([]string, 0, len(h.scores)+2)
	for i := range h.scores {
		parts = append(parts, fmt.Sprintf("P%d lives %d score %d", i+1, h.lives[i], h.scores[i]))
	}
	parts = append(parts, fmt.Sprintf("level %d", h.level), fmt.Sprintf("time %.1f", float64(h.remaining)/1000))
	return strings.Join(parts, "   ")
}

// SummaryLines formats the game over overlay.
func SummaryLines(s pang.Summary) []string {
	title := "GAME OVER"
	if s.AllCleared {
		title = "ALL LEVELS CLEARED"
	}
	lines := []string{title}
	if s.Reason != pang.EndNone {
		lines = append(lines, s.Reason.String())
	}
	lines = append(lines, fmt.Sprintf("reached level %d", s.Level))
	for i, score := range s.Scores {
		lines = append(lines, fmt.Sprintf("P%d: %d", i+1, score))
	}
	return append(lines, "", "R restart   Esc quit")
}
