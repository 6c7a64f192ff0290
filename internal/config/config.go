// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

// PangConfig contains all tunables of the Pang simulation.
type PangConfig struct {
	World    PangWorld    `yaml:"world"`
	Physics  PangPhysics  `yaml:"physics"`
	Bubbles  PangBubbles  `yaml:"bubbles"`
	Arrow    PangArrow    `yaml:"arrow"`
	Player   PangPlayer   `yaml:"player"`
	Timer    PangTimer    `yaml:"timer"`
	PowerUps PangPowerUps `yaml:"powerups"`
	Walls    PangWalls    `yaml:"walls"`
}

// PangWorld defines the play field in world units.
type PangWorld struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
	WallWidth    float64 `yaml:"wall_width"` // Width of border and level walls
}

// GroundY returns the y coordinate of the ground line.
func (w PangWorld) GroundY() float64 {
	return w.Height - w.GroundHeight
}

// PangPhysics defines bubble kinematics.
type PangPhysics struct {
	Gravity  float64 `yaml:"gravity"`
	BubbleDX float64 `yaml:"bubble_dx"` // Horizontal speed of level bubbles
	BubbleDY float64 `yaml:"bubble_dy"` // Initial vertical speed of level bubbles
}

// PangBubbles defines bubble size limits and split behaviour.
type PangBubbles struct {
	MinRadius      float64 `yaml:"min_radius"`
	MaxRadius      float64 `yaml:"max_radius"`
	MinSplitRadius float64 `yaml:"min_split_radius"` // Smaller bubbles pop without children
	SplitKick      float64 `yaml:"split_kick"`       // Vertical speed given to split children
}

// PangArrow defines the harpoon.
type PangArrow struct {
	Speed            float64 `yaml:"speed"`
	Width            float64 `yaml:"width"`
	StickyHoldTicks  int     `yaml:"sticky_hold_ticks"`  // Ticks a sticky harpoon stays at the ceiling
	StickyRearmTicks int     `yaml:"sticky_rearm_ticks"` // Ticks before a sticky harpoon can pop again
}

// PangPlayer defines player size, speed and lives.
type PangPlayer struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Lives  int     `yaml:"lives"`
}

// PangTimer defines the per-level countdown.
type PangTimer struct {
	LimitMS   int64 `yaml:"limit_ms"`
	PenaltyMS int64 `yaml:"penalty_ms"` // Time taken by the penalty power-up
}

// PangPowerUps defines the dropped power-ups.
type PangPowerUps struct {
	Size       float64 `yaml:"size"`
	FallSpeed  float64 `yaml:"fall_speed"`
	ScoreBonus int     `yaml:"score_bonus"`
}

// PangWalls defines how level walls retreat.
type PangWalls struct {
	ShrinkSpeed float64 `yaml:"shrink_speed"` // Height lost per tick while disappearing
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
