package pang

import "github.com/vovakirdan/tui-pang/internal/config"

// arena holds the shared boundaries entities read while updating.
type arena struct {
	width   float64
	height  float64
	left    float64 // Inner edge of the left border wall
	right   float64 // Inner edge of the right border wall
	groundY float64
	gravity float64
}

func newArena(cfg config.PangConfig) *arena {
	return &arena{
		width:   cfg.World.Width,
		height:  cfg.World.Height,
		left:    cfg.World.WallWidth,
		right:   cfg.World.Width - cfg.World.WallWidth,
		groundY: cfg.World.GroundY(),
		gravity: cfg.Physics.Gravity,
	}
}

// borders builds the two default walls framing the play area.
func (a *arena) borders(wallWidth float64) []*Wall {
	return []*Wall{
		newWall(0, wallWidth, a.groundY, WallDefault),
		newWall(a.width-wallWidth, wallWidth, a.groundY, WallDefault),
	}
}
