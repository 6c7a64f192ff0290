package config

import (
	_ "embed"
)

//go:embed defaults/pang.yaml
var defaultPangYAML []byte

// DefaultPangConfig returns the default Pang configuration.
// It mirrors defaults/pang.yaml and is used when the embedded file cannot be parsed.
func DefaultPangConfig() PangConfig {
	return PangConfig{
		World: PangWorld{
			Width:        800,
			Height:       480,
			GroundHeight: 60,
			WallWidth:    20,
		},
		Physics: PangPhysics{
			Gravity:  0.1,
			BubbleDX: 1.5,
			BubbleDY: 0.5,
		},
		Bubbles: PangBubbles{
			MinRadius:      10,
			MaxRadius:      60,
			MinSplitRadius: 20,
			SplitKick:      -3,
		},
		Arrow: PangArrow{
			Speed:            8,
			Width:            4,
			StickyHoldTicks:  90,
			StickyRearmTicks: 15,
		},
		Player: PangPlayer{
			Width:  31,
			Height: 55,
			Speed:  3,
			Lives:  3,
		},
		Timer: PangTimer{
			LimitMS:   40000,
			PenaltyMS: 3000,
		},
		PowerUps: PangPowerUps{
			Size:       30,
			FallSpeed:  2,
			ScoreBonus: 1,
		},
		Walls: PangWalls{
			ShrinkSpeed: 6,
		},
	}
}
