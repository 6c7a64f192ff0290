// Package levels defines the level descriptor format, the built-in level
// table and loading of level files authored outside the game.
package levels

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-pang/internal/config"
)

// BubbleSpec places one bubble of a level.
type BubbleSpec struct {
	CenterX float64 `yaml:"centerX" json:"centerX" toml:"centerX"`
	CenterY float64 `yaml:"centerY" json:"centerY" toml:"centerY"`
	Radius  float64 `yaml:"radius" json:"radius" toml:"radius"`
}

// Descriptor is the declarative description of a level. Field keys match the
// format emitted by level authoring tools.
type Descriptor struct {
	BackgroundID  string       `yaml:"backgroundId" json:"backgroundId" toml:"backgroundId"`
	Level         int          `yaml:"level" json:"level" toml:"level"`
	Bubbles       []BubbleSpec `yaml:"Bubbles" json:"Bubbles" toml:"Bubbles"`
	WallsPosX     []float64    `yaml:"wallsPosX" json:"wallsPosX" toml:"wallsPosX"`
	IsWallPresent bool         `yaml:"isWallPresent" json:"isWallPresent" toml:"isWallPresent"`
}

// Clone returns a deep copy so callers can keep the table pristine.
func (d Descriptor) Clone() Descriptor {
	out := d
	out.Bubbles = append([]BubbleSpec(nil), d.Bubbles...)
	out.WallsPosX = append([]float64(nil), d.WallsPosX...)
	return out
}

// Validate checks that the level can be played in the configured world.
func (d Descriptor) Validate(cfg config.PangConfig) error {
	var errs []error
	if len(d.Bubbles) == 0 {
		errs = append(errs, errors.New("level has no bubbles"))
	}
	if d.Level <= 0 {
		errs = append(errs, fmt.Errorf("level number %d must be positive", d.Level))
	}

	left := cfg.World.WallWidth
	right := cfg.World.Width - cfg.World.WallWidth
	ground := cfg.World.GroundY()

	for i, b := range d.Bubbles {
		if b.Radius < cfg.Bubbles.MinRadius || b.Radius > cfg.Bubbles.MaxRadius {
			errs = append(errs, fmt.Errorf("bubble %d: radius %.1f outside [%.0f, %.0f]",
				i, b.Radius, cfg.Bubbles.MinRadius, cfg.Bubbles.MaxRadius))
			continue
		}
		if b.CenterX-b.Radius < left || b.CenterX+b.Radius > right {
			errs = append(errs, fmt.Errorf("bubble %d: x %.1f outside the play area", i, b.CenterX))
		}
		if b.CenterY-b.Radius < 0 || b.CenterY+b.Radius > ground {
			errs = append(errs, fmt.Errorf("bubble %d: y %.1f outside the play area", i, b.CenterY))
		}
	}

	prev := left
	for i, x := range d.WallsPosX {
		if x <= left || x+cfg.World.WallWidth >= right {
			errs = append(errs, fmt.Errorf("wall %d: x %.1f outside the play area", i, x))
		}
		if i > 0 && x <= prev {
			errs = append(errs, fmt.Errorf("wall %d: walls must be ordered left to right", i))
		}
		prev = x
	}
	return errors.Join(errs...)
}

// Builtin returns a fresh copy of the built-in level table.
func Builtin() []Descriptor {
	out := make([]Descriptor, len(builtin))
	for i, d := range builtin {
		out[i] = d.Clone()
	}
	return out
}

var builtin = []Descriptor{
	{
		BackgroundID: "city",
		Level:        1,
		Bubbles:      []BubbleSpec{{CenterX: 150, CenterY: 150, Radius: 40}},
	},
	{
		BackgroundID: "forest",
		Level:        2,
		Bubbles: []BubbleSpec{
			{CenterX: 200, CenterY: 150, Radius: 30},
			{CenterX: 600, CenterY: 150, Radius: 30},
		},
	},
	{
		BackgroundID:  "desert",
		Level:         3,
		Bubbles:       []BubbleSpec{{CenterX: 200, CenterY: 150, Radius: 40}, {CenterX: 600, CenterY: 150, Radius: 40}},
		WallsPosX:     []float64{390},
		IsWallPresent: true,
	},
	{
		BackgroundID: "harbor",
		Level:        4,
		Bubbles:      []BubbleSpec{{CenterX: 150, CenterY: 120, Radius: 60}},
	},
	{
		BackgroundID: "temple",
		Level:        5,
		Bubbles: []BubbleSpec{
			{CenterX: 140, CenterY: 150, Radius: 30},
			{CenterX: 400, CenterY: 150, Radius: 30},
			{CenterX: 660, CenterY: 150, Radius: 40},
		},
		WallsPosX:     []float64{270, 530},
		IsWallPresent: true,
	},
}
