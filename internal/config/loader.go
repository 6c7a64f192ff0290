package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPang loads Pang configuration.
// Search order: customPath -> ~/.arcade/configs/pang.yaml -> ./configs/pang.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names.
func LoadPang(customPath string) (PangConfig, error) {
	cfg := DefaultPangConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("pang.yaml"), filepath.Join("configs", "pang.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultPangConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil && candidate.Validate() == nil {
			return candidate, nil
		}
	}

	if err := yaml.Unmarshal(defaultPangYAML, &cfg); err != nil {
		return DefaultPangConfig(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate rejects configurations the simulation cannot run with.
func (c PangConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, errors.New("world size must be positive"))
	}
	if c.World.GroundHeight < 0 || c.World.GroundHeight >= c.World.Height {
		errs = append(errs, errors.New("ground_height must be within the world height"))
	}
	if 2*c.World.WallWidth+c.Player.Width >= c.World.Width {
		errs = append(errs, errors.New("world too narrow for border walls and a player"))
	}
	if c.Bubbles.MinRadius <= 0 || c.Bubbles.MaxRadius < c.Bubbles.MinRadius {
		errs = append(errs, errors.New("bubble radius range is invalid"))
	}
	// Children have half the parent radius and must not go below min_radius.
	if c.Bubbles.MinSplitRadius < 2*c.Bubbles.MinRadius {
		errs = append(errs, errors.New("min_split_radius must be at least twice min_radius"))
	}
	if c.Arrow.Speed <= 0 || c.Arrow.Width <= 0 {
		errs = append(errs, errors.New("arrow speed and width must be positive"))
	}
	if c.Player.Lives <= 0 {
		errs = append(errs, errors.New("player lives must be positive"))
	}
	if c.Player.Speed <= 0 {
		errs = append(errs, errors.New("player speed must be positive"))
	}
	if c.PowerUps.Size <= 0 || c.PowerUps.FallSpeed <= 0 {
		errs = append(errs, errors.New("powerups size and fall_speed must be positive"))
	}
	if c.Walls.ShrinkSpeed <= 0 {
		errs = append(errs, errors.New("walls shrink_speed must be positive"))
	}
	if c.Timer.LimitMS <= 0 {
		errs = append(errs, errors.New("timer limit_ms must be positive"))
	}
	return errors.Join(errs...)
}

// ApplyPangPreset modifies the config based on a difficulty preset.
func ApplyPangPreset(cfg *PangConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Timer.LimitMS = 60000
		cfg.Physics.Gravity = 0.08
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Timer.LimitMS = 30000
		cfg.Physics.Gravity = 0.12
		cfg.Timer.PenaltyMS = 5000
	}
}
