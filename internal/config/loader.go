package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSwing loads the swing game configuration.
// Search order: customPath -> ~/.ropeswing/configs/swing.yaml -> ./configs/swing.yaml -> embedded default.
// The loaded config is always validated; an invalid config is a startup
// error, never a per-tick one.
func LoadSwing(customPath string) (SwingConfig, error) {
	cfg, err := loadSwingRaw(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func loadSwingRaw(customPath string) (SwingConfig, error) {
	var cfg SwingConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("swing.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/swing.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSwingYAML, &cfg); err != nil {
		return DefaultSwingConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ropeswing", "configs", filename)
}

// ApplySwingPreset modifies the config based on a difficulty preset.
func ApplySwingPreset(cfg *SwingConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// Validate checks numeric ranges before any simulation tick runs.
// Beyond basic sanity it enforces a traversability bound: anchors may never
// be generated further apart than the grab radius, so a run cannot dead-end
// on an unreachable gap.
func (c SwingConfig) Validate() error {
	p := c.Physics
	if p.Gravity <= 0 {
		return fmt.Errorf("physics.gravity must be positive, got %v", p.Gravity)
	}
	if p.Damping <= 0 || p.Damping > 1 {
		return fmt.Errorf("physics.damping must be in (0, 1], got %v", p.Damping)
	}

	g := c.Generation
	if g.DistanceMin <= 0 {
		return fmt.Errorf("generation.distance_min must be positive, got %v", g.DistanceMin)
	}
	if g.DistanceMax < g.DistanceMin {
		return fmt.Errorf("generation: inverted distance range [%v, %v]", g.DistanceMin, g.DistanceMax)
	}
	if g.MaxHeightDelta < 0 {
		return fmt.Errorf("generation.max_height_delta must not be negative, got %v", g.MaxHeightDelta)
	}
	if g.MaxY <= g.MinY {
		return fmt.Errorf("generation: inverted height band [%v, %v]", g.MinY, g.MaxY)
	}
	if g.PickupChance < 0 || g.PickupChance > 1 {
		return fmt.Errorf("generation.pickup_chance must be in [0, 1], got %v", g.PickupChance)
	}
	if g.ObstacleChance < 0 || g.ObstacleChance > 1 {
		return fmt.Errorf("generation.obstacle_chance must be in [0, 1], got %v", g.ObstacleChance)
	}
	if g.BatchSize < 1 {
		return fmt.Errorf("generation.batch_size must be at least 1, got %d", g.BatchSize)
	}
	if g.CleanupMargin < 0 {
		return fmt.Errorf("generation.cleanup_margin must not be negative, got %v", g.CleanupMargin)
	}
	if g.AnchorRadius <= 0 || g.PickupSize <= 0 || g.ObstacleSize <= 0 {
		return fmt.Errorf("generation: entity sizes must be positive")
	}

	gr := c.Grab
	if gr.Radius <= 0 {
		return fmt.Errorf("grab.radius must be positive, got %v", gr.Radius)
	}
	if gr.ForwardBias < 0 {
		return fmt.Errorf("grab.forward_bias must not be negative, got %v", gr.ForwardBias)
	}

	// Traversability bound: every generated gap must be grabbable.
	maxSpacing := g.DistanceMax + c.Difficulty.Scaling.SpacingGrowth
	if maxSpacing > gr.Radius {
		return fmt.Errorf("generation: max anchor spacing %v (distance_max + spacing_growth) exceeds grab radius %v", maxSpacing, gr.Radius)
	}
	if g.MaxHeightDelta > gr.Radius/2 {
		return fmt.Errorf("generation.max_height_delta %v exceeds half the grab radius %v", g.MaxHeightDelta, gr.Radius)
	}

	cam := c.Camera
	if cam.LeadFraction < 0 || cam.LeadFraction >= 1 {
		return fmt.Errorf("camera.lead_fraction must be in [0, 1), got %v", cam.LeadFraction)
	}
	if cam.FallMargin < 0 {
		return fmt.Errorf("camera.fall_margin must not be negative, got %v", cam.FallMargin)
	}

	if c.Player.Radius <= 0 {
		return fmt.Errorf("player.radius must be positive, got %v", c.Player.Radius)
	}

	return nil
}
