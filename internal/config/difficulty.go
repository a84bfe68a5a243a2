package config

import "math"

// DifficultyManager calculates dynamic generation parameters based on
// score or elapsed ticks.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// ObstacleChance returns the current obstacle probability.
// Chance rises toward base + obstacle_boost as difficulty increases.
func (d *DifficultyManager) ObstacleChance(base float64, score, ticks int) float64 {
	level := d.Level(score, ticks)
	return clampF(base+level*d.cfg.Scaling.ObstacleBoost, 0.0, 1.0)
}

// PickupChance returns the current pickup probability.
// Chance falls toward base - pickup_drop as difficulty increases.
func (d *DifficultyManager) PickupChance(base float64, score, ticks int) float64 {
	level := d.Level(score, ticks)
	return clampF(base-level*d.cfg.Scaling.PickupDrop, 0.0, 1.0)
}

// DistanceMax returns the current upper bound for anchor spacing.
// Spacing grows toward base + spacing_growth but never past the cap,
// which callers set to the grab radius so gaps stay traversable.
func (d *DifficultyManager) DistanceMax(base, cap float64, score, ticks int) float64 {
	level := d.Level(score, ticks)
	return clampF(base+level*d.cfg.Scaling.SpacingGrowth, base, cap)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
