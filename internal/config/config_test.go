package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultSwingConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config failed validation: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	// The embedded YAML is the default loading path; it must validate too.
	cfg, err := LoadSwing("")
	if err != nil {
		t.Fatalf("Loading embedded defaults failed: %v", err)
	}
	if cfg.Physics.Gravity != DefaultSwingConfig().Physics.Gravity {
		t.Errorf("Embedded gravity %v differs from hardcoded default %v",
			cfg.Physics.Gravity, DefaultSwingConfig().Physics.Gravity)
	}
	if cfg.Generation.DistanceMax != DefaultSwingConfig().Generation.DistanceMax {
		t.Errorf("Embedded distance_max %v differs from hardcoded default %v",
			cfg.Generation.DistanceMax, DefaultSwingConfig().Generation.DistanceMax)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SwingConfig)
		substr string
	}{
		{"zero gravity", func(c *SwingConfig) { c.Physics.Gravity = 0 }, "gravity"},
		{"negative gravity", func(c *SwingConfig) { c.Physics.Gravity = -1 }, "gravity"},
		{"zero damping", func(c *SwingConfig) { c.Physics.Damping = 0 }, "damping"},
		{"damping above one", func(c *SwingConfig) { c.Physics.Damping = 1.5 }, "damping"},
		{"zero distance min", func(c *SwingConfig) { c.Generation.DistanceMin = 0 }, "distance_min"},
		{"inverted distances", func(c *SwingConfig) { c.Generation.DistanceMax = 10 }, "distance"},
		{"inverted height band", func(c *SwingConfig) { c.Generation.MaxY = c.Generation.MinY }, "height band"},
		{"pickup chance above one", func(c *SwingConfig) { c.Generation.PickupChance = 1.5 }, "pickup_chance"},
		{"negative obstacle chance", func(c *SwingConfig) { c.Generation.ObstacleChance = -0.1 }, "obstacle_chance"},
		{"zero batch", func(c *SwingConfig) { c.Generation.BatchSize = 0 }, "batch_size"},
		{"zero grab radius", func(c *SwingConfig) { c.Grab.Radius = 0 }, "radius"},
		{"spacing exceeds reach", func(c *SwingConfig) { c.Generation.DistanceMax = 400 }, "grab radius"},
		{"spacing growth exceeds reach", func(c *SwingConfig) { c.Difficulty.Scaling.SpacingGrowth = 200 }, "grab radius"},
		{"height delta exceeds reach", func(c *SwingConfig) { c.Generation.MaxHeightDelta = 200 }, "max_height_delta"},
		{"lead fraction too big", func(c *SwingConfig) { c.Camera.LeadFraction = 1 }, "lead_fraction"},
		{"negative fall margin", func(c *SwingConfig) { c.Camera.FallMargin = -1 }, "fall_margin"},
		{"zero player radius", func(c *SwingConfig) { c.Player.Radius = 0 }, "player.radius"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSwingConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tc.substr) {
				t.Errorf("Error %q does not mention %q", err.Error(), tc.substr)
			}
		})
	}
}

func TestLoadSwingCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "swing.yaml")

	yaml := `
physics:
  gravity: 0.5
  damping: 0.95
  release_impulse_x: 1.0
  release_impulse_y: -3.0
generation:
  distance_min: 100
  distance_max: 200
  max_height_delta: 50
  min_y: 50
  max_y: 300
  pickup_chance: 0.4
  obstacle_chance: 0.2
  batch_size: 5
  cleanup_margin: 400
  pickup_lift: 40
  obstacle_drop: 40
  anchor_radius: 6
  pickup_size: 16
  obstacle_size: 24
grab:
  radius: 250
  forward_bias: 30
camera:
  lead_fraction: 0.25
  fall_margin: 150
player:
  start_x: 80
  start_y: 150
  start_vx: 3
  start_vy: 0
  radius: 12
difficulty:
  enabled: false
  initial_level: 0
  progression:
    type: none
    max_at: 10000
  scaling:
    obstacle_boost: 0.1
    spacing_growth: 20
    pickup_drop: 0.1
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("Writing test config: %v", err)
	}

	cfg, err := LoadSwing(path)
	if err != nil {
		t.Fatalf("LoadSwing failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("Gravity %v, want 0.5", cfg.Physics.Gravity)
	}
	if cfg.Grab.Radius != 250 {
		t.Errorf("Grab radius %v, want 250", cfg.Grab.Radius)
	}
	if cfg.Difficulty.Enabled {
		t.Error("Difficulty should be disabled")
	}
}

func TestLoadSwingInvalidConfigFailsFast(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")

	// Anchors can be generated beyond grab reach: must fail at load time.
	yaml := strings.Replace(string(GetDefaultYAML()), "distance_max: 260", "distance_max: 500", 1)
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("Writing test config: %v", err)
	}

	if _, err := LoadSwing(path); err == nil {
		t.Error("Expected an error for untraversable spacing")
	}
}

func TestLoadSwingMissingCustomPath(t *testing.T) {
	if _, err := LoadSwing("/nonexistent/path/swing.yaml"); err == nil {
		t.Error("Expected an error for a missing custom path")
	}
}

func TestApplySwingPreset(t *testing.T) {
	cfg := DefaultSwingConfig()
	ApplySwingPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled {
		t.Error("Hard preset should keep progression enabled")
	}
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("Hard preset initial level %v, want 0.7", cfg.Difficulty.InitialLevel)
	}

	cfg = DefaultSwingConfig()
	ApplySwingPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("Fixed preset should disable progression")
	}

	cfg = DefaultSwingConfig()
	before := cfg.Difficulty
	ApplySwingPreset(&cfg, "")
	if cfg.Difficulty != before {
		t.Error("Empty preset should not change the config")
	}
}

func TestDifficultyLevelProgression(t *testing.T) {
	cfg := DefaultSwingConfig().Difficulty // score-based, max at 20000
	d := NewDifficultyManager(cfg)

	if lvl := d.Level(0, 0); lvl != 0 {
		t.Errorf("Level at score 0 is %v, want 0", lvl)
	}
	if lvl := d.Level(10000, 0); lvl != 0.5 {
		t.Errorf("Level at half score is %v, want 0.5", lvl)
	}
	if lvl := d.Level(20000, 0); lvl != 1 {
		t.Errorf("Level at max score is %v, want 1", lvl)
	}
	if lvl := d.Level(99999999, 0); lvl != 1 {
		t.Errorf("Level past max is %v, want 1", lvl)
	}
}

func TestDifficultyDisabledStaysAtInitial(t *testing.T) {
	cfg := DefaultSwingConfig().Difficulty
	cfg.Enabled = false
	cfg.InitialLevel = 0.4
	d := NewDifficultyManager(cfg)

	if lvl := d.Level(999999, 0); lvl != 0.4 {
		t.Errorf("Disabled progression level %v, want 0.4", lvl)
	}
}

func TestDifficultyScaling(t *testing.T) {
	cfg := DefaultSwingConfig().Difficulty
	d := NewDifficultyManager(cfg)

	// At level 0 everything stays at the base value.
	if got := d.ObstacleChance(0.3, 0, 0); got != 0.3 {
		t.Errorf("Obstacle chance at level 0 is %v, want 0.3", got)
	}
	if got := d.PickupChance(0.5, 0, 0); got != 0.5 {
		t.Errorf("Pickup chance at level 0 is %v, want 0.5", got)
	}

	// At max level the full scaling applies.
	maxScore := cfg.Progression.MaxAt
	if got := d.ObstacleChance(0.3, maxScore, 0); got != 0.3+cfg.Scaling.ObstacleBoost {
		t.Errorf("Obstacle chance at max level is %v", got)
	}
	if got := d.PickupChance(0.5, maxScore, 0); got != 0.5-cfg.Scaling.PickupDrop {
		t.Errorf("Pickup chance at max level is %v", got)
	}

	// Spacing never grows past the cap.
	if got := d.DistanceMax(260, 300, maxScore, 0); got != 300 {
		t.Errorf("Distance max at max level is %v, want capped 300", got)
	}
}
