// Package config provides YAML-based game configuration loading and
// difficulty management for the swing platform.
package config

// SwingConfig contains all configuration for the swing game.
type SwingConfig struct {
	Physics    SwingPhysics     `yaml:"physics"`
	Generation SwingGeneration  `yaml:"generation"`
	Grab       SwingGrab        `yaml:"grab"`
	Camera     SwingCamera      `yaml:"camera"`
	Player     SwingPlayer      `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SwingPhysics defines the per-tick integration parameters.
// Gravity is a fixed velocity increment per tick, not a continuous-time
// integrator; the swing itself is an arcade approximation, not a pendulum.
type SwingPhysics struct {
	Gravity         float64 `yaml:"gravity"`           // Added to vel.y every tick
	Damping         float64 `yaml:"damping"`           // Velocity multiplier while tethered (<1)
	ReleaseImpulseX float64 `yaml:"release_impulse_x"` // Forward kick applied on release
	ReleaseImpulseY float64 `yaml:"release_impulse_y"` // Upward kick applied on release (negative = up)
}

// SwingGeneration defines the procedural world generation parameters.
type SwingGeneration struct {
	DistanceMin    float64 `yaml:"distance_min"`    // Min horizontal gap between anchors
	DistanceMax    float64 `yaml:"distance_max"`    // Max horizontal gap between anchors
	MaxHeightDelta float64 `yaml:"max_height_delta"`
	MinY           float64 `yaml:"min_y"` // Anchor height band
	MaxY           float64 `yaml:"max_y"`
	PickupChance   float64 `yaml:"pickup_chance"`   // Probability of a pickup per gap
	ObstacleChance float64 `yaml:"obstacle_chance"` // Probability of an obstacle per gap
	BatchSize      int     `yaml:"batch_size"`      // Anchors appended per generation call
	CleanupMargin  float64 `yaml:"cleanup_margin"`  // Eviction distance behind the camera
	PickupLift     float64 `yaml:"pickup_lift"`     // Upward offset of pickups from the midpoint
	ObstacleDrop   float64 `yaml:"obstacle_drop"`   // Downward offset of obstacles from the midpoint
	AnchorRadius   float64 `yaml:"anchor_radius"`
	PickupSize     float64 `yaml:"pickup_size"`   // Pickup square edge
	ObstacleSize   float64 `yaml:"obstacle_size"` // Obstacle square edge
}

// SwingGrab defines the tether grab query parameters.
type SwingGrab struct {
	Radius      float64 `yaml:"radius"`       // Max distance from player to a grabbable anchor
	ForwardBias float64 `yaml:"forward_bias"` // Anchors further than this behind the player are ineligible
}

// SwingCamera defines the camera follow parameters.
type SwingCamera struct {
	LeadFraction float64 `yaml:"lead_fraction"` // Fraction of viewport kept ahead of the player
	FallMargin   float64 `yaml:"fall_margin"`   // World units below the viewport before a fall kills
}

// SwingPlayer defines player start state and hitbox.
type SwingPlayer struct {
	StartX  float64 `yaml:"start_x"`
	StartY  float64 `yaml:"start_y"`
	StartVX float64 `yaml:"start_vx"`
	StartVY float64 `yaml:"start_vy"`
	Radius  float64 `yaml:"radius"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ObstacleBoost float64 `yaml:"obstacle_boost"` // Added to obstacle chance at max difficulty
	SpacingGrowth float64 `yaml:"spacing_growth"` // Added to distance_max at max difficulty
	PickupDrop    float64 `yaml:"pickup_drop"`    // Subtracted from pickup chance at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
