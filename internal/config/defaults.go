package config

import (
	_ "embed"
)

//go:embed defaults/swing.yaml
var defaultSwingYAML []byte

// DefaultSwingConfig returns the default swing configuration.
func DefaultSwingConfig() SwingConfig {
	return SwingConfig{
		Physics: SwingPhysics{
			Gravity:         0.25,
			Damping:         0.99,
			ReleaseImpulseX: 2.0,
			ReleaseImpulseY: -4.5,
		},
		Generation: SwingGeneration{
			DistanceMin:    180,
			DistanceMax:    260,
			MaxHeightDelta: 120,
			MinY:           80,
			MaxY:           360,
			PickupChance:   0.5,
			ObstacleChance: 0.3,
			BatchSize:      10,
			CleanupMargin:  600,
			PickupLift:     60,
			ObstacleDrop:   60,
			AnchorRadius:   8,
			PickupSize:     20,
			ObstacleSize:   30,
		},
		Grab: SwingGrab{
			Radius:      300,
			ForwardBias: 50,
		},
		Camera: SwingCamera{
			LeadFraction: 0.3,
			FallMargin:   200,
		},
		Player: SwingPlayer{
			StartX:  100,
			StartY:  200,
			StartVX: 4,
			StartVY: 0,
			Radius:  15,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				ObstacleBoost: 0.25,
				SpacingGrowth: 40,
				PickupDrop:    0.15,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for editing or display.
func GetDefaultYAML() []byte {
	return defaultSwingYAML
}
