package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int     // Screen width in characters
	ScreenH  int     // Screen height in characters
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
	CellW    float64 // World units per screen cell horizontally
	CellH    float64 // World units per screen cell vertically
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
// Terminal cells are roughly twice as tall as they are wide, so the
// vertical world scale is doubled to keep swing arcs round on screen.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		CellW:    10,
		CellH:    20,
	}
}

// ViewportW returns the viewport width in world units.
func (c RuntimeConfig) ViewportW() float64 {
	return float64(c.ScreenW) * c.CellW
}

// ViewportH returns the viewport height in world units.
func (c RuntimeConfig) ViewportH() float64 {
	return float64(c.ScreenH) * c.CellH
}

// GameState represents the session status reported to the platform.
type GameState struct {
	Score    int  // Current score (furthest distance reached)
	Pickups  int  // Diamonds collected this session
	Idle     bool // Whether the session is waiting to start
	GameOver bool // Whether the session has ended
	Paused   bool // Whether the game is paused
	Tethered bool // Whether the player is currently on the rope
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
