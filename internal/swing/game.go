package swing

import (
	"github.com/ropeswing/ropeswing/internal/config"
	"github.com/ropeswing/ropeswing/internal/core"
)

// Game owns the whole simulation: player, world, camera, tether and session
// state. One Step per fixed tick performs a complete atomic update; nothing
// outside the game observes or mutates state mid-tick. Renderers and UI read
// the snapshots produced at the end of each tick.
type Game struct {
	cfg      core.RuntimeConfig
	swingCfg config.SwingConfig

	physics    Physics
	gen        *Generator
	difficulty *config.DifficultyManager

	world  World
	player Player
	tether *Tether
	camera Camera

	state   SessionState
	paused  bool
	maxX    float64 // Running maximum of player.x; score derives from it
	pickups int
	ticks   int
}

// New creates a game with the given (already validated) configuration.
func New(swingCfg config.SwingConfig) *Game {
	return &Game{swingCfg: swingCfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "swing"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Rope Swing"
}

// Reset initializes or restarts the session into the idle state.
// The world preview for the idle screen is generated from the seed so the
// first playing tick has nothing left to do.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(g.swingCfg.Difficulty)
	g.physics = Physics{
		Gravity: g.swingCfg.Physics.Gravity,
		Damping: g.swingCfg.Physics.Damping,
	}
	g.gen = NewGenerator(g.swingCfg.Generation, g.swingCfg.Grab.Radius, g.difficulty, cfg.Seed)
	g.initRun()
	g.state = StateIdle
	g.paused = false
}

// initRun re-runs the full start reset: player, world, camera, tether,
// score and pickups. No partial state carries over between runs.
func (g *Game) initRun() {
	pl := g.swingCfg.Player
	g.player = Player{
		Pos:    core.V(pl.StartX, pl.StartY),
		Vel:    core.V(pl.StartVX, pl.StartVY),
		Radius: pl.Radius,
	}
	g.tether = nil
	g.camera = Camera{Offset: 0, LeadFraction: g.swingCfg.Camera.LeadFraction}
	g.maxX = pl.StartX
	g.pickups = 0
	g.ticks = 0

	g.gen.Reset(g.cfg.Seed)
	g.gen.SeedWorld(&g.world, g.player.Pos)
	g.gen.EnsureFrontier(&g.world, g.camera.Offset, g.cfg.ViewportW(), g.Score(), g.ticks)
}

// Step advances the game by one tick. Queued input is applied first, then
// physics, world cleanup, collisions, camera and score, and finally frontier
// generation, in that fixed order.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.state {
	case StateIdle:
		if in.Has(core.ActionStart) || in.Has(core.ActionGrab) {
			g.initRun()
			g.state = StatePlaying
		}

	case StateGameOver:
		if in.Has(core.ActionRestart) {
			g.initRun()
			g.state = StatePlaying
		}

	case StatePlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			break
		}
		g.stepPlaying(in)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) stepPlaying(in core.InputFrame) {
	g.ticks++

	// Input events queued since the last tick
	if in.Has(core.ActionGrab) && g.tether == nil {
		g.grab(in.Grab)
	}
	if in.Has(core.ActionRelease) && g.tether != nil {
		g.release()
	}

	g.physics.Step(&g.player, g.tether)

	g.gen.Cleanup(&g.world, g.camera.Offset)

	// Pickups are counted before fatal checks so a diamond grabbed on the
	// player's final tick still counts.
	g.pickups += CollectPickups(&g.world, &g.player)

	if HitObstacle(&g.world, &g.player) || FellOff(&g.player, g.cfg.ViewportH(), g.swingCfg.Camera.FallMargin) {
		g.tether = nil
		g.state = StateGameOver
		return // Game over ends the tick; no further mutation
	}

	g.camera.Update(g.player.Pos.X, g.cfg.ViewportW())
	if g.player.Pos.X > g.maxX {
		g.maxX = g.player.Pos.X
	}

	// Generation runs against the post-update camera so the frontier ends
	// every tick at least two viewport-widths ahead. The world is already
	// generated that far out from the previous tick, so collisions above
	// never see a hole.
	g.gen.EnsureFrontier(&g.world, g.camera.Offset, g.cfg.ViewportW(), g.Score(), g.ticks)
}

// grab tethers the player to the nearest eligible anchor. With no eligible
// anchor the attempt is a no-op, not an error.
func (g *Game) grab(attempt core.GrabAttempt) {
	idx := NearestGrabbable(g.world.Anchors, g.player.Pos, attempt, g.swingCfg.Grab.Radius, g.swingCfg.Grab.ForwardBias)
	if idx < 0 {
		return
	}
	anchor := g.world.Anchors[idx]
	ropeLen := g.player.Pos.Dist(anchor.Pos)
	if ropeLen == 0 {
		return // Player exactly on the anchor; nothing to swing on
	}
	g.tether = &Tether{AnchorPos: anchor.Pos, RopeLen: ropeLen}
}

// release lets go of the rope and applies the fixed release impulse once,
// a small forward/upward kick that keeps the controls responsive.
func (g *Game) release() {
	g.tether = nil
	g.player.Vel = g.player.Vel.Add(core.V(
		g.swingCfg.Physics.ReleaseImpulseX,
		g.swingCfg.Physics.ReleaseImpulseY,
	))
}

// Score is the furthest x the player has reached, monotone over a run.
func (g *Game) Score() int {
	return int(g.maxX)
}

// TetherState returns the current swing sub-state.
func (g *Game) TetherState() TetherState {
	if g.tether != nil {
		return TetherTethered
	}
	return TetherFree
}

// State returns the current session status for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		Pickups:  g.pickups,
		Idle:     g.state == StateIdle,
		GameOver: g.state == StateGameOver,
		Paused:   g.paused,
		Tethered: g.tether != nil,
	}
}
