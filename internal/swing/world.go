package swing

import (
	"math/rand"

	"github.com/ropeswing/ropeswing/internal/config"
	"github.com/ropeswing/ropeswing/internal/core"
)

// Generator procedurally extends the world ahead of the camera and retires
// entities that have fallen far behind it. All randomness flows through one
// seeded source so runs are reproducible under test.
type Generator struct {
	cfg        config.SwingGeneration
	grabRadius float64
	difficulty *config.DifficultyManager
	rng        *rand.Rand
}

// NewGenerator creates a generator with the given RNG seed.
func NewGenerator(cfg config.SwingGeneration, grabRadius float64, diff *config.DifficultyManager, seed int64) *Generator {
	return &Generator{
		cfg:        cfg,
		grabRadius: grabRadius,
		difficulty: diff,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// Reset reseeds the RNG for a fresh run.
func (g *Generator) Reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// SeedWorld clears the world and places the first anchor within grab reach
// of the player's start position. Subsequent anchors come from EnsureFrontier.
func (g *Generator) SeedWorld(w *World, start core.Vec2) {
	w.Reset()
	first := Anchor{
		Pos: core.V(
			start.X+g.cfg.DistanceMin,
			core.ClampF(start.Y, g.cfg.MinY, g.cfg.MaxY),
		),
		Radius: g.cfg.AnchorRadius,
	}
	w.Anchors = append(w.Anchors, first)
	w.FrontierX = first.Pos.X
}

// EnsureFrontier appends chunks of anchors until the frontier is at least
// two viewport-widths ahead of the camera.
func (g *Generator) EnsureFrontier(w *World, cameraX, viewportW float64, score, ticks int) {
	for w.FrontierX-cameraX < 2*viewportW {
		g.appendChunk(w, score, ticks)
	}
}

// appendChunk generates one batch of anchors plus their pickups and
// obstacles. RNG draws happen in a fixed order per anchor (distance,
// height delta, pickup roll, obstacle roll) so a seed always reproduces
// the same world.
func (g *Generator) appendChunk(w *World, score, ticks int) {
	distanceMax := g.cfg.DistanceMax
	pickupChance := g.cfg.PickupChance
	obstacleChance := g.cfg.ObstacleChance
	if g.difficulty != nil {
		distanceMax = g.difficulty.DistanceMax(g.cfg.DistanceMax, g.grabRadius, score, ticks)
		pickupChance = g.difficulty.PickupChance(g.cfg.PickupChance, score, ticks)
		obstacleChance = g.difficulty.ObstacleChance(g.cfg.ObstacleChance, score, ticks)
	}

	for i := 0; i < g.cfg.BatchSize; i++ {
		last := w.Anchors[len(w.Anchors)-1]

		distance := g.uniform(g.cfg.DistanceMin, distanceMax)
		heightDelta := g.uniform(-g.cfg.MaxHeightDelta, g.cfg.MaxHeightDelta)

		next := Anchor{
			Pos: core.V(
				last.Pos.X+distance,
				core.ClampF(last.Pos.Y+heightDelta, g.cfg.MinY, g.cfg.MaxY),
			),
			Radius: g.cfg.AnchorRadius,
		}
		assertf(next.Pos.X > last.Pos.X, "anchor sequence not strictly increasing: %v after %v", next.Pos.X, last.Pos.X)
		w.Anchors = append(w.Anchors, next)
		w.FrontierX = next.Pos.X

		mid := last.Pos.Add(next.Pos).Scale(0.5)
		if g.rng.Float64() < pickupChance {
			w.Pickups = append(w.Pickups, Pickup{
				Pos:  core.V(mid.X, mid.Y-g.cfg.PickupLift),
				Size: g.cfg.PickupSize,
			})
		}
		if g.rng.Float64() < obstacleChance {
			w.Obstacles = append(w.Obstacles, Obstacle{
				Pos:  core.V(mid.X, mid.Y+g.cfg.ObstacleDrop),
				Size: g.cfg.ObstacleSize,
			})
		}
	}
}

// Cleanup removes entities more than the configured margin behind the
// camera. A pure filter: order-independent and never touches anything
// still ahead of or within the margin.
func (g *Generator) Cleanup(w *World, cameraX float64) {
	cutoff := cameraX - g.cfg.CleanupMargin

	anchors := w.Anchors[:0]
	for _, a := range w.Anchors {
		if a.Pos.X >= cutoff {
			anchors = append(anchors, a)
		}
	}
	w.Anchors = anchors

	obstacles := w.Obstacles[:0]
	for _, o := range w.Obstacles {
		if o.Pos.X >= cutoff {
			obstacles = append(obstacles, o)
		}
	}
	w.Obstacles = obstacles

	pickups := w.Pickups[:0]
	for _, p := range w.Pickups {
		if p.Pos.X >= cutoff {
			pickups = append(pickups, p)
		}
	}
	w.Pickups = pickups
}

// uniform draws from [min, max).
func (g *Generator) uniform(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}
