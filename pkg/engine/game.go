// pkg/engine/game.go
package engine

import (
	"context"
	"fmt"
	"math"

	"github.com/opd-ai/go-asteroids/pkg/assets"
	"github.com/opd-ai/go-asteroids/pkg/collision"
	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/physics"
	"github.com/opd-ai/go-asteroids/pkg/rng"
	"github.com/opd-ai/go-asteroids/pkg/spawn"
)

// Game owns the whole simulation state. It is driven from a single
// goroutine: the driver calls Advance once per frame and reads Snapshot
// for presentation.
type Game struct {
	Config      *config.GameConfig
	Hazards     []entity.Hazard
	Projectiles []entity.Projectile
	Craft       *entity.Craft
	Tick        uint64
	Score       int
	Lives       int
	Population  int
	Started     bool
	Over        bool
	Won         bool
	Debug       bool
	Dilation    float64
	EventBus    *event.Bus

	bounds   physics.Bounds
	loop     *Loop
	spawner  *spawn.Spawner
	detector *collision.Detector
	launcher *entity.Launcher
	logger   *logging.Logger
	ctx      context.Context
}

// Option customizes a Game at construction
type Option func(*gameOptions)

type gameOptions struct {
	catalog *assets.Catalog
	source  rng.Source
	logger  *logging.Logger
	bus     *event.Bus
}

// WithCatalog sets the hazard variant catalog. Defaults to assets.Default().
func WithCatalog(c *assets.Catalog) Option {
	return func(o *gameOptions) { o.catalog = c }
}

// WithSource sets the random source. Defaults to one seeded from the config.
func WithSource(src rng.Source) Option {
	return func(o *gameOptions) { o.source = src }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *logging.Logger) Option {
	return func(o *gameOptions) { o.logger = l }
}

// WithEventBus shares an existing event bus.
func WithEventBus(b *event.Bus) Option {
	return func(o *gameOptions) { o.bus = b }
}

// NewGame creates a game in the menu phase with the specified configuration
func NewGame(cfg *config.GameConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := gameOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.catalog == nil {
		o.catalog = assets.Default()
	}
	if o.source == nil {
		o.source = rng.New(cfg.Simulation.Seed)
	}
	if o.logger == nil {
		o.logger = logging.NewNopLogger()
	}
	if o.bus == nil {
		o.bus = event.NewEventBus()
	}

	bounds := cfg.Bounds()
	spawner, err := spawn.NewSpawner(cfg.SpawnSettings(), bounds, o.catalog, o.source)
	if err != nil {
		return nil, fmt.Errorf("create spawner: %w", err)
	}

	g := &Game{
		Config:   cfg,
		Lives:    cfg.Rules.Lives,
		EventBus: o.bus,
		bounds:   bounds,
		loop:     NewLoop(cfg.TickDuration(), cfg.Simulation.MaxCatchUpTicks),
		spawner:  spawner,
		detector: collision.NewDetector(spawner, cfg.Rules.ScorePerTier),
		launcher: entity.NewLauncher(cfg.Projectile.Boost, cfg.Projectile.Radius),
		logger:   o.logger,
		ctx:      logging.WithCorrelationID(context.Background(), ""),
	}
	g.Craft = g.newCraft()

	return g, nil
}

// Bounds returns the playfield rectangle
func (g *Game) Bounds() physics.Bounds {
	return g.bounds
}

// Start begins a new run: counters reset, collections cleared, a fresh
// craft at the center and the initial hazard wave.
func (g *Game) Start() {
	g.ctx = logging.WithCorrelationID(context.Background(), "")

	g.Started = true
	g.Over = false
	g.Won = false
	g.Lives = g.Config.Rules.Lives
	g.Score = 0
	g.Tick = 0
	g.Hazards = g.Hazards[:0]
	g.Projectiles = g.Projectiles[:0]
	g.Craft = g.newCraft()
	g.loop.Reset()

	for i := 0; i < g.Config.Hazards.Initial; i++ {
		g.Hazards = append(g.Hazards, g.spawner.NewHazard())
	}
	g.Population = len(g.Hazards)

	g.logger.Info(g.ctx, "run started", "hazards", g.Population, "lives", g.Lives)
	g.EventBus.Publish(event.NewGameEvent(event.GameStarted, g, g.Score, g.Lives, false))
}

// Stop returns to the menu without ending the run as won or lost
func (g *Game) Stop() {
	if !g.Started {
		return
	}
	g.Started = false
	g.logger.Info(g.ctx, "returned to menu", "score", g.Score, "tick", g.Tick)
}

// Advance runs one frame: phase commands, dilation, maneuvers, the
// projectile filter, zero or more fixed ticks, then continuous motion.
// It returns true when the driver should exit.
func (g *Game) Advance(elapsed float64, cmds Commands) (quit bool) {
	if cmds.Quit {
		if !g.Started {
			return true
		}
		g.Stop()
	}
	if cmds.Start && !g.Started {
		g.Start()
	}
	if cmds.DebugToggle {
		g.Debug = !g.Debug
	}

	g.Dilation = g.dilation(cmds)
	if elapsed < 0 {
		elapsed = 0
	}
	dt := elapsed * g.Dilation

	if g.Dilation > 0 {
		g.applyManeuvers(cmds, dt)
	}

	g.filterProjectiles()

	ticks, clamped := g.loop.Accumulate(dt)
	if clamped {
		g.logger.Warn(g.ctx, "tick backlog dropped", "ticks", ticks, "max", g.loop.MaxCatchUp)
	}
	for i := 0; i < ticks; i++ {
		g.step()
	}

	g.integrate(dt)
	g.checkEndConditions()

	return false
}

// dilation picks the time scale for this frame
func (g *Game) dilation(cmds Commands) float64 {
	if cmds.OverrideDilation {
		if cmds.Dilation < 0 || math.IsNaN(cmds.Dilation) || math.IsInf(cmds.Dilation, 0) {
			return 0
		}
		return cmds.Dilation
	}
	if g.Started {
		return 1
	}
	return 0
}

// applyManeuvers turns held and pressed keys into craft actions
func (g *Game) applyManeuvers(cmds Commands, dt float64) {
	if cmds.ThrustForward {
		g.Craft.Thrust(1, dt)
	}
	if cmds.ThrustBackward {
		g.Craft.Thrust(-1, dt)
	}
	if cmds.TurnLeft {
		g.Craft.Turn(-1, dt)
	}
	if cmds.TurnRight {
		g.Craft.Turn(1, dt)
	}
	if cmds.Fire {
		g.fire()
	}
	if cmds.Brake {
		g.Craft.Brake()
	}
}

// fire launches a projectile from the craft
func (g *Game) fire() {
	p := g.Craft.Fire(g.launcher)
	g.Projectiles = append(g.Projectiles, *p)
	g.logger.Debug(g.ctx, "Projectile fired",
		"weapon", g.launcher.GetName(),
		"projectile_id", p.ID,
	)
	g.EventBus.Publish(event.NewProjectileEvent(g, uint64(p.ID), p.Position, p.Rotation))
}

// filterProjectiles drops projectiles that left the playfield
func (g *Game) filterProjectiles() {
	kept := g.Projectiles[:0]
	for _, p := range g.Projectiles {
		if p.Active {
			kept = append(kept, p)
		}
	}
	clear(g.Projectiles[len(kept):])
	g.Projectiles = kept
}

// step is one fixed tick: prune, craft pass, projectile pass, recount
func (g *Game) step() {
	g.Tick++

	if doomed := collision.Prune(collision.ViewOf(g.Hazards)); len(doomed) > 0 {
		g.Hazards = collision.RemoveIndices(g.Hazards, doomed)
		g.logger.Debug(g.ctx, "pruned destroyed hazards", "count", len(doomed), "tick", g.Tick)
	}

	if g.Started {
		g.resolveCraftCollisions()
	}
	g.resolveProjectileCollisions()

	g.Population = len(g.Hazards)
}

// resolveCraftCollisions splits every hazard touching the craft, resets
// the craft and takes one life.
func (g *Game) resolveCraftCollisions() {
	plan := g.detector.ScanCraft(g.Craft.GetCollider(), collision.ViewOf(g.Hazards))
	if !plan.Hit() {
		return
	}
	g.Hazards = plan.Apply(g.Hazards)
	g.publishHits(plan.Hits, true)

	lost := g.Craft
	g.Craft = g.newCraft()
	if g.Lives > 0 {
		g.Lives--
	}

	g.logger.Info(g.ctx, "craft destroyed", "lives", g.Lives, "hazards_hit", len(plan.Hits), "tick", g.Tick)
	g.EventBus.Publish(event.NewCraftEvent(g, uint64(lost.ID), lost.Position, g.Lives))
}

// resolveProjectileCollisions splits hazards hit by projectiles and
// awards the score. Growth is decided once for the whole pass.
func (g *Game) resolveProjectileCollisions() {
	allowGrowth := len(g.Hazards) < g.Config.Hazards.Limit

	plan := g.detector.ScanProjectiles(
		collision.ViewOf(g.Hazards),
		collision.ViewOf(g.Projectiles),
		allowGrowth,
	)
	if len(plan.Hits) == 0 {
		return
	}
	g.Hazards, g.Projectiles = plan.Apply(g.Hazards, g.Projectiles)
	g.publishHits(plan.Hits, false)

	if plan.Score > 0 {
		g.Score += plan.Score
		g.EventBus.Publish(event.NewScoreEvent(g, g.Score, plan.Score))
	}
	g.logger.Debug(g.ctx, "projectile hits", "hits", len(plan.Hits), "spawned", len(plan.Spawn), "score", g.Score)
}

func (g *Game) publishHits(hits []collision.Hit, byCraft bool) {
	for _, hit := range hits {
		h := hit.Hazard
		g.EventBus.Publish(event.NewHazardEvent(event.HazardDestroyed, g, uint64(h.ID), h.Tier, h.Position, hit.Fragments, byCraft))
		if hit.Fragments > 0 {
			g.EventBus.Publish(event.NewHazardEvent(event.HazardSplit, g, uint64(h.ID), h.Tier, h.Position, hit.Fragments, byCraft))
		}
	}
}

// Entities lists hazards, then projectiles, then the craft. The pointers
// stay valid until the next Advance.
func (g *Game) Entities() []entity.Entity {
	all := make([]entity.Entity, 0, len(g.Hazards)+len(g.Projectiles)+1)
	for i := range g.Hazards {
		all = append(all, &g.Hazards[i])
	}
	for i := range g.Projectiles {
		all = append(all, &g.Projectiles[i])
	}
	return append(all, g.Craft)
}

// integrate moves every entity once per frame
func (g *Game) integrate(dt float64) {
	if dt == 0 {
		return
	}
	for _, e := range g.Entities() {
		e.Update(dt, g.bounds)
	}
}

// checkEndConditions ends the run on no lives left or an empty field
func (g *Game) checkEndConditions() {
	if !g.Started {
		return
	}
	switch {
	case g.Lives <= 0:
		g.Started = false
		g.Over = true
		g.logger.Info(g.ctx, "game over", "score", g.Score, "tick", g.Tick)
		g.EventBus.Publish(event.NewGameEvent(event.GameEnded, g, g.Score, g.Lives, false))
	case len(g.Hazards) == 0:
		g.Started = false
		g.Won = true
		g.logger.Info(g.ctx, "game won", "score", g.Score, "tick", g.Tick)
		g.EventBus.Publish(event.NewGameEvent(event.GameEnded, g, g.Score, g.Lives, true))
	}
}

func (g *Game) newCraft() *entity.Craft {
	return entity.NewCraft(g.bounds.Center(), g.Config.CraftStats())
}
