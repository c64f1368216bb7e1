// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/logging"
)

// Draw renders one frame of g through r.
func Draw(r entity.Renderer, g *engine.Game) {
	r.Clear()
	DrawEntities(r, g)
	r.Present()
}

// DrawEntities hands every live entity of g to r. Destroyed hazards and
// spent projectiles are skipped, and the craft is only drawn during a run.
func DrawEntities(r entity.Renderer, g *engine.Game) {
	for _, e := range g.Entities() {
		if !e.Alive() {
			continue
		}
		if _, isCraft := e.(*entity.Craft); isCraft && !g.Started {
			continue
		}
		e.Render(r)
	}
}

// NullRenderer is an entity.Renderer that only logs. The headless driver
// uses it.
type NullRenderer struct {
	logger *logging.Logger
	frames int
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &NullRenderer{logger: logger}
}

// Frames returns how many frames were presented.
func (d *NullRenderer) Frames() int {
	return d.frames
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {
	d.logger.Debug(context.Background(), "clear", "frame", d.frames)
}

// Present implements entity.Renderer.
func (d *NullRenderer) Present() {
	d.frames++
	d.logger.Debug(context.Background(), "present", "frame", d.frames)
}

// RenderCraft implements entity.Renderer.
func (d *NullRenderer) RenderCraft(craft *entity.Craft) {
	ctx := context.Background()
	if craft == nil {
		d.logger.Debug(ctx, "RenderCraft called with nil craft")
		return
	}
	d.logger.Debug(ctx, "craft",
		"craft_id", craft.ID,
		"x", craft.Position.X,
		"y", craft.Position.Y,
		"speed", craft.Speed,
	)
}

// RenderHazard implements entity.Renderer.
func (d *NullRenderer) RenderHazard(hazard *entity.Hazard) {
	ctx := context.Background()
	if hazard == nil {
		d.logger.Debug(ctx, "RenderHazard called with nil hazard")
		return
	}
	d.logger.Debug(ctx, "hazard",
		"hazard_id", hazard.ID,
		"tier", hazard.Tier,
		"variant", hazard.Variant,
	)
}

// RenderProjectile implements entity.Renderer.
func (d *NullRenderer) RenderProjectile(projectile *entity.Projectile) {
	ctx := context.Background()
	if projectile == nil {
		d.logger.Debug(ctx, "RenderProjectile called with nil projectile")
		return
	}
	d.logger.Debug(ctx, "projectile",
		"projectile_id", projectile.ID,
		"x", projectile.Position.X,
		"y", projectile.Position.Y,
	)
}
