// pkg/entity/entity.go
package entity

import (
	"sync/atomic"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// ID is a unique identifier for an entity
type ID uint64

// Entity is what the frame integration and the renderers see of a
// hazard, projectile or craft.
type Entity interface {
	GetID() ID
	GetCollider() physics.Circle
	// Alive is false once the entity only waits for removal.
	Alive() bool
	Update(deltaTime float64, bounds physics.Bounds)
	Render(r Renderer)
}

var (
	_ Entity = (*Hazard)(nil)
	_ Entity = (*Projectile)(nil)
	_ Entity = (*Craft)(nil)
)

// BaseEntity holds the fields every entity kind shares.
type BaseEntity struct {
	ID       ID
	Position physics.Vector2D
	Rotation float64
	Active   bool
}

func (e *BaseEntity) GetID() ID {
	return e.ID
}

// Alive reports whether a hazard still has a tier to lose.
func (h *Hazard) Alive() bool { return !h.Destroyed() }

// Alive reports whether a projectile is still in flight.
func (p *Projectile) Alive() bool { return p.Active }

// Alive is always true; a hit craft is replaced rather than removed.
func (c *Craft) Alive() bool { return true }

func (c *Craft) Render(r Renderer) {
	r.RenderCraft(c)
}

func (h *Hazard) Render(r Renderer) {
	r.RenderHazard(h)
}

func (p *Projectile) Render(r Renderer) {
	r.RenderProjectile(p)
}

var nextID atomic.Uint64

// GenerateID hands out process-wide unique entity IDs, starting at 1.
func GenerateID() ID {
	return ID(nextID.Add(1))
}
