// pkg/entity/craft.go
package entity

import (
	"math"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// CraftStats contains the handling characteristics of the player craft
type CraftStats struct {
	MaxSpeed       float64
	TurnRate       float64
	Acceleration   float64
	OpposingFactor float64
	Size           float64
}

// DefaultCraftStats returns the stock handling values.
func DefaultCraftStats() CraftStats {
	return CraftStats{
		MaxSpeed:       500,
		TurnRate:       4,
		Acceleration:   150,
		OpposingFactor: 3,
		Size:           20,
	}
}

// Craft is the player-controlled ship. Speed is signed: negative values
// fly backwards along the facing.
type Craft struct {
	BaseEntity
	Stats CraftStats
	Speed float64
}

// NewCraft creates a stationary craft at position facing +X
func NewCraft(position physics.Vector2D, stats CraftStats) *Craft {
	return &Craft{
		BaseEntity: BaseEntity{
			ID:       GenerateID(),
			Position: position,
			Active:   true,
		},
		Stats: stats,
	}
}

// Radius returns the circumradius of the craft's triangular silhouette.
func (c *Craft) Radius() float64 {
	return c.Stats.Size / (2 * math.Cos(math.Pi/3))
}

// GetCollider returns the craft's collision circle
func (c *Craft) GetCollider() physics.Circle {
	return physics.Circle{Center: c.Position, Radius: c.Radius()}
}

// Update clamps speed into [-MaxSpeed, MaxSpeed] and moves the craft
// along its facing, wrapping around the playfield edges.
func (c *Craft) Update(deltaTime float64, bounds physics.Bounds) {
	if math.Abs(c.Speed) > c.Stats.MaxSpeed {
		c.Speed = math.Copysign(c.Stats.MaxSpeed, c.Speed)
	}

	c.Position = bounds.Wrap(c.Position.Advance(c.Rotation, c.Speed*deltaTime))
}

// Thrust accelerates forward (direction > 0) or backward (direction < 0).
// Thrusting against the current motion is OpposingFactor times stronger.
// When the result would reach MaxSpeed the speed snaps to exactly
// MaxSpeed in the commanded direction.
func (c *Craft) Thrust(direction int, deltaTime float64) {
	if direction == 0 {
		return
	}
	dir := 1.0
	if direction < 0 {
		dir = -1.0
	}

	factor := 1.0
	if math.Copysign(1, c.Speed) == -dir {
		factor = c.Stats.OpposingFactor
	}

	accel := c.Stats.Acceleration * dir * factor * deltaTime
	if math.Abs(c.Speed+accel) < c.Stats.MaxSpeed {
		c.Speed += accel
	} else {
		c.Speed = c.Stats.MaxSpeed * dir
	}
}

// Turn rotates the facing; negative direction turns left.
func (c *Craft) Turn(direction int, deltaTime float64) {
	switch {
	case direction < 0:
		c.Rotation = physics.WrapAngle(c.Rotation, -c.Stats.TurnRate*deltaTime)
	case direction > 0:
		c.Rotation = physics.WrapAngle(c.Rotation, c.Stats.TurnRate*deltaTime)
	}
}

// Brake stops the craft dead.
func (c *Craft) Brake() {
	c.Speed = 0
}

// Fire launches a projectile from the craft's nose direction. The missile
// speed is the craft's top speed, not its current one.
func (c *Craft) Fire(w Weapon) *Projectile {
	return w.CreateProjectile(c.Position, c.Stats.MaxSpeed, c.Rotation)
}
