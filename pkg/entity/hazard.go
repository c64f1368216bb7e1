// pkg/entity/hazard.go
package entity

import (
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// MaxTier is the size class of the largest hazard.
const MaxTier = 3

// Hazard is a drifting, spinning asteroid. Rotation is the visual facing
// and spins at TurnRate; Direction is the travel heading and only changes
// when the hazard is split.
type Hazard struct {
	BaseEntity
	Speed           float64
	Tier            int
	Scale           float64
	Direction       float64
	SpeedMultiplier float64
	TurnRate        float64
	Variant         string
}

// Radius returns the collision radius, tier × scale / 2.
func (h *Hazard) Radius() float64 {
	return float64(h.Tier) * h.Scale / 2
}

// GetCollider returns the hazard's collision circle
func (h *Hazard) GetCollider() physics.Circle {
	return physics.Circle{Center: h.Position, Radius: h.Radius()}
}

// Destroyed reports whether the hazard reached tier 0 and awaits pruning.
func (h *Hazard) Destroyed() bool {
	return h.Tier <= 0
}

// Points returns the score for destroying the hazard: bigger tiers are
// worth more.
func (h *Hazard) Points(perTier int) int {
	if h.Tier <= 0 {
		return 0
	}
	return perTier * h.Tier
}

// AddRotation spins the facing by amount radians.
func (h *Hazard) AddRotation(amount float64) {
	h.Rotation = physics.WrapAngle(h.Rotation, amount)
}

// Update spins the hazard and moves it along its travel direction,
// wrapping around the playfield edges.
func (h *Hazard) Update(deltaTime float64, bounds physics.Bounds) {
	h.AddRotation(h.TurnRate * deltaTime)

	h.Position = bounds.Wrap(h.Position.Advance(h.Direction, h.Speed*h.SpeedMultiplier*deltaTime))
}
