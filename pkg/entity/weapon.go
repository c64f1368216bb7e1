// pkg/entity/weapon.go
package entity

import (
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Weapon interface defines the methods all weapons must implement
type Weapon interface {
	GetName() string
	CreateProjectile(position physics.Vector2D, speed, angle float64) *Projectile
}

// BaseWeapon contains common functionality for all weapons
type BaseWeapon struct {
	Name string
}

// GetName returns the weapon's name
func (w *BaseWeapon) GetName() string {
	return w.Name
}

// Launcher fires straight-flying missiles. Every missile gets Boost added
// on top of the speed it was fired with.
type Launcher struct {
	BaseWeapon
	Boost  float64
	Radius float64
}

// NewLauncher creates a missile launcher
func NewLauncher(boost, radius float64) *Launcher {
	return &Launcher{
		BaseWeapon: BaseWeapon{Name: "Missile"},
		Boost:      boost,
		Radius:     radius,
	}
}

// CreateProjectile creates a missile travelling along angle. Only the
// magnitude of speed is used.
func (l *Launcher) CreateProjectile(position physics.Vector2D, speed, angle float64) *Projectile {
	if speed < 0 {
		speed = -speed
	}
	return &Projectile{
		BaseEntity: BaseEntity{
			ID:       GenerateID(),
			Position: position,
			Rotation: angle,
			Active:   true,
		},
		Speed:  speed,
		Boost:  l.Boost,
		Radius: l.Radius,
	}
}

// Projectile represents a missile in flight
type Projectile struct {
	BaseEntity
	Speed  float64
	Boost  float64
	Radius float64
}

// GetCollider returns the projectile's collision circle
func (p *Projectile) GetCollider() physics.Circle {
	return physics.Circle{Center: p.Position, Radius: p.Radius}
}

// Update moves the projectile and deactivates it once it leaves the
// playfield. Projectiles never wrap.
func (p *Projectile) Update(deltaTime float64, bounds physics.Bounds) {
	if !p.Active {
		return
	}
	p.Position = p.Position.Advance(p.Rotation, (p.Speed+p.Boost)*deltaTime)

	if !bounds.Contains(p.Position) {
		p.Active = false
	}
}
