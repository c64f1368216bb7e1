// pkg/entity/weapon_test.go
package entity

import (
	"math"
	"testing"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

func TestLauncher_CreateProjectile(t *testing.T) {
	l := NewLauncher(200, 5)
	pos := physics.Vector2D{X: 10, Y: 20}

	p := l.CreateProjectile(pos, -500, 1.25)

	if p.Speed != 500 {
		t.Errorf("Speed = %v, want 500", p.Speed)
	}
	if !p.Active {
		t.Error("new projectile should be active")
	}
	if p.Rotation != 1.25 || p.Position != pos {
		t.Errorf("projectile = %+v", p.BaseEntity)
	}
	if p.GetCollider().Radius != 5 {
		t.Errorf("radius = %v, want 5", p.GetCollider().Radius)
	}
	if l.GetName() != "Missile" {
		t.Errorf("GetName() = %q", l.GetName())
	}
}

func TestProjectile_UpdateMovesSpeedPlusBoost(t *testing.T) {
	bounds := physics.Bounds{Width: 2000, Height: 2000}
	p := NewLauncher(200, 5).CreateProjectile(physics.Vector2D{X: 100, Y: 100}, 500, 0)

	p.Update(1, bounds)

	if math.Abs(p.Position.X-800) > 1e-9 || math.Abs(p.Position.Y-100) > 1e-9 {
		t.Errorf("Position = %v, want (800, 100)", p.Position)
	}
	if !p.Active {
		t.Error("projectile inside bounds should stay active")
	}
}

func TestProjectile_DeactivatesOutsideBounds(t *testing.T) {
	tests := []struct {
		name  string
		start physics.Vector2D
		angle float64
	}{
		{"right_edge", physics.Vector2D{X: 790, Y: 300}, 0},
		{"left_edge", physics.Vector2D{X: 10, Y: 300}, math.Pi},
		{"top_edge", physics.Vector2D{X: 400, Y: 5}, -math.Pi / 2},
		{"bottom_edge", physics.Vector2D{X: 400, Y: 595}, math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewLauncher(200, 5).CreateProjectile(tt.start, 500, tt.angle)
			p.Update(0.1, testBounds)
			if p.Active {
				t.Errorf("projectile at %v should be inactive", p.Position)
			}
			pos := p.Position
			p.Update(0.1, testBounds)
			if p.Position != pos {
				t.Error("inactive projectile kept moving")
			}
		})
	}
}
