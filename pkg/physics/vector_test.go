// pkg/physics/vector_test.go
package physics

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestVector2D_AddSubScale(t *testing.T) {
	tests := []struct {
		name     string
		got      Vector2D
		expected Vector2D
	}{
		{"add_mixed_signs", Vector2D{X: 5, Y: -3}.Add(Vector2D{X: -2, Y: 7}), Vector2D{X: 3, Y: 4}},
		{"sub_to_zero", Vector2D{X: 2, Y: 2}.Sub(Vector2D{X: 2, Y: 2}), Vector2D{}},
		{"scale_negative", Vector2D{X: 1.5, Y: -2}.Scale(-2), Vector2D{X: -3, Y: 4}},
		{"scale_zero", Vector2D{X: 9, Y: 9}.Scale(0), Vector2D{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %v, expected %v", tt.got, tt.expected)
			}
		})
	}
}

func TestVector2D_LengthAndDistance(t *testing.T) {
	v := Vector2D{X: 3, Y: 4}
	if v.Length() != 5 {
		t.Errorf("Length() = %v, expected 5", v.Length())
	}
	if d := (Vector2D{X: 1, Y: 1}).Distance(Vector2D{X: 4, Y: 5}); d != 5 {
		t.Errorf("Distance() = %v, expected 5", d)
	}
}

func TestUnit(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		x, y  float64
	}{
		{"east", 0, 1, 0},
		{"south_screen", math.Pi / 2, 0, 1},
		{"west", math.Pi, -1, 0},
		{"north_screen", -math.Pi / 2, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := Unit(tt.angle)
			if !almostEqual(u.X, tt.x) || !almostEqual(u.Y, tt.y) {
				t.Errorf("Unit(%v) = %v, expected (%v, %v)", tt.angle, u, tt.x, tt.y)
			}
			if !almostEqual(u.Length(), 1) {
				t.Errorf("Unit(%v) length = %v", tt.angle, u.Length())
			}
		})
	}
}

func TestVector2D_Advance(t *testing.T) {
	tests := []struct {
		name     string
		heading  float64
		distance float64
		expected Vector2D
	}{
		{"along_x", 0, 700, Vector2D{X: 710, Y: 10}},
		{"screen_down", math.Pi / 2, 5, Vector2D{X: 10, Y: 15}},
		{"reverse", 0, -4, Vector2D{X: 6, Y: 10}},
		{"standing_still", 1.3, 0, Vector2D{X: 10, Y: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Vector2D{X: 10, Y: 10}.Advance(tt.heading, tt.distance)
			if !almostEqual(got.X, tt.expected.X) || !almostEqual(got.Y, tt.expected.Y) {
				t.Errorf("Advance(%v, %v) = %v, expected %v", tt.heading, tt.distance, got, tt.expected)
			}
		})
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		name     string
		angle    float64
		delta    float64
		expected float64
	}{
		{"inside_range", 1, 0.5, 1.5},
		{"positive_overflow", 2 * math.Pi, 0.25, 0.25},
		{"negative_keeps_sign", -2*math.Pi + 0.1, -0.2, -0.1},
		{"exact_turn_folds_to_zero", math.Pi, math.Pi, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapAngle(tt.angle, tt.delta)
			if !almostEqual(got, tt.expected) {
				t.Errorf("WrapAngle(%v, %v) = %v, expected %v", tt.angle, tt.delta, got, tt.expected)
			}
			if got <= -2*math.Pi || got >= 2*math.Pi {
				t.Errorf("WrapAngle result %v outside (-2π, 2π)", got)
			}
		})
	}
}
