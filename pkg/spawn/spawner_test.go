// pkg/spawn/spawner_test.go
package spawn

import (
	"errors"
	"math"
	"testing"

	"github.com/opd-ai/go-asteroids/pkg/assets"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
	"github.com/opd-ai/go-asteroids/pkg/rng"
)

var testBounds = physics.Bounds{Width: 800, Height: 600}

func newTestSpawner(t *testing.T, src rng.Source) *Spawner {
	t.Helper()
	catalog, err := assets.NewCatalog([]string{"grey", "gold", "ice", "lava"})
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewSpawner(DefaultSettings(), testBounds, catalog, src)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNewSpawner_EmptyCatalog(t *testing.T) {
	_, err := NewSpawner(DefaultSettings(), testBounds, nil, rng.New(1))
	if !errors.Is(err, assets.ErrEmptyCatalog) {
		t.Errorf("NewSpawner(nil catalog) error = %v, want ErrEmptyCatalog", err)
	}
}

func TestSpeedFactor(t *testing.T) {
	tests := []struct {
		tier     int
		expected float64
	}{
		{1, 3}, {2, 2}, {3, 1}, {0, 0},
	}
	for _, tt := range tests {
		if got := SpeedFactor(tt.tier); got != tt.expected {
			t.Errorf("SpeedFactor(%d) = %v, want %v", tt.tier, got, tt.expected)
		}
	}
}

func TestNewHazard_ScriptedDraws(t *testing.T) {
	seq := &rng.Sequence{
		Ints:   []int{1, 2, 1, 0},
		Floats: []float64{0, 0.5, 0.5, 0, 0.25, 0.5, 0},
	}
	h := newTestSpawner(t, seq).NewHazard()

	if h.Position != (physics.Vector2D{X: 770, Y: 300}) {
		t.Errorf("Position = %v, want (770, 300)", h.Position)
	}
	if h.Tier != 3 {
		t.Errorf("Tier = %d, want 3", h.Tier)
	}
	if math.Abs(h.SpeedMultiplier-0.95) > 1e-9 {
		t.Errorf("SpeedMultiplier = %v, want 0.95", h.SpeedMultiplier)
	}
	if math.Abs(h.Speed-47.5) > 1e-9 {
		t.Errorf("Speed = %v, want 47.5", h.Speed)
	}
	if h.Rotation != 0 || math.Abs(h.Direction-math.Pi/2) > 1e-9 {
		t.Errorf("Rotation = %v, Direction = %v", h.Rotation, h.Direction)
	}
	if math.Abs(h.TurnRate-1) > 1e-9 {
		t.Errorf("TurnRate = %v, want 1", h.TurnRate)
	}
	if h.Variant != "grey" || h.Scale != 40 || !h.Active {
		t.Errorf("hazard = %+v", h)
	}
}

func TestNewHazard_Ranges(t *testing.T) {
	s := newTestSpawner(t, rng.New(2024))
	tiers := map[int]int{}

	for i := 0; i < 5000; i++ {
		h := s.NewHazard()
		tiers[h.Tier]++

		if h.Tier < 1 || h.Tier > 3 {
			t.Fatalf("Tier = %d out of range", h.Tier)
		}
		if h.SpeedMultiplier < 0.4 || h.SpeedMultiplier > 1.5 {
			t.Fatalf("SpeedMultiplier = %v out of range", h.SpeedMultiplier)
		}
		want := SpeedFactor(h.Tier) * h.SpeedMultiplier * 50
		if math.Abs(h.Speed-want) > 1e-9 {
			t.Fatalf("Speed = %v, want %v", h.Speed, want)
		}
		if rate := math.Abs(h.TurnRate); rate < 0.5 || rate >= 1.5 {
			t.Fatalf("|TurnRate| = %v out of range", rate)
		}
		if h.Rotation < 0 || h.Rotation >= 2*math.Pi || h.Direction < 0 || h.Direction >= 2*math.Pi {
			t.Fatalf("angles out of range: %v %v", h.Rotation, h.Direction)
		}
		if !nearEdge(h.Position, 30, 60) {
			t.Fatalf("Position %v not within an edge band", h.Position)
		}
	}

	for tier := 1; tier <= 3; tier++ {
		if tiers[tier] < 1400 {
			t.Errorf("tier %d drawn %d times, expected roughly uniform", tier, tiers[tier])
		}
	}
}

func nearEdge(p physics.Vector2D, lo, hi float64) bool {
	in := func(v float64) bool { return v >= lo && v <= hi }
	return in(p.Y) || in(testBounds.Width-p.X) || in(testBounds.Height-p.Y) || in(p.X)
}

func parentHazard(tier int) entity.Hazard {
	return entity.Hazard{
		BaseEntity: entity.BaseEntity{
			ID:       77,
			Position: physics.Vector2D{X: 120, Y: 240},
			Rotation: 0.5,
			Active:   true,
		},
		Speed:           40,
		Tier:            tier,
		Scale:           40,
		Direction:       1.0,
		SpeedMultiplier: 1.2,
		TurnRate:        0.8,
		Variant:         "gold",
	}
}

func TestSplit_ChildCountsAndTiers(t *testing.T) {
	tests := []struct {
		name        string
		tier        int
		allowGrowth bool
		wantTiers   []int
	}{
		{"tier_three_growth", 3, true, []int{2, 2}},
		{"tier_three_capped", 3, false, []int{2}},
		{"tier_two_growth", 2, true, []int{1, 1}},
		{"tier_two_capped", 2, false, []int{1}},
		{"tier_one_growth", 1, true, nil},
		{"tier_one_capped", 1, false, nil},
		{"tier_zero", 0, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSpawner(t, rng.New(5))
			children := s.Split(parentHazard(tt.tier), tt.allowGrowth)

			if len(children) != len(tt.wantTiers) {
				t.Fatalf("got %d children, want %d", len(children), len(tt.wantTiers))
			}
			for i, c := range children {
				if c.Tier != tt.wantTiers[i] {
					t.Errorf("child %d Tier = %d, want %d", i, c.Tier, tt.wantTiers[i])
				}
			}
		})
	}
}

func TestSplit_ChildKinematics(t *testing.T) {
	seq := &rng.Sequence{Floats: []float64{0, 0, 0, 0}}
	s := newTestSpawner(t, seq)
	parent := parentHazard(3)

	children := s.Split(parent, true)
	if len(children) != 2 {
		t.Fatalf("got %d children, want 2", len(children))
	}
	a, b := children[0], children[1]

	checks := []struct {
		name      string
		got, want float64
	}{
		{"a.speed", a.Speed, -40},
		{"a.rotation", a.Rotation, -0.5 + math.Pi/4},
		{"a.direction", a.Direction, -1.0 - math.Pi/4},
		{"a.turn", a.TurnRate, -0.8},
		{"b.speed", b.Speed, -40},
		{"b.rotation", b.Rotation, -0.5 - math.Pi/4},
		{"b.direction", b.Direction, -1.0 + math.Pi/4},
		{"b.turn", b.TurnRate, 0.8},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 1e-9 {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	for i, c := range children {
		if c.Position != parent.Position || c.SpeedMultiplier != parent.SpeedMultiplier || c.Variant != parent.Variant {
			t.Errorf("child %d did not inherit position, multiplier and variant: %+v", i, c)
		}
		if c.ID == parent.ID {
			t.Errorf("child %d reused parent ID", i)
		}
	}
	if a.ID == b.ID {
		t.Error("children share an ID")
	}
}

func TestSplit_RandomFactorRanges(t *testing.T) {
	s := newTestSpawner(t, rng.New(11))
	parent := parentHazard(3)

	for i := 0; i < 1000; i++ {
		children := s.Split(parent, true)
		a, b := children[0], children[1]

		if f := -a.Speed / parent.Speed; f < 1 || f > 1.75 {
			t.Fatalf("child A speed factor %v out of [1, 1.75]", f)
		}
		if f := -a.TurnRate / parent.TurnRate; f < 1 || f > 2 {
			t.Fatalf("child A turn factor %v out of [1, 2]", f)
		}
		if f := -b.Speed / parent.Speed; f < 1 || f > 2 {
			t.Fatalf("child B speed factor %v out of [1, 2]", f)
		}
		if f := b.TurnRate / parent.TurnRate; f < 1 || f > 3.5 {
			t.Fatalf("child B turn factor %v out of [1, 3.5]", f)
		}
	}
}
