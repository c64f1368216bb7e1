// pkg/spawn/spawner.go
package spawn

import (
	"math"

	"github.com/opd-ai/go-asteroids/pkg/assets"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
	"github.com/opd-ai/go-asteroids/pkg/rng"
)

// Settings holds the hazard generation tunables.
type Settings struct {
	Scale         float64
	SpawnUnit     float64
	SpeedBase     float64
	MultiplierMin float64
	MultiplierMax float64
	TurnRateMin   float64
	TurnRateMax   float64
	Rarity        float64
}

// DefaultSettings returns the stock hazard tunables.
func DefaultSettings() Settings {
	return Settings{
		Scale:         40,
		SpawnUnit:     60,
		SpeedBase:     50,
		MultiplierMin: 0.4,
		MultiplierMax: 1.5,
		TurnRateMin:   0.5,
		TurnRateMax:   1.5,
		Rarity:        85,
	}
}

// Spawner creates hazards, either fresh at the screen edge or as split
// fragments of a destroyed one.
type Spawner struct {
	settings Settings
	bounds   physics.Bounds
	catalog  *assets.Catalog
	selector *rng.WeightedIndex
	src      rng.Source
}

// NewSpawner creates a spawner drawing variants from catalog. It returns
// assets.ErrEmptyCatalog when catalog is nil or empty.
func NewSpawner(settings Settings, bounds physics.Bounds, catalog *assets.Catalog, src rng.Source) (*Spawner, error) {
	if catalog == nil || catalog.Len() == 0 {
		return nil, assets.ErrEmptyCatalog
	}
	return &Spawner{
		settings: settings,
		bounds:   bounds,
		catalog:  catalog,
		selector: rng.NewWeightedIndex(rng.RarityWeights(catalog.Len(), settings.Rarity)),
		src:      src,
	}, nil
}

// SpeedFactor maps a tier to its base speed factor: smaller hazards are
// faster.
func SpeedFactor(tier int) float64 {
	switch tier {
	case 1:
		return 3
	case 2:
		return 2
	case 3:
		return 1
	default:
		return 0
	}
}

// NewHazard creates a hazard near a random screen edge with random
// kinematics and a weighted-random variant.
func (s *Spawner) NewHazard() entity.Hazard {
	pos := s.edgePosition()

	tier := rng.UniformInt(s.src, 1, entity.MaxTier)
	multiplier := rng.Uniform(s.src, s.settings.MultiplierMin, s.settings.MultiplierMax)
	speed := SpeedFactor(tier) * multiplier * s.settings.SpeedBase

	facing := rng.Uniform(s.src, 0, 2*math.Pi)
	direction := rng.Uniform(s.src, 0, 2*math.Pi)
	turn := rng.Uniform(s.src, s.settings.TurnRateMin, s.settings.TurnRateMax) * rng.Sign(s.src)

	return entity.Hazard{
		BaseEntity: entity.BaseEntity{
			ID:       entity.GenerateID(),
			Position: pos,
			Rotation: facing,
			Active:   true,
		},
		Speed:           speed,
		Tier:            tier,
		Scale:           s.settings.Scale,
		Direction:       direction,
		SpeedMultiplier: multiplier,
		TurnRate:        turn,
		Variant:         s.catalog.Name(s.selector.Sample(s.src)),
	}
}

// edgePosition picks one of the four edges and places a point within one
// spawn unit of it; the other coordinate spans the full extent.
func (s *Spawner) edgePosition() physics.Vector2D {
	side := rng.UniformInt(s.src, 1, 4)
	near := rng.Uniform(s.src, s.settings.SpawnUnit/2, s.settings.SpawnUnit)

	var pos physics.Vector2D
	switch side {
	case 1:
		pos.X = rng.Uniform(s.src, 0, s.bounds.Width)
		pos.Y = near
	case 2:
		pos.X = s.bounds.Width - near
		pos.Y = rng.Uniform(s.src, 0, s.bounds.Height)
	case 3:
		pos.X = rng.Uniform(s.src, 0, s.bounds.Width)
		pos.Y = s.bounds.Height - near
	default:
		pos.X = near
		pos.Y = rng.Uniform(s.src, 0, s.bounds.Height)
	}
	return pos
}

// Split breaks h into fragments. A hazard whose next tier would be 0
// vanishes. Otherwise the first fragment is always emitted and the second
// only when allowGrowth is set. The fragments' tier floors differ: the
// first floors at 0, the second at 1.
func (s *Spawner) Split(h entity.Hazard, allowGrowth bool) []entity.Hazard {
	if h.Tier <= 1 {
		return nil
	}

	children := make([]entity.Hazard, 0, 2)

	a := h
	a.ID = entity.GenerateID()
	a.Speed = -h.Speed * rng.Uniform(s.src, 1, 1.75)
	a.Tier = max(h.Tier-1, 0)
	a.Rotation = -h.Rotation + math.Pi/4
	a.Direction = -h.Direction - math.Pi/4
	a.TurnRate = -h.TurnRate * rng.Uniform(s.src, 1, 2)
	children = append(children, a)

	if allowGrowth {
		b := h
		b.ID = entity.GenerateID()
		b.Speed = -h.Speed * rng.Uniform(s.src, 1, 2)
		b.Tier = max(h.Tier-1, 1)
		b.Rotation = -h.Rotation - math.Pi/4
		b.Direction = -h.Direction + math.Pi/4
		b.TurnRate = h.TurnRate * rng.Uniform(s.src, 1, 3.5)
		children = append(children, b)
	}

	return children
}
