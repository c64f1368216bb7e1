// pkg/engine/state.go
package engine

import (
	"fmt"
	"math"

	"github.com/opd-ai/go-asteroids/pkg/assets"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// GameState represents a read-only snapshot of the game for presentation
type GameState struct {
	Tick        uint64
	Score       int
	Lives       int
	Population  int
	Started     bool
	Over        bool
	Won         bool
	Debug       bool
	Dilation    float64
	Bounds      physics.Bounds
	Craft       CraftState
	Hazards     []HazardState
	Projectiles []ProjectileState
}

// CraftState represents a snapshot of the craft
type CraftState struct {
	ID       entity.ID
	Position physics.Vector2D
	Rotation float64
	Radius   float64
	Size     float64
	Speed    float64
	Labels   []string
}

// HazardState represents a snapshot of a hazard
type HazardState struct {
	ID       entity.ID
	Position physics.Vector2D
	Rotation float64
	Radius   float64
	Tier     int
	Variant  string
	Labels   []string
}

// ProjectileState represents a snapshot of a projectile
type ProjectileState struct {
	ID       entity.ID
	Position physics.Vector2D
	Rotation float64
	Radius   float64
}

// GetGameState returns a snapshot of the current game state. Tier-0
// hazards and inactive projectiles are left out. Debug labels are only
// filled in while debug mode is on.
func (g *Game) GetGameState() *GameState {
	state := &GameState{
		Tick:        g.Tick,
		Score:       g.Score,
		Lives:       g.Lives,
		Population:  g.Population,
		Started:     g.Started,
		Over:        g.Over,
		Won:         g.Won,
		Debug:       g.Debug,
		Dilation:    g.Dilation,
		Bounds:      g.bounds,
		Craft:       g.craftState(),
		Hazards:     make([]HazardState, 0, len(g.Hazards)),
		Projectiles: make([]ProjectileState, 0, len(g.Projectiles)),
	}

	for i := range g.Hazards {
		h := &g.Hazards[i]
		if h.Destroyed() {
			continue
		}
		hs := HazardState{
			ID:       h.ID,
			Position: h.Position,
			Rotation: h.Rotation,
			Radius:   h.Radius(),
			Tier:     h.Tier,
			Variant:  h.Variant,
		}
		if g.Debug {
			hs.Labels = HazardLabels(h)
		}
		state.Hazards = append(state.Hazards, hs)
	}

	for i := range g.Projectiles {
		p := &g.Projectiles[i]
		if !p.Active {
			continue
		}
		state.Projectiles = append(state.Projectiles, ProjectileState{
			ID:       p.ID,
			Position: p.Position,
			Rotation: p.Rotation,
			Radius:   p.Radius,
		})
	}

	return state
}

func (g *Game) craftState() CraftState {
	c := g.Craft
	cs := CraftState{
		ID:       c.ID,
		Position: c.Position,
		Rotation: c.Rotation,
		Radius:   c.Radius(),
		Size:     c.Stats.Size,
		Speed:    c.Speed,
	}
	if g.Debug {
		cs.Labels = CraftLabels(c)
	}
	return cs
}

// HazardLabels returns the debug annotation lines for a hazard.
func HazardLabels(h *entity.Hazard) []string {
	side := "L"
	if math.Copysign(1, h.TurnRate) > 0 {
		side = "R"
	}
	return []string{
		fmt.Sprintf("x:%.2f y:%.2f", h.Position.X, h.Position.Y),
		fmt.Sprintf("Size:%d", h.Tier),
		fmt.Sprintf("Speed:%.2fpx/s", h.Speed*h.SpeedMultiplier),
		fmt.Sprintf("Rotation:%s|%.3frad", side, h.Rotation),
		fmt.Sprintf("Turn Rate:%.3frad/s", h.TurnRate),
		fmt.Sprintf("Direction:%.3frad", h.Direction),
		fmt.Sprintf("Speed modifier:%.2f%%", h.SpeedMultiplier*80),
		fmt.Sprintf("Variant:%s", assets.Stem(h.Variant)),
	}
}

// CraftLabels returns the debug annotation lines for the craft.
func CraftLabels(c *entity.Craft) []string {
	return []string{
		fmt.Sprintf("x:%.2f y:%.2f", c.Position.X, c.Position.Y),
		fmt.Sprintf("Velocity:%.2fpx/s", c.Speed),
		fmt.Sprintf("Rotation:%.2frad", c.Rotation),
	}
}

// HUDLines returns the status lines shown during a run. fps is measured
// by the driver.
func (s *GameState) HUDLines(fps int) []string {
	lines := []string{
		fmt.Sprintf("Hazards:%d", s.Population),
		fmt.Sprintf("Score:%d", s.Score),
		fmt.Sprintf("Lives:%d", s.Lives),
		fmt.Sprintf("FPS:%d", fps),
	}
	if s.Debug {
		lines = append(lines,
			fmt.Sprintf("Cycle:%d", s.Tick),
			fmt.Sprintf("Speed factor:%gx", s.Dilation),
		)
	}
	return lines
}

// MenuLines returns the menu text, headline first when a run just ended.
func (s *GameState) MenuLines() []string {
	var lines []string
	switch {
	case s.Over:
		lines = append(lines, "GAME OVER")
	case s.Won:
		lines = append(lines, "YOU WIN")
	}
	return append(lines, "ASTEROIDS", "Press ENTER to start", "Press Esc to quit")
}
