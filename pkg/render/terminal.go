// pkg/render/terminal.go
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

var (
	styleField     = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleCraft     = styleField.Foreground(tcell.ColorWhite).Bold(true)
	styleMissile   = styleField.Foreground(tcell.ColorYellow)
	styleHUD       = styleField.Foreground(tcell.ColorGreen)
	styleDebug     = styleField.Foreground(tcell.ColorRed)
	styleLabel     = styleField.Foreground(tcell.ColorDarkCyan)
	styleTitle     = styleField.Foreground(tcell.ColorWhite).Bold(true)
	styleMenu      = styleField.Foreground(tcell.ColorGray)
	styleGameOver  = styleField.Foreground(tcell.ColorRed).Bold(true)
	styleGameWon   = styleField.Foreground(tcell.ColorGreen).Bold(true)
	hazardPalette  = []tcell.Color{tcell.ColorSilver, tcell.ColorOlive, tcell.ColorTeal, tcell.ColorPurple, tcell.ColorMaroon}
	hazardGlyphs   = []rune{'.', 'o', 'O', '@'}
	craftGlyphs    = []rune{'>', '\\', 'v', '/', '<', '\\', '^', '/'}
	projectileRune = '*'
)

// TerminalRenderer draws the playfield into a tcell screen, scaling the
// world bounds onto the character grid.
type TerminalRenderer struct {
	screen   tcell.Screen
	bounds   physics.Bounds
	variants map[string]tcell.Style
}

// NewTerminalRenderer creates a terminal renderer for a world of the
// given size on an initialized screen.
func NewTerminalRenderer(screen tcell.Screen, bounds physics.Bounds) *TerminalRenderer {
	return &TerminalRenderer{
		screen:   screen,
		bounds:   bounds,
		variants: make(map[string]tcell.Style),
	}
}

// worldToScreen converts world coordinates to a cell
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	w, h := r.screen.Size()
	x := int(pos.X / r.bounds.Width * float64(w))
	y := int(pos.Y / r.bounds.Height * float64(h))
	return min(max(x, 0), w-1), min(max(y, 0), h-1)
}

// cellsFor returns a world radius in cells along each axis
func (r *TerminalRenderer) cellsFor(radius float64) (int, int) {
	w, h := r.screen.Size()
	return int(radius / r.bounds.Width * float64(w)), int(radius / r.bounds.Height * float64(h))
}

// Clear implements entity.Renderer
func (r *TerminalRenderer) Clear() {
	r.screen.SetStyle(styleField)
	r.screen.Clear()
}

// Present implements entity.Renderer
func (r *TerminalRenderer) Present() {
	r.screen.Show()
}

// RenderCraft implements entity.Renderer. The glyph points along the
// facing in eight steps.
func (r *TerminalRenderer) RenderCraft(craft *entity.Craft) {
	x, y := r.worldToScreen(craft.Position)
	octant := int(math.Round(normalizeAngle(craft.Rotation)/(math.Pi/4))) % len(craftGlyphs)
	r.screen.SetContent(x, y, craftGlyphs[octant], nil, styleCraft)
}

// RenderHazard implements entity.Renderer. Larger hazards fill an
// ellipse of cells matching their radius.
func (r *TerminalRenderer) RenderHazard(hazard *entity.Hazard) {
	x, y := r.worldToScreen(hazard.Position)
	style := r.variantStyle(hazard.Variant)
	glyph := hazardGlyphs[min(max(hazard.Tier, 0), len(hazardGlyphs)-1)]

	rx, ry := r.cellsFor(hazard.Radius())
	w, h := r.screen.Size()
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			if rx > 0 && ry > 0 {
				nx, ny := float64(dx)/float64(rx), float64(dy)/float64(ry)
				if nx*nx+ny*ny > 1 {
					continue
				}
			}
			cx, cy := (x+dx+w)%w, (y+dy+h)%h
			r.screen.SetContent(cx, cy, glyph, nil, style)
		}
	}
}

// RenderProjectile implements entity.Renderer
func (r *TerminalRenderer) RenderProjectile(projectile *entity.Projectile) {
	x, y := r.worldToScreen(projectile.Position)
	r.screen.SetContent(x, y, projectileRune, nil, styleMissile)
}

// variantStyle gives each variant a stable color in order of first sight
func (r *TerminalRenderer) variantStyle(variant string) tcell.Style {
	if s, ok := r.variants[variant]; ok {
		return s
	}
	s := styleField.Foreground(hazardPalette[len(r.variants)%len(hazardPalette)])
	r.variants[variant] = s
	return s
}

// Frame draws one complete frame: the field during a run, the menu
// otherwise, with the HUD and debug labels on top.
func (r *TerminalRenderer) Frame(g *engine.Game, fps int) {
	state := g.GetGameState()
	if !state.Started {
		r.Clear()
		r.drawMenu(state)
		r.Present()
		return
	}

	r.Clear()
	DrawEntities(r, g)
	r.drawOverlay(state, fps)
	r.Present()
}

func (r *TerminalRenderer) drawOverlay(state *engine.GameState, fps int) {
	if state.Debug {
		for _, h := range state.Hazards {
			x, y := r.worldToScreen(h.Position)
			r.drawLines(x+1, y, h.Labels, styleLabel)
		}
		x, y := r.worldToScreen(state.Craft.Position)
		r.drawLines(x+1, y, state.Craft.Labels, styleLabel)
	}

	for i, line := range state.HUDLines(fps) {
		style := styleHUD
		if i >= 4 {
			style = styleDebug
		}
		r.drawText(0, i, line, style)
	}
}

func (r *TerminalRenderer) drawMenu(state *engine.GameState) {
	w, h := r.screen.Size()
	lines := state.MenuLines()
	top := h/2 - len(lines)
	for i, line := range lines {
		style := styleMenu
		switch {
		case line == "GAME OVER":
			style = styleGameOver
		case line == "YOU WIN":
			style = styleGameWon
		case line == "ASTEROIDS":
			style = styleTitle
		}
		r.drawText((w-len(line))/2, top+2*i, line, style)
	}
}

func (r *TerminalRenderer) drawLines(x, y int, lines []string, style tcell.Style) {
	for i, line := range lines {
		r.drawText(x, y+i, line, style)
	}
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	w, h := r.screen.Size()
	if y < 0 || y >= h {
		return
	}
	for i, ch := range []rune(text) {
		if x+i < 0 || x+i >= w {
			continue
		}
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
