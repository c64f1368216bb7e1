// pkg/render/engo/hud.go
package engo

import (
	"bytes"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/opd-ai/go-asteroids/pkg/engine"
)

const (
	fontURL      = "goregular.ttf"
	hudFontSize  = 24
	menuFontSize = 36
	tagFontSize  = 12
	hudLineStep  = 28
	hudMargin    = 10
)

var (
	hudColor      = color.RGBA{0, 255, 0, 255}
	debugColor    = color.RGBA{255, 60, 60, 255}
	labelColor    = color.RGBA{120, 200, 255, 255}
	titleColor    = color.RGBA{255, 255, 255, 255}
	menuColor     = color.RGBA{160, 160, 160, 255}
	gameOverColor = color.RGBA{255, 0, 0, 255}
	gameWonColor  = color.RGBA{0, 255, 0, 255}
)

// hudLine is one positioned line of HUD text
type hudLine struct {
	Text  string
	X, Y  float32
	Size  int
	Color color.Color
}

// HUDSystem draws the status lines, debug labels and menu text
type HUDSystem struct {
	sink  SpriteSink
	fonts map[int]*common.Font
	scale float32

	state *engine.GameState
	fps   int
	lines []hudLine
	slots []*sprite
}

// NewHUDSystem creates a new HUD system
func NewHUDSystem(sink SpriteSink, scale float32) *HUDSystem {
	if scale <= 0 {
		scale = 1
	}
	return &HUDSystem{
		sink:  sink,
		scale: scale,
		fonts: make(map[int]*common.Font),
	}
}

// LoadFonts registers the Go font with engo and builds the atlases. It
// needs a GL context.
func (hud *HUDSystem) LoadFonts() error {
	if err := engo.Files.LoadReaderData(fontURL, bytes.NewReader(goregular.TTF)); err != nil {
		return err
	}
	for _, size := range []int{hudFontSize, menuFontSize, tagFontSize} {
		fnt := &common.Font{URL: fontURL, FG: color.White, Size: float64(size)}
		if err := fnt.CreatePreloaded(); err != nil {
			return err
		}
		hud.fonts[size] = fnt
	}
	return nil
}

// Remove satisfies the ecs.System interface
func (hud *HUDSystem) Remove(basic ecs.BasicEntity) {}

// UpdateGameState sets the snapshot and fps shown on the next Update
func (hud *HUDSystem) UpdateGameState(state *engine.GameState, fps int) {
	hud.state = state
	hud.fps = fps
}

// Update lays out the HUD and syncs the text sprites
func (hud *HUDSystem) Update(dt float32) {
	if hud.state == nil {
		return
	}
	hud.lines = layoutHUD(hud.state, hud.fps, hud.scale)

	for i, line := range hud.lines {
		if i == len(hud.slots) {
			hud.slots = append(hud.slots, hud.newSlot())
		}
		s := hud.slots[i]
		s.Drawable = common.Text{Font: hud.fonts[line.Size], Text: line.Text}
		s.Color = line.Color
		s.Position = engo.Point{X: line.X, Y: line.Y}
		s.Hidden = false
	}
	for _, s := range hud.slots[len(hud.lines):] {
		s.Hidden = true
	}
}

// Lines returns the text laid out by the last Update.
func (hud *HUDSystem) Lines() []string {
	out := make([]string, len(hud.lines))
	for i, l := range hud.lines {
		out[i] = l.Text
	}
	return out
}

func (hud *HUDSystem) newSlot() *sprite {
	s := &sprite{BasicEntity: ecs.NewBasic()}
	s.RenderComponent.SetShader(common.HUDShader)
	s.RenderComponent.SetZIndex(zHUD)
	s.Scale = engo.Point{X: 1, Y: 1}
	hud.sink.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
	return s
}

// layoutHUD places the menu when no run is active, otherwise the status
// lines in the top-left corner plus the debug labels beside each entity.
func layoutHUD(state *engine.GameState, fps int, scale float32) []hudLine {
	var lines []hudLine

	if !state.Started {
		w := float32(state.Bounds.Width) * scale
		h := float32(state.Bounds.Height) * scale
		menu := state.MenuLines()
		top := h/2 - float32(len(menu))*menuFontSize
		for i, text := range menu {
			c := menuColor
			switch text {
			case "GAME OVER":
				c = gameOverColor
			case "YOU WIN":
				c = gameWonColor
			case "ASTEROIDS":
				c = titleColor
			}
			lines = append(lines, hudLine{
				Text:  text,
				X:     w/2 - float32(len(text))*menuFontSize/4,
				Y:     top + float32(i)*menuFontSize*1.5,
				Size:  menuFontSize,
				Color: c,
			})
		}
		return lines
	}

	for i, text := range state.HUDLines(fps) {
		c := hudColor
		if i >= 4 {
			c = debugColor
		}
		lines = append(lines, hudLine{
			Text:  text,
			X:     hudMargin,
			Y:     hudMargin + float32(i)*hudLineStep,
			Size:  hudFontSize,
			Color: c,
		})
	}

	if state.Debug {
		tag := func(x, y float64, radius float64, labels []string) {
			for i, text := range labels {
				lines = append(lines, hudLine{
					Text:  text,
					X:     float32(x+radius) * scale,
					Y:     float32(y)*scale + float32(i)*tagFontSize,
					Size:  tagFontSize,
					Color: labelColor,
				})
			}
		}
		for _, h := range state.Hazards {
			tag(h.Position.X, h.Position.Y, h.Radius, h.Labels)
		}
		tag(state.Craft.Position.X, state.Craft.Position.Y, state.Craft.Radius, state.Craft.Labels)
	}
	return lines
}
