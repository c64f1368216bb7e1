// pkg/render/engo/renderer.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Z layers
const (
	zHazard     = 1
	zProjectile = 2
	zCraft      = 3
	zHUD        = 10
)

// SpriteSink receives and drops drawable entities. common.RenderSystem
// satisfies it.
type SpriteSink interface {
	Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent)
	Remove(basic ecs.BasicEntity)
}

// sprite is one drawable game entity
type sprite struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
	seen bool
}

// EngoRenderer implements entity.Renderer by keeping one sprite per live
// game entity. Sprites not rendered between Clear and Present are
// removed from the sink.
type EngoRenderer struct {
	sink   SpriteSink
	assets *AssetManager
	scale  float32

	sprites map[entity.ID]*sprite
}

// NewEngoRenderer creates a new Engo-based renderer. scale converts world
// units to screen pixels.
func NewEngoRenderer(sink SpriteSink, assets *AssetManager, scale float32) *EngoRenderer {
	if assets == nil {
		assets = NewAssetManager()
	}
	if scale <= 0 {
		scale = 1
	}
	return &EngoRenderer{
		sink:    sink,
		assets:  assets,
		scale:   scale,
		sprites: make(map[entity.ID]*sprite),
	}
}

// RenderCraft implements entity.Renderer
func (r *EngoRenderer) RenderCraft(craft *entity.Craft) {
	size := float32(craft.Radius()*2) * r.scale
	s := r.getOrCreate(craft.GetID(), func() *sprite {
		return r.newSprite(common.Triangle{TriangleType: common.TriangleIsosceles}, color.White, zCraft)
	})
	// The triangle's apex points up; facing 0 is +X.
	r.place(s, craft.Position, size, size, craft.Rotation+halfPi)
}

// RenderHazard implements entity.Renderer
func (r *EngoRenderer) RenderHazard(hazard *entity.Hazard) {
	size := float32(hazard.Radius()*2) * r.scale
	s := r.getOrCreate(hazard.GetID(), func() *sprite {
		return r.newSprite(r.assets.GetHazardSprite(hazard.Variant), color.White, zHazard)
	})
	r.place(s, hazard.Position, size, size, hazard.Rotation)
}

// RenderProjectile implements entity.Renderer
func (r *EngoRenderer) RenderProjectile(projectile *entity.Projectile) {
	size := float32(projectile.Radius*2) * r.scale
	s := r.getOrCreate(projectile.GetID(), func() *sprite {
		return r.newSprite(common.Circle{}, color.RGBA{255, 220, 0, 255}, zProjectile)
	})
	r.place(s, projectile.Position, size, size, projectile.Rotation)
}

// Clear implements entity.Renderer
func (r *EngoRenderer) Clear() {
	for _, s := range r.sprites {
		s.seen = false
	}
}

// Present implements entity.Renderer. Sprites whose entity was not drawn
// this frame are dropped.
func (r *EngoRenderer) Present() {
	for id, s := range r.sprites {
		if !s.seen {
			r.sink.Remove(s.BasicEntity)
			delete(r.sprites, id)
		}
	}
}

// Len returns the number of live sprites.
func (r *EngoRenderer) Len() int {
	return len(r.sprites)
}

func (r *EngoRenderer) getOrCreate(id entity.ID, create func() *sprite) *sprite {
	s, exists := r.sprites[id]
	if !exists {
		s = create()
		r.sprites[id] = s
		r.sink.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
	}
	s.seen = true
	return s
}

func (r *EngoRenderer) newSprite(drawable common.Drawable, c color.Color, z float32) *sprite {
	s := &sprite{BasicEntity: ecs.NewBasic()}
	s.RenderComponent = common.RenderComponent{Drawable: drawable, Color: c}
	s.RenderComponent.SetZIndex(z)
	return s
}

// place sizes the sprite and centers it on the world position
func (r *EngoRenderer) place(s *sprite, pos physics.Vector2D, w, h float32, rotation float64) {
	s.Width, s.Height = w, h
	if tex, ok := s.Drawable.(common.Texture); ok && tex.Width() > 0 {
		s.Scale = engo.Point{X: w / tex.Width(), Y: h / tex.Height()}
	} else if tex, ok := s.Drawable.(*common.Texture); ok && tex.Width() > 0 {
		s.Scale = engo.Point{X: w / tex.Width(), Y: h / tex.Height()}
	} else {
		s.Scale = engo.Point{X: 1, Y: 1}
	}
	s.Rotation = float32(rotation * radToDeg)
	s.SetCenter(r.worldToScreen(pos))
}

// worldToScreen converts world coordinates to screen coordinates
func (r *EngoRenderer) worldToScreen(worldPos physics.Vector2D) engo.Point {
	return engo.Point{
		X: float32(worldPos.X) * r.scale,
		Y: float32(worldPos.Y) * r.scale,
	}
}

const (
	halfPi   = 1.5707963267948966
	radToDeg = 57.29577951308232
)
