// pkg/render/engo/assets.go
package engo

import (
	"image"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asteroids/pkg/assets"
	"github.com/opd-ai/go-asteroids/pkg/rng"
)

// spriteSize is the edge of a generated hazard texture in pixels.
const spriteSize = 64

var variantTints = []color.NRGBA{
	{170, 170, 170, 255},
	{150, 120, 90, 255},
	{120, 200, 220, 255},
	{200, 230, 255, 255},
	{190, 90, 200, 255},
}

// AssetManager holds one hazard drawable per catalog variant. Variants
// naming an image file are loaded from disk; the rest get a generated
// rock texture.
type AssetManager struct {
	hazardSprites map[string]common.Drawable
	fallback      common.Drawable
}

// NewAssetManager creates a new asset manager
func NewAssetManager() *AssetManager {
	return &AssetManager{
		hazardSprites: make(map[string]common.Drawable),
		fallback:      common.Circle{},
	}
}

// LoadAssets builds a drawable for every variant in the catalog. It needs
// a GL context, so call it from Scene.Preload or later.
func (am *AssetManager) LoadAssets(catalog *assets.Catalog) error {
	for i, variant := range catalog.Names() {
		if isImageFile(variant) {
			if err := engo.Files.Load(variant); err != nil {
				return err
			}
			tex, err := common.LoadedSprite(variant)
			if err != nil {
				return err
			}
			am.hazardSprites[variant] = tex
			continue
		}
		img := rockImage(spriteSize, variantTints[i%len(variantTints)], uint64(i+1))
		am.hazardSprites[variant] = common.NewTextureSingle(common.NewImageObject(img))
	}
	return nil
}

// GetHazardSprite returns the drawable for a variant, or a plain circle
// for one that was never loaded.
func (am *AssetManager) GetHazardSprite(variant string) common.Drawable {
	if sprite, exists := am.hazardSprites[variant]; exists {
		return sprite
	}
	return am.fallback
}

func isImageFile(variant string) bool {
	switch strings.ToLower(filepath.Ext(variant)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp":
		return true
	}
	return false
}

// rockImage draws a lumpy disc of the given tint. The outline is a
// circle with a few random bumps so variants look distinct.
func rockImage(size int, tint color.NRGBA, seed uint64) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	src := rng.New(seed)

	const lumps = 9
	var radii [lumps]float64
	for i := range radii {
		radii[i] = rng.Uniform(src, 0.8, 1.0)
	}

	c := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)+0.5-c, float64(y)+0.5-c
			dist := math.Hypot(dx, dy) / c
			angle := math.Atan2(dy, dx) + math.Pi
			pos := angle / (2 * math.Pi) * lumps
			i := int(pos) % lumps
			frac := pos - math.Floor(pos)
			edge := radii[i]*(1-frac) + radii[(i+1)%lumps]*frac
			if dist > edge {
				continue
			}
			shade := 1 - 0.35*dist
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(float64(tint.R) * shade),
				G: uint8(float64(tint.G) * shade),
				B: uint8(float64(tint.B) * shade),
				A: 255,
			})
		}
	}
	return img
}
