// pkg/assets/catalog.go
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyCatalog is returned when a catalog would hold no variants.
var ErrEmptyCatalog = errors.New("assets: catalog has no variants")

// imageExts lists the file extensions picked up by a directory scan.
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
}

// Catalog is the ordered list of hazard variant identifiers. The first
// entry is the common variant; the rest are rare.
type Catalog struct {
	variants []string
}

// Manifest is the on-disk YAML form of a catalog.
type Manifest struct {
	Variants []ManifestEntry `yaml:"variants"`
}

// ManifestEntry names one variant.
type ManifestEntry struct {
	Name string `yaml:"name"`
	Note string `yaml:"note,omitempty"`
}

// NewCatalog creates a catalog from variant identifiers. Blank names are
// dropped.
func NewCatalog(variants []string) (*Catalog, error) {
	c := &Catalog{variants: make([]string, 0, len(variants))}
	for _, v := range variants {
		if v = strings.TrimSpace(v); v != "" {
			c.variants = append(c.variants, v)
		}
	}
	if len(c.variants) == 0 {
		return nil, ErrEmptyCatalog
	}
	return c, nil
}

// Load builds a catalog from path: a directory is scanned for images,
// any other file is read as a YAML manifest.
func Load(path string) (*Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat asset path: %w", err)
	}
	if info.IsDir() {
		return LoadDir(path)
	}
	return LoadManifest(path)
}

// LoadDir collects the image files directly inside dir, in lexical order.
func LoadDir(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read asset dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			names = append(names, filepath.Join(dir, e.Name()))
		}
	}

	c, err := NewCatalog(names)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	return c, nil
}

// LoadManifest loads a YAML variant manifest.
func LoadManifest(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read asset manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse asset manifest: %w", err)
	}

	names := make([]string, 0, len(m.Variants))
	for _, v := range m.Variants {
		names = append(names, v.Name)
	}
	c, err := NewCatalog(names)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return c, nil
}

// Default returns the built-in catalog used when no assets are supplied.
func Default() *Catalog {
	return &Catalog{variants: []string{"rock", "rock_cracked", "rock_crystal", "rock_ice"}}
}

// Len returns the number of variants.
func (c *Catalog) Len() int {
	return len(c.variants)
}

// Name returns the identifier at index i.
func (c *Catalog) Name(i int) string {
	return c.variants[i]
}

// Names returns a copy of all identifiers.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.variants...)
}

// Stem returns the base file name of a variant without its extension,
// as shown in debug labels.
func Stem(variant string) string {
	base := filepath.Base(variant)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
