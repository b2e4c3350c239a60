// Package photo holds the per-photograph data model and the image transforms
// applied before layout: aspect-ratio cropping and background compositing.
package photo

import (
	_ "embed"
	"image"

	"gopkg.in/yaml.v3"
)

// Bounds for user-supplied values. Custom sizes outside the cm range and
// copy counts outside the copies range are clamped by the composition root
// before a Spec is built.
const (
	MinSizeCm = 1.0
	MaxSizeCm = 20.0

	MinCopies     = 1
	MaxCopies     = 100
	DefaultCopies = 6
)

// Spec describes one photograph and how it should appear on the sheet.
// Image carries the decoded (and possibly cropped or composited) pixels;
// when nil, renderers fall back to decoding Source on demand. A Spec is
// immutable during layout and rendering.
type Spec struct {
	Source   string
	Image    image.Image
	WidthCm  float64
	HeightCm float64
	Copies   int
}

// Pixels returns the in-memory image, decoding the source file on first use.
func (s *Spec) Pixels() (image.Image, error) {
	if s.Image != nil {
		return s.Image, nil
	}
	img, err := Load(s.Source)
	if err != nil {
		return nil, err
	}
	s.Image = img
	return img, nil
}

// Preset is a named physical photo size from the fixed catalog.
type Preset struct {
	ID       string  `yaml:"id"`
	WidthCm  float64 `yaml:"width_cm"`
	HeightCm float64 `yaml:"height_cm"`
	Label    string  `yaml:"label"`
	Category string  `yaml:"category"`
}

//go:embed presets.yaml
var presetsYAML []byte

type presetCatalog struct {
	Default string   `yaml:"default"`
	Presets []Preset `yaml:"presets"`
}

var presets presetCatalog

func init() {
	if err := yaml.Unmarshal(presetsYAML, &presets); err != nil {
		// Embedded file, cannot fail in practice.
		panic("failed to unmarshal embedded presets.yaml: " + err.Error())
	}
}

// Presets returns the size catalog in declaration order.
func Presets() []Preset {
	out := make([]Preset, len(presets.Presets))
	copy(out, presets.Presets)
	return out
}

// DefaultPresetID returns the preset applied when no size is requested.
func DefaultPresetID() string {
	return presets.Default
}

// LookupPreset finds a preset by id.
func LookupPreset(id string) (Preset, bool) {
	for _, p := range presets.Presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}
