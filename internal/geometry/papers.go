package geometry

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed papers.yaml
var papersYAML []byte

// PaperSize is one entry of the fixed paper catalog.
type PaperSize struct {
	ID       string  `yaml:"id"`
	WidthCm  float64 `yaml:"width_cm"`
	HeightCm float64 `yaml:"height_cm"`
}

type paperCatalog struct {
	Default string      `yaml:"default"`
	Papers  []PaperSize `yaml:"papers"`
}

var catalog paperCatalog

func init() {
	if err := yaml.Unmarshal(papersYAML, &catalog); err != nil {
		// Embedded file, cannot fail in practice.
		panic("failed to unmarshal embedded papers.yaml: " + err.Error())
	}
}

// PaperSizes returns the catalog in declaration order.
func PaperSizes() []PaperSize {
	out := make([]PaperSize, len(catalog.Papers))
	copy(out, catalog.Papers)
	return out
}

// DefaultPaperID returns the identifier used when an unknown paper size is
// requested.
func DefaultPaperID() string {
	return catalog.Default
}

// Orientation values accepted by ResolvePaperSize. Anything other than
// "landscape" is treated as portrait.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// ResolvePaperSize looks up a named paper size and applies the orientation
// transform, returning page dimensions in cm. An unknown id resolves to the
// catalog default (A4) rather than failing; unknown ids come from lenient
// upstream form handling and a best-effort sheet beats a hard error.
func ResolvePaperSize(paperID, orientation string) (widthCm, heightCm float64) {
	size := catalog.Papers[0]
	found := false
	for _, p := range catalog.Papers {
		if p.ID == paperID {
			size = p
			found = true
			break
		}
	}
	if !found {
		for _, p := range catalog.Papers {
			if p.ID == catalog.Default {
				size = p
				break
			}
		}
	}

	w, h := size.WidthCm, size.HeightCm
	if orientation == OrientationLandscape {
		w, h = h, w
	}
	return w, h
}
