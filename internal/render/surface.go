// Package render paints a layout plan onto an output medium. Both renderers
// run the exact same painting algorithm; they differ only in the Surface
// they draw through, so the geometry lives in one place.
package render

import "image"

// Point and Rect are in the plan's coordinate space: centimeters, top-left
// origin. Each surface translates into its own units.
type Point struct {
	X, Y float64
}

type Rect struct {
	X, Y, W, H float64
}

// Guide classifies a dashed segment so surfaces can color registration
// marks by the axis they denote. Full-length cut lines are neutral.
type Guide int

const (
	GuideNeutral Guide = iota
	GuideHorizontal
	GuideVertical
)

// Surface is the capability set a page medium must provide. StartPage opens
// a fresh blank page; drawing calls apply to the most recently started one.
type Surface interface {
	StartPage() error
	DrawImage(img image.Image, r Rect) error
	DrawBorder(r Rect)
	DrawDashedLine(a, b Point, guide Guide)
}

// Decoration measurements, shared by both surfaces so the printed pattern
// is identical. Values are physical; surfaces convert to their own units.
const (
	borderWidthPt  = 0.3
	cutLineWidthPt = 0.4

	dashOnCm  = 0.12
	dashOffCm = 0.08

	// Half-length of each crosshair arm, also the outward offset of the
	// outer-edge registration marks from the grid boundary.
	crossArmCm = 0.18
)

// Registration mark colors: one per axis, per surface agreement.
var (
	guideHorizontalRGB = [3]int{200, 32, 32}
	guideVerticalRGB   = [3]int{32, 32, 200}
	guideNeutralRGB    = [3]int{0, 0, 0}
)

func guideRGB(g Guide) [3]int {
	switch g {
	case GuideHorizontal:
		return guideHorizontalRGB
	case GuideVertical:
		return guideVerticalRGB
	default:
		return guideNeutralRGB
	}
}
