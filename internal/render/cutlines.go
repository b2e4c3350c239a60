package render

import (
	"github.com/erwaqarmalik/studio-sheet/internal/geometry"
	"github.com/erwaqarmalik/studio-sheet/internal/layout"
)

// segment is one dashed guide line in page coordinates.
type segment struct {
	A, B  Point
	Guide Guide
}

// cutSegments computes the decoration for one page of the plan. The grid is
// identical on every page, so the same segments are drawn on each.
func cutSegments(plan *layout.Plan) []segment {
	switch plan.Params.CutLineStyle {
	case layout.CutLineCrosshair:
		return crosshairSegments(plan)
	default:
		return fullSegments(plan)
	}
}

// fullSegments: dashed straight lines spanning the full grid extent at each
// internal row/column boundary, centered in the gap. A grid of C columns has
// C-1 vertical lines; R rows have R-1 horizontal lines.
func fullSegments(plan *layout.Plan) []segment {
	stepX := plan.PhotoWidthCm + plan.Params.ColGapCm
	stepY := plan.PhotoHeightCm + plan.Params.RowGapCm
	gridW := geometry.GridExtent(plan.Grid.Columns, plan.PhotoWidthCm, plan.Params.ColGapCm)
	gridH := geometry.GridExtent(plan.Grid.Rows, plan.PhotoHeightCm, plan.Params.RowGapCm)

	var segs []segment
	for c := 1; c < plan.Grid.Columns; c++ {
		x := plan.OriginXCm + float64(c)*stepX - plan.Params.ColGapCm/2
		segs = append(segs, segment{
			A:     Point{X: x, Y: plan.OriginYCm},
			B:     Point{X: x, Y: plan.OriginYCm + gridH},
			Guide: GuideNeutral,
		})
	}
	for r := 1; r < plan.Grid.Rows; r++ {
		y := plan.OriginYCm + float64(r)*stepY - plan.Params.RowGapCm/2
		segs = append(segs, segment{
			A:     Point{X: plan.OriginXCm, Y: y},
			B:     Point{X: plan.OriginXCm + gridW, Y: y},
			Guide: GuideNeutral,
		})
	}
	return segs
}

// crosshairSegments: short dashed registration marks at every grid-line
// intersection. Internal boundaries sit centered in their gaps; the outer
// boundaries sit just outside the grid edge. The four absolute outer
// corners are excluded. Each mark is two perpendicular arms, the horizontal
// arm colored for the horizontal axis and the vertical arm for the
// vertical axis.
func crosshairSegments(plan *layout.Plan) []segment {
	gridW := geometry.GridExtent(plan.Grid.Columns, plan.PhotoWidthCm, plan.Params.ColGapCm)
	gridH := geometry.GridExtent(plan.Grid.Rows, plan.PhotoHeightCm, plan.Params.RowGapCm)

	xs := boundaryCoords(plan.OriginXCm, gridW, plan.Grid.Columns, plan.PhotoWidthCm, plan.Params.ColGapCm)
	ys := boundaryCoords(plan.OriginYCm, gridH, plan.Grid.Rows, plan.PhotoHeightCm, plan.Params.RowGapCm)

	var segs []segment
	for i, x := range xs {
		for j, y := range ys {
			outerX := i == 0 || i == len(xs)-1
			outerY := j == 0 || j == len(ys)-1
			if outerX && outerY {
				continue
			}
			segs = append(segs,
				segment{
					A:     Point{X: x - crossArmCm, Y: y},
					B:     Point{X: x + crossArmCm, Y: y},
					Guide: GuideHorizontal,
				},
				segment{
					A:     Point{X: x, Y: y - crossArmCm},
					B:     Point{X: x, Y: y + crossArmCm},
					Guide: GuideVertical,
				},
			)
		}
	}
	return segs
}

// boundaryCoords returns the n+1 grid-line coordinates along one axis:
// the outer edge pushed outward, the n-1 internal gap centers, and the
// opposite outer edge pushed outward.
func boundaryCoords(origin, extent float64, n int, photoCm, gapCm float64) []float64 {
	coords := make([]float64, 0, n+1)
	coords = append(coords, origin-crossArmCm)
	for i := 1; i < n; i++ {
		coords = append(coords, origin+float64(i)*(photoCm+gapCm)-gapCm/2)
	}
	coords = append(coords, origin+extent+crossArmCm)
	return coords
}
