// Package geometry converts physical sheet measurements (centimeters) into
// the pixel and point spaces the two renderers draw in, and computes how many
// photos of a given size tile onto a page.
package geometry

const (
	// DPI is the fixed print resolution for raster output.
	DPI = 300

	cmPerInch = 2.54

	// PointsPerCm converts centimeters to PDF points (72 pt per inch).
	PointsPerCm = 72.0 / cmPerInch
)

// CmToPixels converts a physical measurement to pixels at the given DPI.
// The result is truncated, not rounded: both renderers must floor
// consistently so vector and raster geometry agree to within one pixel.
func CmToPixels(valueCm float64, dpi int) int {
	return int(valueCm * float64(dpi) / cmPerInch)
}

// CmToPoints converts a physical measurement to PDF points.
func CmToPoints(valueCm float64) float64 {
	return valueCm * PointsPerCm
}

// Grid is the columns x rows tiling of one page's usable area.
type Grid struct {
	Columns int
	Rows    int
}

// Cells returns the number of photo slots per page.
func (g Grid) Cells() int {
	return g.Columns * g.Rows
}

// ComputeGrid returns how many photos of photoW x photoH cm fit on a page
// once margins are subtracted. N photos need N*size + (N-1)*gap space;
// adding one gap to the usable length before dividing avoids the fencepost
// error at N=1. Both axes are floored at 1: a photo that does not fit is
// placed anyway and may overflow the margins.
func ComputeGrid(pageWCm, pageHCm, marginCm, colGapCm, rowGapCm, photoWCm, photoHCm float64) Grid {
	usableW := pageWCm - 2*marginCm
	usableH := pageHCm - 2*marginCm

	cols := int((usableW + colGapCm) / (photoWCm + colGapCm))
	rows := int((usableH + rowGapCm) / (photoHCm + rowGapCm))

	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return Grid{Columns: cols, Rows: rows}
}

// CenteringOffset distributes the slack between the usable area and the grid
// extent evenly on both sides. Negative when the grid overflows the usable
// area, which is permitted.
func CenteringOffset(usableCm, extentCm float64) float64 {
	return (usableCm - extentCm) / 2
}

// GridExtent returns the total length of n photos plus the n-1 gaps between
// them, in cm.
func GridExtent(n int, photoCm, gapCm float64) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*photoCm + float64(n-1)*gapCm
}
