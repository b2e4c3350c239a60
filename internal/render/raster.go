package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/disintegration/imaging"

	"github.com/erwaqarmalik/studio-sheet/internal/geometry"
	"github.com/erwaqarmalik/studio-sheet/internal/layout"
	"github.com/erwaqarmalik/studio-sheet/internal/photo"
)

// rasterSurface draws onto one full-resolution bitmap per page at the fixed
// print DPI. Pixel coordinates share the plan's top-left origin, so no axis
// adaptation is needed; every cm value is truncated through the same
// conversion the vector side's raster assets use.
type rasterSurface struct {
	pageWPx int
	pageHPx int
	pages   []*image.NRGBA
	current *image.NRGBA
}

func newRasterSurface(pageWCm, pageHCm float64) *rasterSurface {
	return &rasterSurface{
		pageWPx: geometry.CmToPixels(pageWCm, geometry.DPI),
		pageHPx: geometry.CmToPixels(pageHCm, geometry.DPI),
	}
}

func (s *rasterSurface) StartPage() error {
	s.current = imaging.New(s.pageWPx, s.pageHPx, color.White)
	s.pages = append(s.pages, s.current)
	return nil
}

func (s *rasterSurface) DrawImage(img image.Image, r Rect) error {
	px := s.toPixels(r)
	resized := imaging.Resize(img, px.Dx(), px.Dy(), imaging.Lanczos)
	draw.Draw(s.current, px, resized, image.Point{}, draw.Src)
	return nil
}

func (s *rasterSurface) DrawBorder(r Rect) {
	px := s.toPixels(r)
	c := color.NRGBA{A: 255}
	// Four one-pixel edges.
	s.fill(image.Rect(px.Min.X, px.Min.Y, px.Max.X, px.Min.Y+1), c)
	s.fill(image.Rect(px.Min.X, px.Max.Y-1, px.Max.X, px.Max.Y), c)
	s.fill(image.Rect(px.Min.X, px.Min.Y, px.Min.X+1, px.Max.Y), c)
	s.fill(image.Rect(px.Max.X-1, px.Min.Y, px.Max.X, px.Max.Y), c)
}

func (s *rasterSurface) DrawDashedLine(a, b Point, guide Guide) {
	rgb := guideRGB(guide)
	c := color.NRGBA{R: uint8(rgb[0]), G: uint8(rgb[1]), B: uint8(rgb[2]), A: 255}

	ax := geometry.CmToPixels(a.X, geometry.DPI)
	ay := geometry.CmToPixels(a.Y, geometry.DPI)
	bx := geometry.CmToPixels(b.X, geometry.DPI)
	by := geometry.CmToPixels(b.Y, geometry.DPI)

	on := geometry.CmToPixels(dashOnCm, geometry.DPI)
	off := geometry.CmToPixels(dashOffCm, geometry.DPI)

	// All guide segments are axis-aligned.
	if ay == by {
		for x := ax; x < bx; x += on + off {
			end := x + on
			if end > bx {
				end = bx
			}
			s.fill(image.Rect(x, ay, end, ay+1), c)
		}
		return
	}
	for y := ay; y < by; y += on + off {
		end := y + on
		if end > by {
			end = by
		}
		s.fill(image.Rect(ax, y, ax+1, end), c)
	}
}

func (s *rasterSurface) toPixels(r Rect) image.Rectangle {
	x := geometry.CmToPixels(r.X, geometry.DPI)
	y := geometry.CmToPixels(r.Y, geometry.DPI)
	w := geometry.CmToPixels(r.W, geometry.DPI)
	h := geometry.CmToPixels(r.H, geometry.DPI)
	return image.Rect(x, y, x+w, y+h)
}

func (s *rasterSurface) fill(r image.Rectangle, c color.NRGBA) {
	draw.Draw(s.current, r.Intersect(s.current.Bounds()), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// JPEG renders the plan into one JPEG file per page. pagePaths must supply
// one destination per plan page, in page order. Each file is encoded in
// memory and written whole; on any failure the files already written by
// this call are removed so no partial result survives.
func JPEG(plan *layout.Plan, pagePaths []string) ([]string, error) {
	if plan.Pages == 0 {
		return nil, nil
	}
	if len(pagePaths) != plan.Pages {
		return nil, fmt.Errorf("expected %d page paths, got %d", plan.Pages, len(pagePaths))
	}

	s := newRasterSurface(plan.PageWidthCm, plan.PageHeightCm)
	if err := paint(s, plan); err != nil {
		return nil, fmt.Errorf("failed to render pages: %w", err)
	}

	var written []string
	for i, page := range s.pages {
		var buf bytes.Buffer
		if err := photo.EncodeJPEG(&buf, page); err != nil {
			removeAll(written)
			return nil, err
		}
		if err := os.WriteFile(pagePaths[i], buf.Bytes(), 0600); err != nil {
			removeAll(written)
			return nil, fmt.Errorf("failed to write page %d: %w", i+1, err)
		}
		written = append(written, pagePaths[i])
	}
	return written, nil
}

func removeAll(paths []string) {
	for _, p := range paths {
		_ = os.Remove(p)
	}
}
