package render

import (
	"log"

	"github.com/erwaqarmalik/studio-sheet/internal/layout"
)

// paint walks the plan page by page through a surface. An image that cannot
// be decoded at this point is logged and skipped; its cell stays empty and
// later placements keep their assigned cells, so the printed sheet shows a
// hole rather than a re-packed grid.
func paint(s Surface, plan *layout.Plan) error {
	for page := 0; page < plan.Pages; page++ {
		if err := s.StartPage(); err != nil {
			return err
		}

		for _, pl := range plan.PlacementsOn(page) {
			img, err := pl.Photo.Pixels()
			if err != nil {
				log.Printf("render: skipping unreadable image %s: %v", pl.Photo.Source, err)
				continue
			}

			r := Rect{X: pl.XCm, Y: pl.YCm, W: pl.WidthCm, H: pl.HeightCm}
			if err := s.DrawImage(img, r); err != nil {
				return err
			}
			s.DrawBorder(r)
		}

		if plan.Params.CutLines {
			for _, seg := range cutSegments(plan) {
				s.DrawDashedLine(seg.A, seg.B, seg.Guide)
			}
		}
	}
	return nil
}
