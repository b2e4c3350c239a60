// Package layout expands photo specs into absolute per-page placements.
// Coordinates are centimeters with a top-left origin; renderers translate
// them into their own unit and axis conventions.
package layout

import (
	"log"
	"os"

	"github.com/erwaqarmalik/studio-sheet/internal/geometry"
	"github.com/erwaqarmalik/studio-sheet/internal/photo"
)

// CutLineStyle selects the cut guide decoration drawn between photos.
type CutLineStyle string

const (
	CutLineFull      CutLineStyle = "full"
	CutLineCrosshair CutLineStyle = "crosshair"
)

// Parameters is everything a generation request supplies once; it is passed
// explicitly through the pipeline rather than read from package state.
type Parameters struct {
	PaperSize    string
	Orientation  string
	MarginCm     float64
	ColGapCm     float64
	RowGapCm     float64
	CutLines     bool
	CutLineStyle CutLineStyle
}

// Placement is one resolved copy of one photo: its page and its absolute
// top-left position and size on that page.
type Placement struct {
	Photo    *photo.Spec
	Page     int
	XCm      float64
	YCm      float64
	WidthCm  float64
	HeightCm float64
}

// Plan is the complete geometric description both renderers consume
// read-only: page dimensions, the grid, its origin after centering, and
// every placement in order.
type Plan struct {
	Params Parameters

	PageWidthCm  float64
	PageHeightCm float64

	Grid      geometry.Grid
	OriginXCm float64
	OriginYCm float64

	// Representative photo size the grid was computed from.
	PhotoWidthCm  float64
	PhotoHeightCm float64

	Placements []Placement
	Pages      int
}

// PlacementsOn returns the placements assigned to one page, in order.
func (p *Plan) PlacementsOn(page int) []Placement {
	var out []Placement
	for _, pl := range p.Placements {
		if pl.Page == page {
			out = append(out, pl)
		}
	}
	return out
}

// Build computes the grid once and walks the copy-expanded photo sequence
// through it in row-major order, opening a new page whenever the current one
// runs out of cells.
//
// The grid is computed from the first spec's dimensions even when the batch
// mixes sizes; every placement still renders at its own spec's size, inside
// a cell stepped at the representative size.
//
// A spec whose source file is missing and whose pixels are not already in
// memory is skipped entirely: it produces no placements and consumes no
// cells.
func Build(specs []*photo.Spec, params Parameters) *Plan {
	pageW, pageH := geometry.ResolvePaperSize(params.PaperSize, params.Orientation)

	plan := &Plan{
		Params:       params,
		PageWidthCm:  pageW,
		PageHeightCm: pageH,
	}

	// Expand copies, preserving input order within and across specs.
	var items []*photo.Spec
	for _, s := range specs {
		if s.Image == nil {
			if _, err := os.Stat(s.Source); err != nil {
				log.Printf("layout: skipping missing source %s: %v", s.Source, err)
				continue
			}
		}
		for i := 0; i < s.Copies; i++ {
			items = append(items, s)
		}
	}
	if len(items) == 0 {
		return plan
	}

	rep := items[0]
	plan.PhotoWidthCm = rep.WidthCm
	plan.PhotoHeightCm = rep.HeightCm

	plan.Grid = geometry.ComputeGrid(
		pageW, pageH,
		params.MarginCm, params.ColGapCm, params.RowGapCm,
		rep.WidthCm, rep.HeightCm,
	)

	usableW := pageW - 2*params.MarginCm
	usableH := pageH - 2*params.MarginCm
	gridW := geometry.GridExtent(plan.Grid.Columns, rep.WidthCm, params.ColGapCm)
	gridH := geometry.GridExtent(plan.Grid.Rows, rep.HeightCm, params.RowGapCm)

	plan.OriginXCm = params.MarginCm + geometry.CenteringOffset(usableW, gridW)
	plan.OriginYCm = params.MarginCm + geometry.CenteringOffset(usableH, gridH)

	perPage := plan.Grid.Cells()
	plan.Placements = make([]Placement, 0, len(items))

	for i, s := range items {
		page := i / perPage
		cell := i % perPage
		col := cell % plan.Grid.Columns
		row := cell / plan.Grid.Columns

		plan.Placements = append(plan.Placements, Placement{
			Photo:    s,
			Page:     page,
			XCm:      plan.OriginXCm + float64(col)*(rep.WidthCm+params.ColGapCm),
			YCm:      plan.OriginYCm + float64(row)*(rep.HeightCm+params.RowGapCm),
			WidthCm:  s.WidthCm,
			HeightCm: s.HeightCm,
		})
	}

	plan.Pages = (len(items) + perPage - 1) / perPage
	return plan
}
