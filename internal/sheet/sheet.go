// Package sheet runs the full pipeline: load and crop every photo,
// optionally cut out and recompose its background, lay the copies out
// on paper and render the pages.
package sheet

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/erwaqarmalik/studio-sheet/internal/layout"
	"github.com/erwaqarmalik/studio-sheet/internal/photo"
	"github.com/erwaqarmalik/studio-sheet/internal/render"
)

// Format selects the output renderer.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatJPEG Format = "jpeg"
)

const timestampLayout = "20060102_150405"

// Remover cuts the background out of a photograph, returning an image
// with transparent background pixels.
type Remover interface {
	Remove(ctx context.Context, img image.Image) (image.Image, error)
}

type Request struct {
	Photos []*photo.Spec
	Layout layout.Parameters
	Format Format

	// RemoveBackground runs every photo through the remover and
	// flattens the cut-out onto BackgroundColor (RRGGBB).
	RemoveBackground bool
	BackgroundColor  string

	OutputDir string
	SessionID string

	// OnPhoto, when set, is called after each photo finishes the
	// prepare stage.
	OnPhoto func(report PhotoReport, current, total int)
}

// PhotoReport describes what happened to a single input photo.
type PhotoReport struct {
	Source            string
	Cropped           bool
	BackgroundRemoved bool
	Message           string
}

type Result struct {
	SessionID   string
	OutputPaths []string
	Pages       int
	Photos      []PhotoReport
}

type Generator struct {
	remover Remover
}

func New(remover Remover) *Generator {
	return &Generator{remover: remover}
}

// Generate runs the pipeline. Per-photo failures are reported in the
// result and leave the failed photo out of the sheet; only request-level
// problems (bad color, no usable photos, unwritable output) fail the call.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	var bgColor string
	if req.RemoveBackground {
		if g.remover == nil {
			return nil, fmt.Errorf("background removal requested but no removal service is configured")
		}
		if _, err := photo.ParseHexColor(req.BackgroundColor); err != nil {
			return nil, fmt.Errorf("invalid background color: %w", err)
		}
		bgColor = req.BackgroundColor
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	result := &Result{SessionID: sessionID}

	prepared := make([]*photo.Spec, 0, len(req.Photos))
	for i, spec := range req.Photos {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		report := g.preparePhoto(ctx, spec, bgColor)
		result.Photos = append(result.Photos, report)
		if req.OnPhoto != nil {
			req.OnPhoto(report, i+1, len(req.Photos))
		}
		if report.Message == "" {
			prepared = append(prepared, spec)
		}
	}

	if len(prepared) == 0 {
		return nil, fmt.Errorf("no photos could be prepared")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	plan := layout.Build(prepared, req.Layout)
	result.Pages = plan.Pages

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	outputDir := filepath.Join(req.OutputDir, sessionID)
	if err := os.MkdirAll(outputDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := time.Now().Format(timestampLayout)

	switch req.Format {
	case FormatJPEG:
		pagePaths := make([]string, plan.Pages)
		for i := range pagePaths {
			name := fmt.Sprintf("sheet_page_%d_%s.jpg", i+1, timestamp)
			pagePaths[i] = filepath.Join(outputDir, name)
		}
		paths, err := render.JPEG(plan, pagePaths)
		if err != nil {
			return nil, fmt.Errorf("failed to render pages: %w", err)
		}
		result.OutputPaths = paths
	case FormatPDF, "":
		name := fmt.Sprintf("sheet_%s.pdf", timestamp)
		path, err := render.PDF(plan, filepath.Join(outputDir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to render document: %w", err)
		}
		if path != "" {
			result.OutputPaths = []string{path}
		}
	default:
		return nil, fmt.Errorf("unknown output format %q", req.Format)
	}

	return result, nil
}

// preparePhoto loads, crops and optionally recomposes one photo in
// place. A non-empty Message means the photo is left out of the sheet.
func (g *Generator) preparePhoto(ctx context.Context, spec *photo.Spec, bgColor string) PhotoReport {
	report := PhotoReport{Source: spec.Source}

	img, err := spec.Pixels()
	if err != nil {
		report.Message = fmt.Sprintf("failed to load: %v", err)
		return report
	}

	cropped := photo.CropToAspect(img, spec.WidthCm, spec.HeightCm)
	report.Cropped = cropped.Bounds() != img.Bounds()
	img = cropped

	if bgColor != "" {
		cutout, err := g.remover.Remove(ctx, img)
		if err != nil {
			report.Message = fmt.Sprintf("failed to remove background: %v", err)
			return report
		}
		bg, err := photo.ParseHexColor(bgColor)
		if err != nil {
			report.Message = fmt.Sprintf("invalid background color: %v", err)
			return report
		}
		img = photo.CompositeOnSolid(cutout, bg)
		report.BackgroundRemoved = true
	}

	spec.Image = img
	return report
}
