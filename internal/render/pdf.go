package render

import (
	"bytes"
	"fmt"
	"image"
	"os"

	"github.com/jung-kurt/gofpdf"

	"github.com/erwaqarmalik/studio-sheet/internal/geometry"
	"github.com/erwaqarmalik/studio-sheet/internal/layout"
	"github.com/erwaqarmalik/studio-sheet/internal/photo"
)

// pdfSurface draws onto a single multi-page PDF document in centimeter
// units. The document layer owns the PDF bottom-up axis flip: coordinates
// handed to it are top-down and it converts them when emitting the content
// stream, so this adapter maps the plan's coordinates straight through.
type pdfSurface struct {
	doc    *gofpdf.Fpdf
	images int
}

func newPDFSurface(pageWCm, pageHCm float64) *pdfSurface {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "cm",
		Size:    gofpdf.SizeType{Wd: pageWCm, Ht: pageHCm},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	return &pdfSurface{doc: doc}
}

func (s *pdfSurface) StartPage() error {
	s.doc.AddPage()
	return s.doc.Error()
}

func (s *pdfSurface) DrawImage(img image.Image, r Rect) error {
	var buf bytes.Buffer
	if err := photo.EncodeJPEG(&buf, img); err != nil {
		return err
	}

	s.images++
	name := fmt.Sprintf("photo-%d", s.images)
	opts := gofpdf.ImageOptions{ImageType: "JPEG"}
	s.doc.RegisterImageOptionsReader(name, opts, &buf)
	s.doc.ImageOptions(name, r.X, r.Y, r.W, r.H, false, opts, 0, "")
	return s.doc.Error()
}

func (s *pdfSurface) DrawBorder(r Rect) {
	s.doc.SetLineWidth(borderWidthPt / geometry.PointsPerCm)
	s.doc.SetDrawColor(0, 0, 0)
	s.doc.Rect(r.X, r.Y, r.W, r.H, "D")
}

func (s *pdfSurface) DrawDashedLine(a, b Point, guide Guide) {
	rgb := guideRGB(guide)
	s.doc.SetLineWidth(cutLineWidthPt / geometry.PointsPerCm)
	s.doc.SetDrawColor(rgb[0], rgb[1], rgb[2])
	s.doc.SetDashPattern([]float64{dashOnCm, dashOffCm}, 0)
	s.doc.Line(a.X, a.Y, b.X, b.Y)
	s.doc.SetDashPattern([]float64{}, 0)
}

// PDF renders the plan into one multi-page PDF at outputPath. The document
// is assembled in memory and written in a single step: a failed render
// leaves no file behind. A plan with no pages produces no file and returns
// an empty path.
func PDF(plan *layout.Plan, outputPath string) (string, error) {
	if plan.Pages == 0 {
		return "", nil
	}

	s := newPDFSurface(plan.PageWidthCm, plan.PageHeightCm)
	if err := paint(s, plan); err != nil {
		return "", fmt.Errorf("failed to render PDF: %w", err)
	}

	var buf bytes.Buffer
	if err := s.doc.Output(&buf); err != nil {
		return "", fmt.Errorf("failed to assemble PDF: %w", err)
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0600); err != nil {
		return "", fmt.Errorf("failed to write PDF: %w", err)
	}
	return outputPath, nil
}
