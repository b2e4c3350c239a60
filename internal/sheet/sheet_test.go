package sheet

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/erwaqarmalik/studio-sheet/internal/layout"
	"github.com/erwaqarmalik/studio-sheet/internal/photo"
)

// writeTestJPEG writes a solid-color JPEG to dir and returns its path.
func writeTestJPEG(t *testing.T, dir, name string, c color.NRGBA, w, h int) string {
	t.Helper()
	img := imaging.New(w, h, c)
	path := filepath.Join(dir, name)
	if err := imaging.Save(img, path, imaging.JPEGQuality(90)); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

type fakeRemover struct {
	calls int
}

// Remove answers with a fully transparent copy so the composite
// background shows through.
func (f *fakeRemover) Remove(ctx context.Context, img image.Image) (image.Image, error) {
	f.calls++
	return image.NewNRGBA(img.Bounds()), nil
}

func passportParams() layout.Parameters {
	return layout.Parameters{
		PaperSize:   "A4",
		Orientation: "portrait",
		MarginCm:    0.5,
		ColGapCm:    0.3,
		RowGapCm:    0.3,
	}
}

func TestGenerate(t *testing.T) {
	t.Run("pdf output in a per-session directory", func(t *testing.T) {
		srcDir := t.TempDir()
		outDir := t.TempDir()
		src := writeTestJPEG(t, srcDir, "a.jpg", color.NRGBA{R: 200, A: 255}, 350, 450)

		var seen []PhotoReport
		req := Request{
			Photos: []*photo.Spec{
				{Source: src, WidthCm: 3.5, HeightCm: 4.5, Copies: 6},
			},
			Layout:    passportParams(),
			Format:    FormatPDF,
			OutputDir: outDir,
			SessionID: "test-session",
			OnPhoto: func(r PhotoReport, current, total int) {
				seen = append(seen, r)
				if total != 1 {
					t.Errorf("total = %d, want 1", total)
				}
			},
		}

		result, err := New(nil).Generate(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.SessionID != "test-session" {
			t.Errorf("session = %q, want test-session", result.SessionID)
		}
		if result.Pages != 1 {
			t.Errorf("pages = %d, want 1", result.Pages)
		}
		if len(result.OutputPaths) != 1 {
			t.Fatalf("got %d output paths, want 1", len(result.OutputPaths))
		}

		path := result.OutputPaths[0]
		if dir := filepath.Dir(path); dir != filepath.Join(outDir, "test-session") {
			t.Errorf("output dir = %s, want per-session subdirectory", dir)
		}
		base := filepath.Base(path)
		if !strings.HasPrefix(base, "sheet_") || !strings.HasSuffix(base, ".pdf") {
			t.Errorf("file name = %q, want sheet_<timestamp>.pdf", base)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("output file missing: %v", err)
		}
		if len(seen) != 1 || seen[0].Message != "" {
			t.Errorf("photo reports = %+v, want one success", seen)
		}
	})

	t.Run("jpeg output names pages in order", func(t *testing.T) {
		srcDir := t.TempDir()
		outDir := t.TempDir()
		src := writeTestJPEG(t, srcDir, "a.jpg", color.NRGBA{B: 200, A: 255}, 70, 90)

		req := Request{
			Photos: []*photo.Spec{
				// 9x13 on A4 with these margins gives a 2x2 grid,
				// so 5 copies spill onto a second page.
				{Source: src, WidthCm: 9, HeightCm: 13, Copies: 5},
			},
			Layout:    passportParams(),
			Format:    FormatJPEG,
			OutputDir: outDir,
			SessionID: "jpeg-session",
		}

		result, err := New(nil).Generate(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Pages != 2 {
			t.Fatalf("pages = %d, want 2", result.Pages)
		}
		if len(result.OutputPaths) != 2 {
			t.Fatalf("got %d files, want 2", len(result.OutputPaths))
		}
		for i, p := range result.OutputPaths {
			base := filepath.Base(p)
			wantPrefix := fmt.Sprintf("sheet_page_%d_", i+1)
			if !strings.HasPrefix(base, wantPrefix) || !strings.HasSuffix(base, ".jpg") {
				t.Errorf("page %d name = %q, want %s<timestamp>.jpg", i+1, base, wantPrefix)
			}
			if _, err := os.Stat(p); err != nil {
				t.Errorf("page %d missing: %v", i+1, err)
			}
		}
	})

	t.Run("passport sheet fills an A4 grid", func(t *testing.T) {
		srcDir := t.TempDir()
		outDir := t.TempDir()

		a := writeTestJPEG(t, srcDir, "a.jpg", color.NRGBA{R: 200, A: 255}, 350, 450)
		b := writeTestJPEG(t, srcDir, "b.jpg", color.NRGBA{G: 200, A: 255}, 350, 450)
		c := writeTestJPEG(t, srcDir, "c.jpg", color.NRGBA{B: 200, A: 255}, 350, 450)

		req := Request{
			Photos: []*photo.Spec{
				{Source: a, WidthCm: 3.5, HeightCm: 4.5, Copies: 2},
				{Source: b, WidthCm: 3.5, HeightCm: 4.5, Copies: 1},
				{Source: c, WidthCm: 3.5, HeightCm: 4.5, Copies: 3},
			},
			Layout:    passportParams(),
			Format:    FormatPDF,
			OutputDir: outDir,
			SessionID: "grid",
		}

		result, err := New(nil).Generate(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Six placements fit one page of a 5x6 A4 grid.
		if result.Pages != 1 {
			t.Errorf("pages = %d, want 1", result.Pages)
		}
		if len(result.Photos) != 3 {
			t.Errorf("got %d reports, want 3", len(result.Photos))
		}
	})

	t.Run("background removal composites onto the requested color", func(t *testing.T) {
		srcDir := t.TempDir()
		outDir := t.TempDir()
		src := writeTestJPEG(t, srcDir, "a.jpg", color.NRGBA{R: 10, G: 10, B: 10, A: 255}, 350, 450)

		remover := &fakeRemover{}
		spec := &photo.Spec{Source: src, WidthCm: 3.5, HeightCm: 4.5, Copies: 1}
		req := Request{
			Photos:           []*photo.Spec{spec},
			Layout:           passportParams(),
			Format:           FormatPDF,
			RemoveBackground: true,
			BackgroundColor:  "FF0000",
			OutputDir:        outDir,
			SessionID:        "bg",
		}

		result, err := New(remover).Generate(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if remover.calls != 1 {
			t.Errorf("remover called %d times, want 1", remover.calls)
		}
		if !result.Photos[0].BackgroundRemoved {
			t.Error("report should flag the removed background")
		}

		// The fake cut-out is fully transparent, so the prepared
		// image is solid red.
		r, g, _, _ := spec.Image.At(10, 10).RGBA()
		if r>>8 != 255 || g>>8 != 0 {
			t.Errorf("composited pixel = %d,%d, want 255,0", r>>8, g>>8)
		}
	})

	t.Run("invalid background color fails before any work", func(t *testing.T) {
		remover := &fakeRemover{}
		req := Request{
			Photos:           []*photo.Spec{{Source: "unused.jpg", WidthCm: 3.5, HeightCm: 4.5, Copies: 1}},
			Layout:           passportParams(),
			RemoveBackground: true,
			BackgroundColor:  "12345",
			OutputDir:        t.TempDir(),
		}

		_, err := New(remover).Generate(context.Background(), req)
		if err == nil {
			t.Fatal("expected an error for a 5-digit color")
		}
		if remover.calls != 0 {
			t.Error("remover should not run for an invalid color")
		}
	})

	t.Run("failed removal leaves the photo out but reports it", func(t *testing.T) {
		srcDir := t.TempDir()
		outDir := t.TempDir()
		good := writeTestJPEG(t, srcDir, "good.jpg", color.NRGBA{G: 200, A: 255}, 350, 450)
		bad := writeTestJPEG(t, srcDir, "bad.jpg", color.NRGBA{R: 200, A: 255}, 350, 450)

		req := Request{
			Photos: []*photo.Spec{
				{Source: bad, WidthCm: 3.5, HeightCm: 4.5, Copies: 1},
				{Source: good, WidthCm: 3.5, HeightCm: 4.5, Copies: 1},
			},
			Layout:           passportParams(),
			Format:           FormatPDF,
			RemoveBackground: true,
			BackgroundColor:  "EEEEEE",
			OutputDir:        outDir,
			SessionID:        "partial",
		}

		// Fail the first call only.
		firstCall := true
		gen := New(removerFunc(func(ctx context.Context, img image.Image) (image.Image, error) {
			if firstCall {
				firstCall = false
				return nil, fmt.Errorf("service unavailable")
			}
			return image.NewNRGBA(img.Bounds()), nil
		}))

		result, err := gen.Generate(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Photos[0].Message == "" {
			t.Error("first photo should carry a failure message")
		}
		if result.Photos[1].Message != "" {
			t.Errorf("second photo failed: %s", result.Photos[1].Message)
		}
		if len(result.OutputPaths) != 1 {
			t.Errorf("got %d outputs, want the surviving photo rendered", len(result.OutputPaths))
		}
	})

	t.Run("unreadable source is reported not fatal", func(t *testing.T) {
		srcDir := t.TempDir()
		outDir := t.TempDir()
		good := writeTestJPEG(t, srcDir, "good.jpg", color.NRGBA{G: 200, A: 255}, 350, 450)

		req := Request{
			Photos: []*photo.Spec{
				{Source: filepath.Join(srcDir, "missing.jpg"), WidthCm: 3.5, HeightCm: 4.5, Copies: 1},
				{Source: good, WidthCm: 3.5, HeightCm: 4.5, Copies: 1},
			},
			Layout:    passportParams(),
			Format:    FormatPDF,
			OutputDir: outDir,
			SessionID: "skip",
		}

		result, err := New(nil).Generate(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Photos[0].Message == "" {
			t.Error("missing source should carry a failure message")
		}
		if result.Photos[1].Message != "" {
			t.Errorf("good photo failed: %s", result.Photos[1].Message)
		}
	})

	t.Run("all photos failing fails the call", func(t *testing.T) {
		req := Request{
			Photos: []*photo.Spec{
				{Source: "/nonexistent/a.jpg", WidthCm: 3.5, HeightCm: 4.5, Copies: 1},
			},
			Layout:    passportParams(),
			OutputDir: t.TempDir(),
		}
		if _, err := New(nil).Generate(context.Background(), req); err == nil {
			t.Error("expected an error when nothing is usable")
		}
	})

	t.Run("session id is generated when empty", func(t *testing.T) {
		srcDir := t.TempDir()
		src := writeTestJPEG(t, srcDir, "a.jpg", color.NRGBA{R: 200, A: 255}, 70, 90)

		req := Request{
			Photos:    []*photo.Spec{{Source: src, WidthCm: 3.5, HeightCm: 4.5, Copies: 1}},
			Layout:    passportParams(),
			Format:    FormatPDF,
			OutputDir: t.TempDir(),
		}
		result, err := New(nil).Generate(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.SessionID == "" {
			t.Error("session id should be generated")
		}
	})

	t.Run("cancelled context stops the pipeline", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		req := Request{
			Photos:    []*photo.Spec{{Source: "a.jpg", WidthCm: 3.5, HeightCm: 4.5, Copies: 1}},
			Layout:    passportParams(),
			OutputDir: t.TempDir(),
		}
		if _, err := New(nil).Generate(ctx, req); err == nil {
			t.Error("expected a context error")
		}
	})
}

// removerFunc adapts a function to the Remover interface.
type removerFunc func(ctx context.Context, img image.Image) (image.Image, error)

func (f removerFunc) Remove(ctx context.Context, img image.Image) (image.Image, error) {
	return f(ctx, img)
}
