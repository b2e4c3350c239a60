package photo

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	t.Run("plain six digits", func(t *testing.T) {
		c, err := ParseHexColor("FFFFFF")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
			t.Errorf("got %+v", c)
		}
	})

	t.Run("leading hash", func(t *testing.T) {
		c, err := ParseHexColor("#1a2B3c")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c != (color.NRGBA{R: 0x1A, G: 0x2B, B: 0x3C, A: 255}) {
			t.Errorf("got %+v", c)
		}
	})

	t.Run("five digits rejected", func(t *testing.T) {
		_, err := ParseHexColor("12345")
		var invalid *InvalidColorError
		if !errors.As(err, &invalid) {
			t.Fatalf("expected InvalidColorError, got %v", err)
		}
		if invalid.Value != "12345" {
			t.Errorf("error value = %q, want offending input", invalid.Value)
		}
	})

	t.Run("non-hex digits rejected", func(t *testing.T) {
		_, err := ParseHexColor("GGGGGG")
		var invalid *InvalidColorError
		if !errors.As(err, &invalid) {
			t.Fatalf("expected InvalidColorError, got %v", err)
		}
	})

	t.Run("eight digits rejected", func(t *testing.T) {
		if _, err := ParseHexColor("#11223344"); err == nil {
			t.Error("expected error for 8 digits")
		}
	})
}

func TestCompositeOnSolid(t *testing.T) {
	t.Run("opaque foreground hides the background completely", func(t *testing.T) {
		fg := image.NewNRGBA(image.Rect(0, 0, 4, 4))
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				fg.SetNRGBA(x, y, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
			}
		}

		white, _ := ParseHexColor("#FFFFFF")
		got := CompositeOnSolid(fg, white)

		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				c := got.NRGBAAt(x, y)
				if c.R != 10 || c.G != 20 || c.B != 30 || c.A != 255 {
					t.Fatalf("pixel (%d,%d) = %+v, want foreground RGB", x, y, c)
				}
			}
		}
	})

	t.Run("transparent foreground shows the solid fill", func(t *testing.T) {
		fg := image.NewNRGBA(image.Rect(0, 0, 2, 2)) // all zero alpha

		bg, _ := ParseHexColor("00FF00")
		got := CompositeOnSolid(fg, bg)

		c := got.NRGBAAt(0, 0)
		if c.R != 0 || c.G != 255 || c.B != 0 || c.A != 255 {
			t.Errorf("pixel = %+v, want opaque green", c)
		}
	})

	t.Run("canvas matches foreground dimensions", func(t *testing.T) {
		fg := image.NewNRGBA(image.Rect(0, 0, 7, 9))
		bg, _ := ParseHexColor("123456")
		got := CompositeOnSolid(fg, bg)
		if got.Bounds().Dx() != 7 || got.Bounds().Dy() != 9 {
			t.Errorf("canvas = %dx%d, want 7x9", got.Bounds().Dx(), got.Bounds().Dy())
		}
	})
}
