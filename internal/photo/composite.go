package photo

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"strings"
)

// InvalidColorError reports a background color value that is not a 6-digit
// RRGGBB hex string. It carries the offending input for user-facing messages.
type InvalidColorError struct {
	Value string
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid background color %q: expected RRGGBB hex", e.Value)
}

// ParseHexColor parses an RRGGBB value with an optional leading '#'.
// Anything other than exactly six hex digits is rejected.
func ParseHexColor(s string) (color.NRGBA, error) {
	hexDigits := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hexDigits) != 6 {
		return color.NRGBA{}, &InvalidColorError{Value: s}
	}
	v, err := strconv.ParseUint(hexDigits, 16, 32)
	if err != nil {
		return color.NRGBA{}, &InvalidColorError{Value: s}
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}

// CompositeOnSolid flattens a foreground carrying an alpha channel onto an
// opaque canvas of the given color using standard "over" blending. The
// foreground itself comes from an external background-removal capability;
// this function only needs its alpha channel to be meaningful.
func CompositeOnSolid(foreground image.Image, background color.NRGBA) *image.NRGBA {
	b := foreground.Bounds()
	canvas := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)
	draw.Draw(canvas, canvas.Bounds(), foreground, b.Min, draw.Over)
	return canvas
}
