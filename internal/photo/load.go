package photo

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"

	// imaging registers jpeg/png/gif/bmp/tiff; webp sources additionally
	// need the decoder from x/image.
	_ "golang.org/x/image/webp"
)

// JPEGQuality is used for all JPEG output the engine produces.
const JPEGQuality = 95

// Load decodes a source photo from disk, honoring EXIF orientation so
// phone captures come in upright.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// EncodeJPEG writes img to w at the engine's output quality.
func EncodeJPEG(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return nil
}
