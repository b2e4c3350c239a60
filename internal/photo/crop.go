package photo

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// aspectTolerance is the band within which an image counts as already
// matching the target ratio, skipping the re-crop entirely.
const aspectTolerance = 1e-3

// CropToAspect center-crops img so it matches the widthCm:heightCm ratio
// without distortion. Exactly one axis is trimmed: a relatively wider image
// loses width, a relatively taller one loses height. Pixels are only ever
// removed, never resampled. An image already within tolerance is returned
// unchanged.
func CropToAspect(img image.Image, widthCm, heightCm float64) image.Image {
	b := img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()

	targetAspect := widthCm / heightCm
	currentAspect := float64(srcW) / float64(srcH)

	if math.Abs(currentAspect-targetAspect) < aspectTolerance {
		return img
	}

	var newW, newH int
	if currentAspect > targetAspect {
		newW = int(float64(srcH) * targetAspect)
		newH = srcH
	} else {
		newW = srcW
		newH = int(float64(srcW) / targetAspect)
	}

	return imaging.CropCenter(img, newW, newH)
}
