package icons

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/teskann/quaxtools/pkg/errors"
)

// CornerRadius returns the README icon corner radius: 25% of the smaller side, rounded.
func CornerRadius(width, height int) float64 {
	return math.Round(0.25 * float64(min(width, height)))
}

// RoundedMask returns a width x height alpha mask that is transparent except
// for an opaque rounded rectangle spanning the whole canvas.
func RoundedMask(width, height int) *image.Alpha {
	dc := gg.NewContext(width, height)
	dc.DrawRoundedRectangle(0, 0, float64(width), float64(height), CornerRadius(width, height))
	dc.SetRGBA(0, 0, 0, 1)
	dc.Fill()
	return dc.AsMask()
}

// ApplyMask returns a copy of img whose alpha channel is replaced by mask.
// Color channels are kept as-is; the original alpha is discarded, not multiplied.
func ApplyMask(img *image.NRGBA, mask *image.Alpha) (*image.NRGBA, error) {
	if img == nil || mask == nil {
		return nil, errors.New(errors.ErrCodeInternal, "apply mask: missing image or mask")
	}
	b := img.Bounds()
	if b.Size() != mask.Bounds().Size() {
		return nil, errors.New(errors.ErrCodeInternal, "apply mask: image is %v but mask is %v", b.Size(), mask.Bounds().Size())
	}

	dst := imaging.Clone(img)
	mb := mask.Bounds()
	for y := 0; y < b.Dy(); y++ {
		di := dst.PixOffset(0, y)
		mi := mask.PixOffset(mb.Min.X, mb.Min.Y+y)
		for x := 0; x < b.Dx(); x++ {
			dst.Pix[di+3] = mask.Pix[mi]
			di += 4
			mi++
		}
	}
	return dst, nil
}
