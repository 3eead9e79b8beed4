package icons

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Monochrome returns a white silhouette of img: every pixel with non-zero
// alpha becomes white at the same alpha, every other pixel is fully
// transparent. Monochrome(Monochrome(x)) equals Monochrome(x).
func Monochrome(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		si := img.PixOffset(b.Min.X, b.Min.Y+y)
		di := dst.PixOffset(0, y)
		for x := 0; x < b.Dx(); x++ {
			if a := img.Pix[si+3]; a > 0 {
				dst.Pix[di+0] = 0xff
				dst.Pix[di+1] = 0xff
				dst.Pix[di+2] = 0xff
				dst.Pix[di+3] = a
			}
			si += 4
			di += 4
		}
	}
	return dst
}

// Background returns a size x size image flat-filled with c at full opacity.
func Background(size int, c color.Color) *image.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 0xff
	return imaging.New(size, size, n)
}
