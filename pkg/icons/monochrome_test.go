package icons

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

// gradient builds a test image covering every alpha value with varied colors.
func gradient() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			a := uint8(y*16 + x)
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 13), G: uint8(y * 7), B: a ^ 0x5a, A: a})
		}
	}
	return img
}

func TestMonochrome(t *testing.T) {
	src := gradient()
	got := Monochrome(src)

	if got.Bounds() != src.Bounds() {
		t.Fatalf("bounds = %v, want %v", got.Bounds(), src.Bounds())
	}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			in, out := src.NRGBAAt(x, y), got.NRGBAAt(x, y)
			if out.A != in.A {
				t.Fatalf("(%d,%d) alpha = %d, want %d", x, y, out.A, in.A)
			}
			want := color.NRGBA{R: 255, G: 255, B: 255, A: in.A}
			if in.A == 0 {
				want = color.NRGBA{}
			}
			if out != want {
				t.Fatalf("(%d,%d) = %v, want %v", x, y, out, want)
			}
		}
	}
}

func TestMonochromeIdempotent(t *testing.T) {
	once := Monochrome(gradient())
	twice := Monochrome(once)

	if !bytes.Equal(once.Pix, twice.Pix) {
		t.Error("Monochrome(Monochrome(x)) != Monochrome(x)")
	}
}

func TestMonochromeDoesNotModifyInput(t *testing.T) {
	src := gradient()
	before := append([]uint8(nil), src.Pix...)
	Monochrome(src)
	if !bytes.Equal(before, src.Pix) {
		t.Error("Monochrome modified its input")
	}
}

func TestMonochromeSubImage(t *testing.T) {
	sub := gradient().SubImage(image.Rect(4, 4, 8, 8)).(*image.NRGBA)
	got := Monochrome(sub)

	if b := got.Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Fatalf("bounds = %v, want 4x4", b)
	}
	if a, want := got.NRGBAAt(0, 0).A, sub.NRGBAAt(4, 4).A; a != want {
		t.Errorf("alpha = %d, want %d", a, want)
	}
}

func TestBackground(t *testing.T) {
	bg := color.NRGBA{R: 8, G: 8, B: 8, A: 255}
	img := Background(432, bg)

	if b := img.Bounds(); b.Dx() != 432 || b.Dy() != 432 {
		t.Fatalf("bounds = %v, want 432x432", b)
	}
	for y := 0; y < 432; y += 17 {
		for x := 0; x < 432; x += 17 {
			if p := img.NRGBAAt(x, y); p != bg {
				t.Fatalf("(%d,%d) = %v, want %v", x, y, p, bg)
			}
		}
	}
}

func TestBackgroundForcesOpaque(t *testing.T) {
	img := Background(2, color.NRGBA{R: 1, G: 2, B: 3, A: 10})
	if p := img.NRGBAAt(1, 1); p != (color.NRGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("pixel = %v, want opaque", p)
	}
}
