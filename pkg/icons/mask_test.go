package icons

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/teskann/quaxtools/pkg/errors"
)

func TestCornerRadius(t *testing.T) {
	tests := []struct {
		w, h int
		want float64
	}{
		{2000, 2000, 500},
		{432, 432, 108},
		{10, 10, 3}, // 2.5 rounds half away from zero
		{200, 100, 25},
		{7, 9, 2},
	}
	for _, tt := range tests {
		if got := CornerRadius(tt.w, tt.h); got != tt.want {
			t.Errorf("CornerRadius(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

// cornerDistance is the distance from pixel (x, y)'s center to the nearest
// point of the rounded rectangle's inner "core" rectangle. Pixels with a
// distance below r are inside the rounded rectangle.
func cornerDistance(x, y, w, h int, r float64) float64 {
	px, py := float64(x)+0.5, float64(y)+0.5
	cx := math.Max(r, math.Min(px, float64(w)-r))
	cy := math.Max(r, math.Min(py, float64(h)-r))
	return math.Hypot(px-cx, py-cy)
}

func TestRoundedMask(t *testing.T) {
	const w, h = 200, 160
	mask := RoundedMask(w, h)
	r := CornerRadius(w, h)

	if b := mask.Bounds(); b.Dx() != w || b.Dy() != h {
		t.Fatalf("bounds = %v, want %dx%d", b, w, h)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := cornerDistance(x, y, w, h, r)
			a := mask.AlphaAt(x, y).A
			switch {
			case d < r-1.5 && a != 0xff:
				t.Fatalf("inside pixel (%d,%d) alpha = %d, want 255", x, y, a)
			case d > r+1.5 && a != 0:
				t.Fatalf("outside pixel (%d,%d) alpha = %d, want 0", x, y, a)
			}
		}
	}

	for _, p := range []image.Point{{0, 0}, {w - 1, 0}, {0, h - 1}, {w - 1, h - 1}} {
		if a := mask.AlphaAt(p.X, p.Y).A; a != 0 {
			t.Errorf("corner %v alpha = %d, want 0", p, a)
		}
	}
	for _, p := range []image.Point{{w / 2, 0}, {0, h / 2}, {w / 2, h / 2}, {w - 1, h / 2}} {
		if a := mask.AlphaAt(p.X, p.Y).A; a != 0xff {
			t.Errorf("edge/center %v alpha = %d, want 255", p, a)
		}
	}
}

func TestApplyMaskReplacesAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	img.SetNRGBA(1, 0, color.NRGBA{R: 50, G: 60, B: 70, A: 255})

	mask := image.NewAlpha(image.Rect(0, 0, 2, 1))
	mask.SetAlpha(0, 0, color.Alpha{A: 200})
	mask.SetAlpha(1, 0, color.Alpha{A: 0})

	got, err := ApplyMask(img, mask)
	if err != nil {
		t.Fatalf("ApplyMask() error: %v", err)
	}

	if p := got.NRGBAAt(0, 0); p != (color.NRGBA{R: 10, G: 20, B: 30, A: 200}) {
		t.Errorf("pixel 0 = %v, want alpha replaced by 200 (not multiplied)", p)
	}
	if p := got.NRGBAAt(1, 0); p != (color.NRGBA{R: 50, G: 60, B: 70, A: 0}) {
		t.Errorf("pixel 1 = %v, want alpha 0 with color kept", p)
	}
	if p := img.NRGBAAt(0, 0); p.A != 40 {
		t.Errorf("input modified: alpha = %d, want 40", p.A)
	}
}

func TestApplyMaskRoundedIcon(t *testing.T) {
	const size = 120
	src := Background(size, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	got, err := ApplyMask(src, RoundedMask(size, size))
	if err != nil {
		t.Fatalf("ApplyMask() error: %v", err)
	}
	r := CornerRadius(size, size)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := cornerDistance(x, y, size, size, r)
			p := got.NRGBAAt(x, y)
			if d > r+1.5 && p.A != 0 {
				t.Fatalf("outside pixel (%d,%d) alpha = %d, want 0", x, y, p.A)
			}
			if d < r-1.5 && p != (color.NRGBA{R: 200, G: 100, B: 50, A: 255}) {
				t.Fatalf("inside pixel (%d,%d) = %v, want source color, opaque", x, y, p)
			}
		}
	}
}

func TestApplyMaskSizeMismatch(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	_, err := ApplyMask(img, image.NewAlpha(image.Rect(0, 0, 3, 4)))
	if !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("ApplyMask() error = %v, want INTERNAL_ERROR", err)
	}

	if _, err := ApplyMask(nil, RoundedMask(4, 4)); err == nil {
		t.Error("ApplyMask(nil) should fail")
	}
}
