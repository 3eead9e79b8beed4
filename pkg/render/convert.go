package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"os/exec"
	"strconv"

	"github.com/disintegration/imaging"

	"github.com/teskann/quaxtools/pkg/errors"
)

// RSVG rasterizes SVG by shelling out to rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
type RSVG struct{}

// Rasterize implements [Rasterizer].
func (RSVG) Rasterize(ctx context.Context, svg []byte, width, height int, bg color.Color) (*image.NRGBA, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}

	args := []string{"-w", strconv.Itoa(width), "-h", strconv.Itoa(height)}
	if bg != nil {
		args = append(args, "-b", cssColor(bg))
	}

	out, err := rsvgConvert(ctx, svg, "png", args...)
	if err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(out))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode rsvg-convert output")
	}
	nrgba := imaging.Clone(img)
	if b := nrgba.Bounds(); b.Dx() != width || b.Dy() != height {
		nrgba = imaging.Resize(nrgba, width, height, imaging.Lanczos)
	}
	return nrgba, nil
}

// cssColor formats c as an rgba() color accepted by rsvg-convert -b.
func cssColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", n.R, n.G, n.B, float64(n.A)/255)
}

// rsvgConvert shells out to rsvg-convert for format conversion.
func rsvgConvert(ctx context.Context, svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, errors.New(errors.ErrCodeUnsupported, "%s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.CommandContext(ctx, "rsvg-convert", args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "rsvg-convert: %s", bytes.TrimSpace(errBuf.Bytes()))
	}
	return out.Bytes(), nil
}
