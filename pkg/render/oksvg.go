package render

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/teskann/quaxtools/pkg/errors"
)

// OKSVG rasterizes SVG in-process with srwiley/oksvg and srwiley/rasterx.
type OKSVG struct{}

// Rasterize implements [Rasterizer].
func (OKSVG) Rasterize(ctx context.Context, svg []byte, width, height int, bg color.Color) (*image.NRGBA, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg), oksvg.WarnErrorMode)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse svg")
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "svg has neither a viewBox nor a width and height")
	}

	// Fit the viewBox inside the canvas with one scale and center it.
	vw, vh := icon.ViewBox.W, icon.ViewBox.H
	scale := min(float64(width)/vw, float64(height)/vh)
	outW, outH := vw*scale, vh*scale
	icon.SetTarget((float64(width)-outW)/2, (float64(height)-outH)/2, outW, outH)

	// rasterx composites onto premultiplied RGBA; the result is converted to
	// NRGBA so callers can edit alpha without touching color.
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	if bg != nil {
		draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	scanner := rasterx.NewScannerGV(width, height, canvas, canvas.Bounds())
	dasher := rasterx.NewDasher(width, height, scanner)
	icon.Draw(dasher, 1.0)

	return imaging.Clone(canvas), nil
}
