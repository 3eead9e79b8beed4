package render

import (
	"context"
	"image"
	"image/color"
	"sort"
	"strings"

	"github.com/teskann/quaxtools/pkg/errors"
)

// Rasterizer converts SVG documents into pixel buffers.
//
// The SVG viewBox is scaled uniformly to fit width x height pixels and centered,
// so a non-square drawing keeps its proportions. A nil bg leaves
// the canvas transparent; otherwise the canvas is filled with bg before the
// drawing is composited on top.
type Rasterizer interface {
	Rasterize(ctx context.Context, svg []byte, width, height int, bg color.Color) (*image.NRGBA, error)
}

// Backend names accepted by [New].
const (
	BackendOKSVG = "oksvg"
	BackendRSVG  = "rsvg"
)

// DefaultBackend is the pure Go backend; it needs no external tools.
const DefaultBackend = BackendOKSVG

var backends = map[string]func() Rasterizer{
	BackendOKSVG: func() Rasterizer { return OKSVG{} },
	BackendRSVG:  func() Rasterizer { return RSVG{} },
}

// New returns the rasterizer registered under name.
// An empty name selects [DefaultBackend].
func New(name string) (Rasterizer, error) {
	if name == "" {
		name = DefaultBackend
	}
	mk, ok := backends[strings.ToLower(name)]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown renderer %q (available: %s)", name, strings.Join(Backends(), ", "))
	}
	return mk(), nil
}

// Backends lists the registered backend names in sorted order.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "invalid raster size %dx%d", width, height)
	}
	return nil
}
