package icons

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"

	qerrors "github.com/teskann/quaxtools/pkg/errors"
	"github.com/teskann/quaxtools/pkg/observability"
	"github.com/teskann/quaxtools/pkg/render"
)

// Default sizes, in pixels, of the square outputs.
const (
	DefaultIconSize     = 2000
	DefaultAdaptiveSize = 432
)

// DefaultBackground is the quax brand background, #080808.
var DefaultBackground color.Color = color.NRGBA{R: 0x08, G: 0x08, B: 0x08, A: 0xff}

// Variant identifies one of the generated images.
type Variant string

// Variants in generation order.
const (
	VariantPrimary    Variant = "primary"
	VariantReadme     Variant = "readme"
	VariantForeground Variant = "foreground"
	VariantMonochrome Variant = "monochrome"
	VariantBackground Variant = "background"
)

// Config describes the inputs and outputs of a generation run.
type Config struct {
	Source       string      // SVG source, e.g. assets/icon.svg
	ReadmeDir    string      // directory of the README icon; defaults to <source dir>/readme
	Background   color.Color // opaque fill of the primary, README and background images
	IconSize     int         // primary and README size; defaults to DefaultIconSize
	AdaptiveSize int         // adaptive layer size; defaults to DefaultAdaptiveSize
}

func (c *Config) setDefaults() {
	if c.ReadmeDir == "" {
		c.ReadmeDir = filepath.Join(filepath.Dir(c.Source), "readme")
	}
	if c.Background == nil {
		c.Background = DefaultBackground
	}
	if c.IconSize <= 0 {
		c.IconSize = DefaultIconSize
	}
	if c.AdaptiveSize <= 0 {
		c.AdaptiveSize = DefaultAdaptiveSize
	}
}

// Output describes a single written image.
type Output struct {
	Variant Variant
	Path    string
	Size    int
}

// Option configures a Generator.
type Option func(*Generator)

// WithRasterizer sets the SVG backend (default render.OKSVG).
func WithRasterizer(r render.Rasterizer) Option {
	return func(g *Generator) { g.rasterizer = r }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// WithOnWritten registers a hook called after each file is written.
func WithOnWritten(fn func(Output)) Option {
	return func(g *Generator) { g.onWritten = fn }
}

// Generator produces the five icon variants from one SVG source.
type Generator struct {
	cfg        Config
	rasterizer render.Rasterizer
	logger     *log.Logger
	onWritten  func(Output)
}

// NewGenerator creates a Generator for cfg. Zero fields of cfg take defaults.
func NewGenerator(cfg Config, opts ...Option) *Generator {
	cfg.setDefaults()
	g := &Generator{
		cfg:        cfg,
		rasterizer: render.OKSVG{},
		logger:     log.New(io.Discard),
		onWritten:  func(Output) {},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Config returns the effective configuration, defaults applied.
func (g *Generator) Config() Config {
	return g.cfg
}

// Plan returns the outputs Generate will write, in order, without touching disk.
func (g *Generator) Plan() []Output {
	base := strings.TrimSuffix(g.cfg.Source, filepath.Ext(g.cfg.Source))
	icon, adaptive := g.cfg.IconSize, g.cfg.AdaptiveSize
	return []Output{
		{VariantPrimary, base + ".png", icon},
		{VariantReadme, filepath.Join(g.cfg.ReadmeDir, filepath.Base(base)+".png"), icon},
		{VariantForeground, fmt.Sprintf("%s-foreground-%dx%d.png", base, adaptive, adaptive), adaptive},
		{VariantMonochrome, fmt.Sprintf("%s-monochrome-%dx%d.png", base, adaptive, adaptive), adaptive},
		{VariantBackground, base + "-background.png", adaptive},
	}
}

// Generate renders and writes all variants in Plan order.
//
// The first failure aborts the run; files already written are left in place.
func (g *Generator) Generate(ctx context.Context) ([]Output, error) {
	svg, err := os.ReadFile(g.cfg.Source)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, qerrors.Wrap(qerrors.ErrCodeFileNotFound, err, "read icon source")
		}
		return nil, qerrors.Wrap(qerrors.ErrCodeInvalidInput, err, "read icon source")
	}

	plan := g.Plan()
	written := make([]Output, 0, len(plan))

	hooks := observability.Icons()
	var primary, foreground *image.NRGBA
	for _, out := range plan {
		g.logger.Debug("generating", "variant", out.Variant, "size", out.Size)
		hooks.OnVariantStart(ctx, string(out.Variant), out.Size)
		start := time.Now()

		var img image.Image
		switch out.Variant {
		case VariantPrimary:
			primary, err = g.rasterizer.Rasterize(ctx, svg, out.Size, out.Size, g.cfg.Background)
			img = primary
		case VariantReadme:
			img, err = ApplyMask(primary, RoundedMask(out.Size, out.Size))
		case VariantForeground:
			foreground, err = g.rasterizer.Rasterize(ctx, svg, out.Size, out.Size, nil)
			img = foreground
		case VariantMonochrome:
			img = Monochrome(foreground)
		case VariantBackground:
			img = Background(out.Size, g.cfg.Background)
		}
		if err == nil {
			err = save(img, out.Path)
		}
		hooks.OnVariantComplete(ctx, string(out.Variant), out.Path, time.Since(start), err)
		if err != nil {
			code := qerrors.GetCode(err)
			if code == "" {
				code = qerrors.ErrCodeInternal
			}
			return written, qerrors.Wrap(code, err, "%s icon", out.Variant)
		}
		written = append(written, out)
		g.onWritten(out)
	}
	return written, nil
}

func save(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return qerrors.Wrap(qerrors.ErrCodeInternal, err, "create directory for %s", path)
	}
	if err := imaging.Save(img, path); err != nil {
		return qerrors.Wrap(qerrors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}
