package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teskann/quaxtools/pkg/config"
	"github.com/teskann/quaxtools/pkg/icons"
	"github.com/teskann/quaxtools/pkg/render"
)

// iconsOpts holds the command-line flags for the icons command.
// Zero values mean "use the config file / default".
type iconsOpts struct {
	source       string
	readmeDir    string
	background   string
	renderer     string
	iconSize     int
	adaptiveSize int
	dryRun       bool
}

// apply overlays the flags that were set on top of cfg.
func (o iconsOpts) apply(cfg *config.Icons) {
	if o.source != "" {
		cfg.Source = o.source
	}
	if o.readmeDir != "" {
		cfg.ReadmeDir = o.readmeDir
	}
	if o.background != "" {
		cfg.Background = o.background
	}
	if o.renderer != "" {
		cfg.Renderer = o.renderer
	}
	if o.iconSize > 0 {
		cfg.IconSize = o.iconSize
	}
	if o.adaptiveSize > 0 {
		cfg.AdaptiveSize = o.adaptiveSize
	}
}

// iconsCommand creates the icons command.
func (c *CLI) iconsCommand() *cobra.Command {
	var opts iconsOpts

	cmd := &cobra.Command{
		Use:   "icons",
		Short: "Render the application icon set from the SVG source",
		Long: `Render the application icon set from the SVG source.

Five PNG files are written next to the source (default assets/icon.svg):

  icon.png                        2000x2000 on the background color
  readme/icon.png                 same, with rounded corners
  icon-foreground-432x432.png     adaptive foreground, transparent
  icon-monochrome-432x432.png     adaptive monochrome, white silhouette
  icon-background.png             adaptive background, flat color

The first error aborts the run; files already written are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runIcons(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.source, "source", "s", "", "SVG source (default assets/icon.svg)")
	cmd.Flags().StringVar(&opts.readmeDir, "readme-dir", "", "directory of the rounded README icon (default assets/readme)")
	cmd.Flags().StringVar(&opts.background, "background", "", "background color as #rrggbb (default #080808)")
	cmd.Flags().StringVar(&opts.renderer, "renderer", "", fmt.Sprintf("SVG renderer: %v (default %s)", render.Backends(), render.DefaultBackend))
	cmd.Flags().IntVar(&opts.iconSize, "icon-size", 0, "primary and README icon size in pixels (default 2000)")
	cmd.Flags().IntVar(&opts.adaptiveSize, "adaptive-size", 0, "adaptive layer size in pixels (default 432)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "list the files that would be written")

	return cmd
}

func (c *CLI) runIcons(ctx context.Context, opts iconsOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	opts.apply(&cfg.Icons)
	if err := cfg.Validate(); err != nil {
		return err
	}

	bg, err := config.ParseColor(cfg.Icons.Background)
	if err != nil {
		return err
	}
	rasterizer, err := render.New(cfg.Icons.Renderer)
	if err != nil {
		return err
	}

	gen := icons.NewGenerator(
		icons.Config{
			Source:       cfg.Icons.Source,
			ReadmeDir:    cfg.Icons.ReadmeDir,
			Background:   bg,
			IconSize:     cfg.Icons.IconSize,
			AdaptiveSize: cfg.Icons.AdaptiveSize,
		},
		icons.WithRasterizer(rasterizer),
		icons.WithLogger(logger),
		icons.WithOnWritten(func(o icons.Output) {
			printSuccess(c.Out, "Generated %s", o.Path)
		}),
	)

	if opts.dryRun {
		printInfo(c.Out, "Would generate from %s", StyleHighlight.Render(cfg.Icons.Source))
		for _, o := range gen.Plan() {
			printFile(c.Out, string(o.Variant), o.Path)
		}
		return nil
	}

	logger.Debug("generating icons", "source", cfg.Icons.Source, "renderer", cfg.Icons.Renderer)
	prog := newProgress(logger)
	outputs, err := gen.Generate(ctx)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d icons", len(outputs)))
	return nil
}
