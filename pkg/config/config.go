// Package config loads quaxtools settings from an optional TOML file.
//
// Precedence, highest first: command-line flags, the config file, built-in
// defaults. A missing file at the default path is not an error.
package config

import (
	"errors"
	"image/color"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	qerrors "github.com/teskann/quaxtools/pkg/errors"
	"github.com/teskann/quaxtools/pkg/integrations/github"
	"github.com/teskann/quaxtools/pkg/render"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "quaxtools.toml"

// Config is the root of the TOML document.
type Config struct {
	Icons  Icons  `toml:"icons"`
	Author Author `toml:"author"`
}

// Icons configures the icon generator.
type Icons struct {
	Source       string `toml:"source"`
	ReadmeDir    string `toml:"readme_dir"`
	Background   string `toml:"background"`
	Renderer     string `toml:"renderer"`
	IconSize     int    `toml:"icon_size"`
	AdaptiveSize int    `toml:"adaptive_size"`
}

// Author configures the commit author resolver.
type Author struct {
	APIURL     string   `toml:"api_url"`
	Repository string   `toml:"repository"`
	Exempt     []string `toml:"exempt"`
	TokenEnv   string   `toml:"token_env"`
	Timeout    Duration `toml:"timeout"` // zero means no deadline
}

// Duration is a time.Duration read from a TOML string such as "30s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Icons: Icons{
			Source:       "assets/icon.svg",
			ReadmeDir:    "assets/readme",
			Background:   "#080808",
			Renderer:     render.DefaultBackend,
			IconSize:     2000,
			AdaptiveSize: 432,
		},
		Author: Author{
			APIURL:     github.DefaultBaseURL,
			Repository: "teskann/quax",
			Exempt:     []string{"teskann"},
			TokenEnv:   "GITHUB_TOKEN",
		},
	}
}

// Load reads path on top of [Default]. When optional is true a missing file
// yields the defaults instead of an error.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, qerrors.Wrap(qerrors.ErrCodeInvalidConfig, err, "read config")
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, qerrors.Wrap(qerrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, qerrors.New(qerrors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	return cfg, cfg.Validate()
}

// Validate checks values that would otherwise fail late, mid-pipeline.
func (c Config) Validate() error {
	if _, err := ParseColor(c.Icons.Background); err != nil {
		return err
	}
	if c.Icons.IconSize <= 0 || c.Icons.AdaptiveSize <= 0 {
		return qerrors.New(qerrors.ErrCodeInvalidConfig, "icon sizes must be positive (got %d and %d)", c.Icons.IconSize, c.Icons.AdaptiveSize)
	}
	if _, err := render.New(c.Icons.Renderer); err != nil {
		return err
	}
	if err := qerrors.ValidateURL(c.Author.APIURL); err != nil {
		return err
	}
	if _, _, err := qerrors.ValidateRepository(c.Author.Repository); err != nil {
		return err
	}
	if c.Author.Timeout.Duration < 0 {
		return qerrors.New(qerrors.ErrCodeInvalidConfig, "timeout cannot be negative")
	}
	return nil
}

// ParseColor parses a "#rrggbb" (or "#rgb") hex color into an opaque color.
func ParseColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return color.NRGBA{}, qerrors.Wrap(qerrors.ErrCodeInvalidColor, err, "invalid color %q", s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Token returns the API token from the configured environment variable, or "".
func (a Author) Token() string {
	if a.TokenEnv == "" {
		return ""
	}
	return os.Getenv(a.TokenEnv)
}

