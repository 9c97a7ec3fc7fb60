package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/imagecolors/internal/colour"
)

// Environment variables read by the extract command. Flags override them.
const (
	EnvQuality          = "IMAGECOLORS_QUALITY"
	EnvNoiseFloor       = "IMAGECOLORS_NOISE_FLOOR"
	EnvAccentSaturation = "IMAGECOLORS_ACCENT_SATURATION"
	EnvFillMissing      = "IMAGECOLORS_FILL_MISSING"
	EnvCache            = "IMAGECOLORS_CACHE"
	EnvCacheDir         = "IMAGECOLORS_CACHE_DIR"
)

// Config holds the extract command settings.
type Config struct {
	Quality          string
	NoiseFloor       float64
	AccentSaturation float64
	FillMissing      bool
	Cache            bool
	CacheDir         string
	Format           string
	Output           string
	Preview          bool
	Random           bool
	Jobs             int
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Quality:    colour.DefaultQuality.String(),
		NoiseFloor: colour.DefaultNoiseFloor,
		Format:     "text",
	}
}

// ApplyEnv overrides cfg with any IMAGECOLORS_* variables that are set.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvQuality); v != "" {
		c.Quality = v
	}
	if v := os.Getenv(EnvNoiseFloor); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvNoiseFloor, err)
		}
		c.NoiseFloor = f
	}
	if v := os.Getenv(EnvAccentSaturation); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvAccentSaturation, err)
		}
		c.AccentSaturation = f
	}
	if v := os.Getenv(EnvFillMissing); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvFillMissing, err)
		}
		c.FillMissing = b
	}
	if v := os.Getenv(EnvCache); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvCache, err)
		}
		c.Cache = b
	}
	if v := os.Getenv(EnvCacheDir); v != "" {
		c.CacheDir = v
	}
	return nil
}

// RegisterFlags adds the extract flags to fs, bound to c.
func (c *Config) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Quality, "quality", "Q", c.Quality,
		fmt.Sprintf("analysis quality (%s)", strings.Join(qualityNames(), ", ")))
	fs.StringVarP(&c.Format, "format", "f", c.Format, "output format (text, hex, rgb, json)")
	fs.StringVarP(&c.Output, "output", "o", c.Output, "output file (default: stdout)")
	fs.BoolVar(&c.Preview, "preview", c.Preview, "show colour swatches in the terminal")
	fs.Float64Var(&c.NoiseFloor, "noise-floor", c.NoiseFloor, "fraction of pixels below which a colour is ignored")
	fs.Float64Var(&c.AccentSaturation, "accent-saturation", c.AccentSaturation, "maximum accent saturation, 0 to disable")
	fs.BoolVar(&c.FillMissing, "fill-missing", c.FillMissing, "fill missing accents with black or white")
	fs.BoolVar(&c.Cache, "cache", c.Cache, "cache downloaded images on disk")
	fs.StringVar(&c.CacheDir, "cache-dir", c.CacheDir, "directory for cached images (default: user cache dir)")
	fs.BoolVar(&c.Random, "random", c.Random, "pick one random image when given a directory")
	fs.IntVarP(&c.Jobs, "jobs", "j", c.Jobs, "images analysed at once in a directory (default: number of CPUs)")
}

// MergeFlags copies the values of flags set on the command line into base.
// Flags left at their defaults do not override base.
func (c *Config) MergeFlags(fs *pflag.FlagSet, base Config) Config {
	merged := base
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "quality":
			merged.Quality = c.Quality
		case "format":
			merged.Format = c.Format
		case "output":
			merged.Output = c.Output
		case "preview":
			merged.Preview = c.Preview
		case "noise-floor":
			merged.NoiseFloor = c.NoiseFloor
		case "accent-saturation":
			merged.AccentSaturation = c.AccentSaturation
		case "fill-missing":
			merged.FillMissing = c.FillMissing
		case "cache":
			merged.Cache = c.Cache
		case "cache-dir":
			merged.CacheDir = c.CacheDir
		case "random":
			merged.Random = c.Random
		case "jobs":
			merged.Jobs = c.Jobs
		}
	})
	return merged
}

// SelectorOptions returns the palette selection options for c.
func (c Config) SelectorOptions() (colour.SelectorOptions, error) {
	opts := colour.SelectorOptions{
		NoiseFloor:       c.NoiseFloor,
		AccentSaturation: c.AccentSaturation,
		FillMissing:      c.FillMissing,
	}
	if err := opts.Validate(); err != nil {
		return colour.SelectorOptions{}, err
	}
	return opts, nil
}

func qualityNames() []string {
	var names []string
	for _, q := range colour.ValidQualities() {
		names = append(names, q.String())
	}
	return names
}
