// Package imagecolors extracts a background colour and up to three accent
// colours from a decoded image.
//
// Extraction is a pure, synchronous computation. An Extractor holds no
// mutable state and may be shared between goroutines; ExtractAsync runs the
// same computation on the extractor's executor and delivers one Result.
package imagecolors

import (
	"fmt"
	"image"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/imagecolors/internal/colour"
	imageutil "github.com/jmylchreest/imagecolors/internal/image"
)

// Re-exported types so callers outside this module can name them.
type (
	RGB             = colour.RGB
	Palette         = colour.Palette
	Quality         = colour.Quality
	SelectorOptions = colour.SelectorOptions
	Resampler       = imageutil.Resampler
	ResizeError     = imageutil.ResizeError
	ResizeCode      = imageutil.ResizeCode
	DecodeError     = imageutil.DecodeError
)

// Qualities, re-exported from the colour package.
const (
	QualityOriginal = colour.QualityOriginal
	QualityLowest   = colour.QualityLowest
	QualityLow      = colour.QualityLow
	QualityMedium   = colour.QualityMedium
	QualityHigh     = colour.QualityHigh
	DefaultQuality  = colour.DefaultQuality
)

// Result is delivered by ExtractAsync.
type Result struct {
	Palette *Palette
	Err     error
}

// Executor runs a task, usually on another goroutine.
type Executor func(task func())

// Extractor runs the extraction pipeline: normalise and scale the image,
// build the colour histogram and select the palette.
type Extractor struct {
	logger    hclog.Logger
	resampler Resampler
	selector  SelectorOptions
	executor  Executor
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger used for debug output.
func WithLogger(logger hclog.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithResampler replaces the default Catmull-Rom resampler.
func WithResampler(r Resampler) Option {
	return func(e *Extractor) {
		if r != nil {
			e.resampler = r
		}
	}
}

// WithSelectorOptions sets the palette selection options.
func WithSelectorOptions(opts SelectorOptions) Option {
	return func(e *Extractor) {
		e.selector = opts
	}
}

// WithExecutor sets where ExtractAsync runs. The default starts a goroutine.
func WithExecutor(exec Executor) Option {
	return func(e *Extractor) {
		if exec != nil {
			e.executor = exec
		}
	}
}

// New creates an Extractor.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		logger:    hclog.NewNullLogger(),
		resampler: imageutil.NewResampler(),
		selector:  colour.DefaultSelectorOptions(),
		executor:  func(task func()) { go task() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultExtractor = New()

// Extract runs the default extractor on img.
func Extract(img image.Image, quality Quality) (*Palette, error) {
	return defaultExtractor.Extract(img, quality)
}

// Extract returns the palette of img analysed at the given quality. Any
// resampling failure is returned wrapped and no palette is produced.
func (e *Extractor) Extract(img image.Image, quality Quality) (*Palette, error) {
	if err := e.selector.Validate(); err != nil {
		return nil, fmt.Errorf("invalid selector options: %w", err)
	}

	var hist *colour.Histogram
	if img != nil && img.Bounds().Empty() {
		// Nothing to resample; an empty histogram yields the black fallback.
		hist = colour.NewHistogram(nil, 0)
	} else {
		var srcSize image.Point
		if img != nil {
			srcSize = img.Bounds().Size()
		}
		target := quality.TargetSize(srcSize)
		e.logger.Debug("normalising image", "source", srcSize, "target", target, "quality", quality)

		buf, err := e.resampler.Resample(img, target)
		if err != nil {
			return nil, fmt.Errorf("failed to normalise image: %w", err)
		}
		hist = colour.BuildHistogram(buf)
	}
	e.logger.Trace("built histogram", "colours", hist.Len(), "area", hist.Area)

	palette := colour.SelectPalette(hist, e.selector)
	e.logger.Debug("selected palette",
		"background", palette.Background.Hex(),
		"accents", len(palette.Accents()))

	return &palette, nil
}

// ExtractAsync runs Extract on the extractor's executor. The returned
// channel receives exactly one Result and is then closed.
func (e *Extractor) ExtractAsync(img image.Image, quality Quality) <-chan Result {
	out := make(chan Result, 1)
	e.executor(func() {
		defer close(out)
		palette, err := e.Extract(img, quality)
		out <- Result{Palette: palette, Err: err}
	})
	return out
}
