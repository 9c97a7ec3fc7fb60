package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jmylchreest/imagecolors/internal/colour"
	"github.com/jmylchreest/imagecolors/internal/image"
	"github.com/jmylchreest/imagecolors/internal/util/imagecache"
	"github.com/jmylchreest/imagecolors/pkg/imagecolors"
)

// batchResult is the outcome for one image of a directory run.
type batchResult struct {
	source  string
	palette *colour.Palette
	err     error
}

// newExtractCmd creates the extract command.
func newExtractCmd(root *rootOptions) *cobra.Command {
	flags := DefaultConfig()

	cmd := &cobra.Command{
		Use:   "extract <image|url|directory>",
		Short: "Extract background and accent colours from an image",
		Long: `Extract a background colour and up to three accent colours from an image.

The image is optionally scaled down according to --quality, its colours are
counted and grouped, and the most common group becomes the background. Accents
are picked from the remaining groups so that each contrasts with the background
and differs from the accents already chosen.

When given a directory, every supported image in it is processed and the
results are printed in name order. A URL is downloaded first.

Supported image formats: JPEG, PNG, GIF, WebP

Configuration is read from IMAGECOLORS_* environment variables (or a .env file)
and overridden by flags.

Examples:
  # Extract colours at full resolution
  imagecolors extract wallpaper.jpg

  # Faster analysis on a downscaled copy, with terminal swatches
  imagecolors extract -Q low --preview wallpaper.png

  # JSON output for every image in a directory
  imagecolors extract -f json ~/Pictures/wallpapers

  # Always return three accents
  imagecolors extract --fill-missing https://example.com/cover.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := DefaultConfig()
			if err := base.ApplyEnv(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			cfg := flags.MergeFlags(cmd.Flags(), base)
			return runExtract(cmd, args[0], cfg, root.logger(cmd))
		},
	}

	flags.RegisterFlags(cmd.Flags())
	return cmd
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, path string, cfg Config, logger hclog.Logger) error {
	quality, err := colour.ParseQuality(cfg.Quality)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	selector, err := cfg.SelectorOptions()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := formatPalette(&colour.Palette{}, cfg.Format); err != nil {
		return err
	}

	if err := image.ValidateImagePath(path); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	loader := image.NewSmartLoader()
	if cfg.Cache {
		loader.Cache = &imagecache.CacheOptions{CacheDir: cfg.CacheDir}
	}

	extractor := imagecolors.New(
		imagecolors.WithLogger(logger.Named("extractor")),
		imagecolors.WithSelectorOptions(selector),
	)

	paths, isDir, err := resolveInputs(path)
	if err != nil {
		return err
	}
	if isDir && cfg.Random {
		selected, err := image.SelectRandomImage(paths)
		if err != nil {
			return fmt.Errorf("failed to select image: %w", err)
		}
		logger.Debug("selected random image", "path", selected)
		paths, isDir = []string{selected}, false
	}

	if !isDir {
		palette, err := extractOne(loader, extractor, paths[0], quality, logger)
		if err != nil {
			return err
		}
		output, err := renderPalette(cmd, palette, cfg, logger)
		if err != nil {
			return err
		}
		return writeOutput(cmd, cfg.Output, output, logger)
	}

	results := extractBatch(loader, extractor, paths, quality, cfg.Jobs, logger)
	output, err := formatBatch(results, cfg.Format)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	if err := writeOutput(cmd, cfg.Output, output, logger); err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d images failed", failed, len(results))
	}
	return nil
}

// resolveInputs expands a directory into its images. Files and URLs are
// returned as is.
func resolveInputs(path string) ([]string, bool, error) {
	if image.IsURL(path) {
		return []string{path}, false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to access image path: %w", err)
	}
	if !info.IsDir() {
		return []string{path}, false, nil
	}

	paths, err := image.ScanDirectoryForImages(path)
	if err != nil {
		return nil, false, err
	}
	return paths, true, nil
}

// extractOne loads and analyses a single image.
func extractOne(loader image.Loader, e *imagecolors.Extractor, path string, quality colour.Quality, logger hclog.Logger) (*colour.Palette, error) {
	logger.Debug("loading image", "path", path)
	img, err := loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	bounds := img.Bounds()
	logger.Debug("image loaded", "width", bounds.Dx(), "height", bounds.Dy(), "quality", quality)

	palette, err := e.Extract(img, quality)
	if err != nil {
		return nil, fmt.Errorf("failed to extract colours: %w", err)
	}
	return palette, nil
}

// extractBatch analyses paths on at most workers goroutines and returns the
// results in input order. Each image is loaded inside its task so only the
// images in flight are held in memory. Failures are recorded per image.
func extractBatch(loader image.Loader, e *imagecolors.Extractor, paths []string, quality colour.Quality, workers int, logger hclog.Logger) []batchResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	jobID := uuid.NewString()
	logger = logger.With("job", jobID)
	logger.Debug("starting batch", "images", len(paths), "workers", workers, "quality", quality)

	results := make([]batchResult, len(paths))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, path := range paths {
		g.Go(func() error {
			results[i].source = path
			img, err := loader.Load(path)
			if err != nil {
				results[i].err = fmt.Errorf("failed to load image: %w", err)
				logger.Error("failed to load image", "path", path, "error", err)
				return nil
			}
			palette, err := e.Extract(img, quality)
			if err != nil {
				results[i].err = fmt.Errorf("failed to extract colours: %w", err)
				logger.Error("failed to extract colours", "path", path, "error", err)
				return nil
			}
			results[i].palette = palette
			return nil
		})
	}
	// Tasks record their own failures and never return an error.
	_ = g.Wait()

	logger.Debug("batch complete", "images", len(paths))
	return results
}

// renderPalette formats a single palette, using swatches when a preview was
// requested and stdout is a terminal.
func renderPalette(cmd *cobra.Command, p *colour.Palette, cfg Config, logger hclog.Logger) (string, error) {
	if cfg.Preview {
		switch {
		case cfg.Output != "":
			logger.Warn("preview ignored when writing to a file")
		case cfg.Format != "text":
			logger.Warn("preview only applies to text output", "format", cfg.Format)
		case !isTerminal(cmd.OutOrStdout()):
			logger.Debug("preview disabled, stdout is not a terminal")
		default:
			return formatPreview(p), nil
		}
	}

	output, err := formatPalette(p, cfg.Format)
	if err != nil {
		return "", fmt.Errorf("failed to format output: %w", err)
	}
	return output, nil
}

// writeOutput writes output to path, or to the command's stdout when path is
// empty.
func writeOutput(cmd *cobra.Command, path, output string, logger hclog.Logger) error {
	if path == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), output)
		return err
	}

	logger.Debug("writing output", "path", path)
	if err := os.WriteFile(path, []byte(output), 0o644); err != nil { // #nosec G306 - Palette output is not sensitive
		return fmt.Errorf("failed to write output file: %w", err)
	}
	logger.Info("wrote palette", "path", path)
	return nil
}
