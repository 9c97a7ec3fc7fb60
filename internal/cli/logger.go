package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// newLogger builds the command logger. Quiet wins over verbose.
func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Info
	switch {
	case quiet:
		level = hclog.Error
	case verbose:
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "imagecolors",
		Output: w,
		Level:  level,
	})
}
