// Package cli provides the command-line interface for imagecolors.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/imagecolors/internal/version"
)

// rootOptions holds the global flags.
type rootOptions struct {
	verbose bool
	quiet   bool
}

// logger builds the logger for a command run, writing to its stderr.
func (o *rootOptions) logger(cmd *cobra.Command) hclog.Logger {
	return newLogger(cmd.ErrOrStderr(), o.verbose, o.quiet)
}

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "imagecolors",
		Short: "Extract background and accent colours from images",
		Long: `imagecolors analyses an image and picks a background colour plus up to
three accent colours that stand out against it, for theming album art,
wallpapers and cover images.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newExtractCmd(opts))

	return rootCmd
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
