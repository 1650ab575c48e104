package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/spendview-dev/spendview/internal/buildinfo"
	"github.com/spendview-dev/spendview/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "spendview",
		Short:   "Reconcile and classify financial export files",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log skipped and degraded rows")
	rootCmd.PersistentFlags().String("config", "", "path to spendview.yaml")

	rootCmd.AddCommand(newUnifyCommand(&verbose))
	rootCmd.AddCommand(newSubsCommand(&verbose))
	rootCmd.AddCommand(newDiffCommand(&verbose))

	return rootCmd
}

// newLogger builds the CLI logger. Degraded-row detail sits at debug
// level and only surfaces with --verbose.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// loadConfig reads the configured spendview.yaml, falling back to
// defaults when no path is given or the file is absent.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
