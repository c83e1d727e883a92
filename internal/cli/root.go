// Package cli provides the Cobra command structure for udon.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/udonlang/udon/internal/configloader"
	"github.com/udonlang/udon/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	debug      bool
	configPath string
	color      string
}

// NewRootCommand creates the root udon command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "udon",
		Short: "A streaming parser for the UDON document notation",
		Long: `udon parses UDON documents, an indentation-sensitive notation with
elements, typed attribute values, embedded elements, directives, and
freeform blocks, into a flat stream of structural events.

It never builds a tree: the event stream is emitted as the input is
consumed, with in-stream error reporting and guaranteed well-formed
Start/End pairing even for malformed documents.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flags.debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", "",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newEventsCommand(flags))
	rootCmd.AddCommand(newCheckCommand(flags))
	rootCmd.AddCommand(newStatsCommand(flags))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// loadConfig resolves the configuration and overlays the persistent flags.
func loadConfig(flags *rootFlags) (*configloader.Config, error) {
	result, err := configloader.Load("", flags.configPath)
	if err != nil {
		return nil, err
	}
	cfg := result.Config
	if flags.color != "" {
		cfg.Color = flags.color
	}
	if result.Path != "" {
		logging.Default().Debug("loaded config", logging.FieldPath, result.Path)
	}
	return cfg, nil
}

// isStdin reports whether the path argument means standard input.
func isStdin(path string) bool {
	return path == "-"
}

// readInput reads a document from a file or standard input.
func readInput(path string) ([]byte, error) {
	if isStdin(path) {
		return readAll(os.Stdin)
	}
	return os.ReadFile(path)
}
