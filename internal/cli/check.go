package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/udonlang/udon/internal/logging"
	"github.com/udonlang/udon/internal/ui/pretty"
	"github.com/udonlang/udon/pkg/runner"
)

func newCheckCommand(flags *rootFlags) *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Parse documents and report errors",
		Long: `Parse every matching document under the given paths and report any
in-stream errors with their byte spans. Directories are walked
recursively; with no arguments the current directory is checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			log := logging.Default()
			ctx := logging.WithLogger(cmd.Context(), log)

			opts := runner.Options{
				Paths:        args,
				Extensions:   cfg.Extensions,
				ExcludeGlobs: cfg.Exclude,
				Jobs:         jobs,
			}
			if opts.Jobs == 0 {
				opts.Jobs = cfg.Jobs
			}
			log.Debug("starting check",
				logging.FieldPaths, opts.Paths,
				logging.FieldJobs, opts.Jobs,
			)

			result, err := runner.Run(ctx, opts)
			if err != nil {
				return err
			}

			styles := pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, os.Stdout))
			out := cmd.OutOrStdout()
			for _, file := range result.Files {
				if file.Err != nil {
					fmt.Fprintf(out, "  %s  %s\n",
						styles.FilePath.Render(file.Path),
						styles.Failure.Render(file.Err.Error()))
					continue
				}
				for _, d := range file.Summary.Diagnostics {
					fmt.Fprintln(out, styles.FormatDiagnostic(file.Path, d))
				}
			}
			fmt.Fprintln(out, styles.FormatRunSummary(result))

			log.Debug("check finished",
				logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
				logging.FieldFilesParsed, result.Stats.FilesParsed,
				logging.FieldFilesErrored, result.Stats.FilesErrored,
				logging.FieldDiagnosticsTotal, result.Stats.DiagnosticsTotal,
			)

			if result.HasFailures() {
				return ErrRunFailed
			}
			if result.HasDiagnostics() {
				return ErrDocumentErrors
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")

	return cmd
}
