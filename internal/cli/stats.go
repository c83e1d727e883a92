package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/udonlang/udon/internal/logging"
	"github.com/udonlang/udon/internal/ui/pretty"
	"github.com/udonlang/udon/pkg/runner"
)

func newStatsCommand(flags *rootFlags) *cobra.Command {
	var jobs int
	var topNames int

	cmd := &cobra.Command{
		Use:   "stats [path...]",
		Short: "Summarize the structure of documents",
		Long: `Parse every matching document under the given paths and print per-file
structure statistics: event and element counts, attribute counts, and
maximum nesting depth.`,
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

			result, err := runner.Run(ctx, opts)
			if err != nil {
				return err
			}

			styles := pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, os.Stdout))
			out := cmd.OutOrStdout()
			names := map[string]int{}
			for _, file := range result.Files {
				if file.Err != nil {
					fmt.Fprintf(out, "%s  %s\n",
						styles.FilePath.Render(file.Path),
						styles.Failure.Render(file.Err.Error()))
					continue
				}
				fmt.Fprintln(out, styles.FormatFileSummary(file.Path, file.Summary))
				for name, n := range file.Summary.ElementNames {
					names[name] += n
				}
			}
			if topNames > 0 && len(names) > 0 {
				fmt.Fprintln(out, styles.SummaryTitle.Render("Top elements"))
				for _, nc := range topElementNames(names, topNames) {
					fmt.Fprintf(out, "  %s %s\n",
						styles.Name.Render(nc.name),
						styles.Dim.Render(fmt.Sprintf("×%d", nc.count)))
				}
			}
			fmt.Fprintln(out, styles.FormatRunSummary(result))

			if result.HasFailures() {
				return ErrRunFailed
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().IntVar(&topNames, "top", 10, "show the N most frequent element names (0 = off)")

	return cmd
}

type nameCount struct {
	name  string
	count int
}

// topElementNames returns the n most frequent names, ties broken
// alphabetically for stable output.
func topElementNames(names map[string]int, n int) []nameCount {
	out := make([]nameCount, 0, len(names))
	for name, count := range names {
		out = append(out, nameCount{name, count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].name < out[j].name
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
