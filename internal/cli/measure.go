package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/loupe-dev/loupe/internal/source"
)

// progressThreshold is the file count above which measure shows a
// progress bar.
const progressThreshold = 10

var measureCmd = &cobra.Command{
	Use:   "measure <path>...",
	Short: "Measure source files before reading them",
	Long: `Measure reports cheap metrics for one or more files: total lines,
non-empty lines, approximate comment lines, byte size and the detected
language. Use it to decide whether a file is worth outlining instead of
reading whole.

Example:
  loupe measure src/main.py
  loupe measure internal/**/*.go`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMeasure,
}

func init() {
	rootCmd.AddCommand(measureCmd)
}

func runMeasure(cmd *cobra.Command, args []string) error {
	engine, cfg, err := buildEngine()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	var bar *progressbar.ProgressBar
	if len(args) > progressThreshold && !jsonOutput(cfg) {
		bar = progressbar.NewOptions(len(args),
			progressbar.OptionSetDescription("Measuring files"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionClearOnFinish(),
		)
	}

	results := make([]*source.Metrics, 0, len(args))
	var firstErr error
	for _, path := range args {
		metrics, err := engine.Measure(ctx, path, flagLang)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			fmt.Fprintf(os.Stderr, "loupe: %s: %v\n", path, err)
		} else {
			results = append(results, metrics)
		}
		if bar != nil {
			bar.Add(1)
		}
	}

	if jsonOutput(cfg) {
		if err := printJSON(os.Stdout, results); err != nil {
			return err
		}
	} else {
		printMetricsTable(results)
	}

	if firstErr != nil {
		return fmt.Errorf("%d of %d files failed", len(args)-len(results), len(args))
	}
	return nil
}

func printMetricsTable(results []*source.Metrics) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PATH\tLANG\tLINES\tNON-EMPTY\tCOMMENTS\tBYTES")
	for _, m := range results {
		language := m.Language
		if language == "" {
			language = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\n",
			m.Path, language, m.TotalLines, m.NonEmptyLines, m.CommentLines, m.ByteSize)
	}
	w.Flush()
}
