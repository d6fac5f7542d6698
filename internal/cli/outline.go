package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/loupe-dev/loupe/internal/lang"
	"github.com/loupe-dev/loupe/internal/structure"
)

var flagConstructs []string

var outlineCmd = &cobra.Command{
	Use:   "outline <path>",
	Short: "Outline the structure of a source file",
	Long: `Outline parses a file and prints its structural elements with exact
start and end lines, indented by nesting. Feed the line ranges to
'loupe read' to extract just the element you need.

Example:
  loupe outline src/main.py
  loupe outline --constructs class,method src/Service.java`,
	Args: cobra.ExactArgs(1),
	RunE: runOutline,
}

func init() {
	outlineCmd.Flags().StringSliceVarP(&flagConstructs, "constructs", "c", nil,
		"construct kinds to include (default: all the language supports)")
	rootCmd.AddCommand(outlineCmd)
}

func runOutline(cmd *cobra.Command, args []string) error {
	engine, cfg, err := buildEngine()
	if err != nil {
		return err
	}

	constructs := make([]lang.Construct, 0, len(flagConstructs))
	for _, c := range flagConstructs {
		constructs = append(constructs, lang.Construct(c))
	}

	analysis, err := engine.Analyze(cmd.Context(), args[0], flagLang, constructs)
	if err != nil {
		return err
	}

	if jsonOutput(cfg) {
		return printJSON(os.Stdout, analysis)
	}
	printOutline(analysis)
	return nil
}

func printOutline(a *structure.Analysis) {
	fmt.Printf("%s (%s)\n", a.Path, a.Language)
	if len(a.Elements) == 0 {
		fmt.Println("  no elements found")
	} else {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for i, el := range a.Elements {
			indent := strings.Repeat("  ", a.Depth(i))
			label := el.Name
			if el.Signature != "" && el.Signature != el.Name {
				label = el.Signature
			}
			fmt.Fprintf(w, "%s%s\t%s\t%d-%d\n", indent, el.Kind, label, el.StartLine, el.EndLine)
		}
		w.Flush()
	}

	for _, d := range a.Diagnostics {
		fmt.Fprintf(os.Stderr, "loupe: %s: %s\n", d.Construct, d.Message)
	}
}
