// Package cli wires the loupe commands: measure, outline, read, mcp and
// version. Presentation only; all analysis goes through internal/analyzer.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagVerbose bool
	flagJSON    bool
	flagRoot    string
	flagLang    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "loupe",
	Short: "Loupe - structural analysis for source files too large to read",
	Long: `Loupe helps you understand a source file without reading all of it:
measure its size, outline its structure with exact line positions, then
extract just the lines you need.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "directory to load .loupe/config.yml from (default: project root)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "JSON output")
	rootCmd.PersistentFlags().StringVar(&flagRoot, "root", "", "project root override (default: auto-detected)")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "", "language id override (default: auto-detected)")
}
