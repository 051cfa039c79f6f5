// Package app contains the Cobra command tree for devintel.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "devintel",
	Short: "Developer intelligence from public GitHub activity",
	Long: `devintel fetches a developer's public GitHub activity and derives
heuristic intelligence from it: per-repository health and maturity, composite
0-100 scores, contribution streaks and gaps, inferred language skills, and
a yearly activity breakdown.

Results are cached locally so repeated lookups do not re-hit the API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("devintel", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  analyze   Fetch a user's activity and derive their metrics")
		fmt.Println("  report    Generate a narrative profile summary")
		fmt.Println("  history   List cached analyses")
		fmt.Println("  purge     Remove expired analyses from the cache")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/devintel/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
}
