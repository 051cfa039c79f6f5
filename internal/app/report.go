package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/itslokeshx/devintel/internal/config"
	"github.com/itslokeshx/devintel/internal/narrative"
	"github.com/itslokeshx/devintel/internal/output"
	"github.com/itslokeshx/devintel/internal/store"
	"github.com/spf13/cobra"
)

var reportRefresh bool

var reportCmd = &cobra.Command{
	Use:   "report <username>",
	Short: "Generate a narrative profile summary",
	Long: `Generate a prose summary of a user's derived metrics. Uses the cached
analysis when available, fetching fresh data otherwise.

When an AI chat backend is configured (ai.base_url), the summary is written
by the model from the derived metrics; otherwise a deterministic rule-based
summary is produced.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&reportRefresh, "refresh", false, "Ignore the cache and fetch fresh data")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	defer db.Close()

	result, _, err := loadOrAnalyze(cmd.Context(), cfg, db, args[0], reportRefresh)
	if err != nil {
		return err
	}

	summary, genErr := narrative.Generate(cmd.Context(), narrative.ChatConfig{
		BaseURL: cfg.AI.BaseURL,
		Model:   cfg.AI.Model,
		Token:   cfg.AI.Token,
	}, narrative.BuildPrompt(result))
	aiGenerated := genErr == nil
	if genErr != nil {
		summary = narrative.FallbackSummary(result)
	}

	if flagJSON {
		out := struct {
			Username    string `json:"username"`
			Summary     string `json:"summary"`
			AIGenerated bool   `json:"ai_generated"`
		}{result.Username, summary, aiGenerated}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println(output.Section(fmt.Sprintf("Profile Summary: %s", result.Username)))
	fmt.Println()
	fmt.Println(" " + summary)
	fmt.Println()
	if !aiGenerated && cfg.AI.BaseURL != "" {
		fmt.Printf(" %s\n", output.StyleMuted.Render(
			fmt.Sprintf("AI backend unavailable (%v); showing rule-based summary", genErr)))
	}

	return nil
}
