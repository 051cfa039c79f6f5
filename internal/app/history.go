package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/itslokeshx/devintel/internal/config"
	"github.com/itslokeshx/devintel/internal/output"
	"github.com/itslokeshx/devintel/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List cached analyses",
	Long:  `List every analysis in the local cache, newest first, with its expiry.`,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if _, err := setup(); err != nil {
		return err
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	defer db.Close()

	entries, err := db.ListAnalyses()
	if err != nil {
		return fmt.Errorf("listing analyses: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No cached analyses. Run 'devintel analyze <username>' first.")
		return nil
	}

	fmt.Println(output.Section("Cached Analyses"))

	now := time.Now()
	tbl := output.NewTable("Username", "Dev score", "Repos", "Analyzed", "Expires")
	for _, e := range entries {
		expires := e.ExpiresAt.Format("2006-01-02")
		if e.ExpiresAt.Before(now) {
			expires = output.StyleError.Render("expired")
		}
		tbl.AddRow(
			e.Username,
			fmt.Sprintf("%d", e.DevScore),
			fmt.Sprintf("%d", e.RepoCount),
			e.AnalyzedAt.Format("2006-01-02 15:04"),
			expires,
		)
	}
	fmt.Println(indent(tbl.Render()))

	return nil
}
