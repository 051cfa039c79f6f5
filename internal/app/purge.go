package app

import (
	"fmt"
	"time"

	"github.com/itslokeshx/devintel/internal/config"
	"github.com/itslokeshx/devintel/internal/store"
	"github.com/spf13/cobra"
)

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove expired analyses from the cache",
	RunE:  runPurge,
}

func init() {
	rootCmd.AddCommand(purgeCmd)
}

func runPurge(cmd *cobra.Command, args []string) error {
	if _, err := setup(); err != nil {
		return err
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	defer db.Close()

	removed, err := db.PurgeExpired(time.Now())
	if err != nil {
		return fmt.Errorf("purging cache: %w", err)
	}

	if removed == 0 {
		fmt.Println("Nothing to purge.")
		return nil
	}
	fmt.Printf("Removed %d expired analysis(es).\n", removed)

	return nil
}
