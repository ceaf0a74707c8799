package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moonbite/onboard/internal/store"
)

// resetCmd deletes the saved identity and its progress. There is no
// in-product reset; this is the remediation path for re-running training.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the saved identity and all progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("refusing to delete saved progress without --force")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		kv, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer kv.Close()

		if err := kv.Delete(cmd.Context(), store.KeyUser); err != nil {
			return fmt.Errorf("delete identity: %w", err)
		}
		fmt.Println("Saved identity and progress deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Confirm deletion")
}
