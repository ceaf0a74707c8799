package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/moonbite/onboard/internal/catalog"
	"github.com/moonbite/onboard/internal/cert"
	"github.com/moonbite/onboard/internal/progress"
	"github.com/moonbite/onboard/internal/store"
)

// exportCmd renders the completion certificate without the TUI, for users
// who finished training and just want the file.
var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export the completion certificate as a PNG",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cat, err := catalog.Default()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
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

		user, err := store.LoadUser(ctx, kv)
		if err != nil {
			return fmt.Errorf("load user: %w", err)
		}
		if user == nil {
			return fmt.Errorf("no saved identity; run the training first")
		}
		if !progress.AllCompleted(user.Progress, cat) {
			return fmt.Errorf("training incomplete: %d of %d modules done",
				progress.CompletedCount(user.Progress), cat.Len())
		}

		path := cert.DefaultFilename(user.Name)
		if len(args) == 1 {
			path = args[0]
		}
		if err := cert.Export(path, user.Name, time.Now(), cert.NewSerial()); err != nil {
			return err
		}
		fmt.Println("Certificate written to", path)
		return nil
	},
}
