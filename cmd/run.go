package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/moonbite/onboard/internal/app"
	"github.com/moonbite/onboard/internal/catalog"
	"github.com/moonbite/onboard/internal/identity"
	"github.com/moonbite/onboard/internal/screen"
	"github.com/moonbite/onboard/internal/screens/dashboard"
	"github.com/moonbite/onboard/internal/screens/login"
	"github.com/moonbite/onboard/internal/store"
	"github.com/moonbite/onboard/internal/ui/theme"
)

// runApp opens the store, restores saved state, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cat, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	kv := openKV(cmd)
	defer kv.Close()

	mode, err := store.LoadTheme(ctx, kv, string(theme.DefaultMode))
	if err != nil {
		fmt.Fprintln(os.Stderr, "load theme:", err)
	}
	theme.Apply(theme.ParseMode(mode))

	saved, err := store.LoadUser(ctx, kv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load user:", err)
		saved = nil
	}

	dashboard.SetLoginFactory(func(st *app.State, u *identity.User) screen.Screen {
		return login.New(st, u)
	})

	// A recent enough login resumes straight to the dashboard.
	if saved != nil && saved.CanResume(time.Now()) {
		saved.Touch(time.Now())
		state := app.NewState(kv, cat, saved)
		state.SaveUser()
		return app.Run(state, dashboard.New(state))
	}

	state := app.NewState(kv, cat, nil)
	return app.Run(state, login.New(state, saved))
}

// openKV opens the SQLite store, degrading to the in-memory store when the
// database cannot be opened. The session then works normally but saves
// nothing.
func openKV(cmd *cobra.Command) store.KV {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "resolve DB path:", err)
		fmt.Fprintln(os.Stderr, "Progress will not be saved this session.")
		return store.NewMemory()
	}

	kv, err := store.Open(dbPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open store:", err)
		fmt.Fprintln(os.Stderr, "Progress will not be saved this session.")
		return store.NewMemory()
	}
	return kv
}
