package app

import (
	"context"
	"fmt"
	"os"

	"github.com/moonbite/onboard/internal/catalog"
	"github.com/moonbite/onboard/internal/identity"
	"github.com/moonbite/onboard/internal/progress"
	"github.com/moonbite/onboard/internal/store"
	"github.com/moonbite/onboard/internal/ui/theme"
)

// State is the application state passed down to every screen: the catalog,
// the persistence handle, and the active user. Screens mutate the user
// through it so the progress and quiz packages stay pure.
type State struct {
	Store   store.KV
	Catalog *catalog.Catalog
	User    *identity.User
}

// NewState wires a state object.
func NewState(kv store.KV, cat *catalog.Catalog, user *identity.User) *State {
	return &State{Store: kv, Catalog: cat, User: user}
}

// SetUser installs a new active user and persists the record.
func (s *State) SetUser(u *identity.User) {
	s.User = u
	s.SaveUser()
}

// SaveUser rewrites the identity record. Persistence failures are logged
// and swallowed: the session continues on the in-memory state.
func (s *State) SaveUser() {
	if s.User == nil {
		return
	}
	if err := store.SaveUser(context.Background(), s.Store, s.User); err != nil {
		fmt.Fprintln(os.Stderr, "save user:", err)
	}
}

// SaveTheme persists the theme preference. Failures are logged and
// swallowed like any other persistence failure.
func (s *State) SaveTheme(mode theme.Mode) {
	if err := store.SaveTheme(context.Background(), s.Store, string(mode)); err != nil {
		fmt.Fprintln(os.Stderr, "save theme:", err)
	}
}

// OverallPercent returns the user's overall completion percentage for the
// header, zero before login.
func (s *State) OverallPercent() int {
	if s.User == nil {
		return 0
	}
	return progress.OverallPercent(s.User.Progress, s.Catalog)
}
