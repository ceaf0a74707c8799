package store

import (
	"context"

	"github.com/moonbite/onboard/internal/identity"
)

// Record keys. One logical record per key, rewritten in full on change.
const (
	KeyUser  = "user"
	KeyTheme = "theme"
)

// LoadUser reads the saved identity record. nil means no record exists.
func LoadUser(ctx context.Context, kv KV) (*identity.User, error) {
	var u identity.User
	ok, err := kv.Get(ctx, KeyUser, &u)
	if err != nil || !ok {
		return nil, err
	}
	return &u, nil
}

// SaveUser rewrites the identity record.
func SaveUser(ctx context.Context, kv KV, u *identity.User) error {
	return kv.Put(ctx, KeyUser, u)
}

// LoadTheme reads the saved theme preference, falling back to the supplied
// default when absent.
func LoadTheme(ctx context.Context, kv KV, fallback string) (string, error) {
	var t string
	ok, err := kv.Get(ctx, KeyTheme, &t)
	if err != nil || !ok {
		return fallback, err
	}
	return t, nil
}

// SaveTheme rewrites the theme preference.
func SaveTheme(ctx context.Context, kv KV, theme string) error {
	return kv.Put(ctx, KeyTheme, theme)
}
