package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/moonbite/onboard/internal/identity"
	"github.com/moonbite/onboard/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "onboard.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetAbsentKey(t *testing.T) {
	s := openTestStore(t)

	var v string
	ok, err := s.Get(context.Background(), "missing", &v)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("Get reported an absent key as present")
	}
	if v != "" {
		t.Errorf("Get touched the destination: %q", v)
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	in := record{Name: "proofing", Count: 3}
	if err := s.Put(ctx, "r", in); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var out record
	ok, err := s.Get(ctx, "r", &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("Get did not find the written key")
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestPutOverwrites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, "k", "first"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put(ctx, "k", "second"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var v string
	if _, err := s.Get(ctx, "k", &v); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v != "second" {
		t.Errorf("value = %q, want second", v)
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, "k", 1); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var v int
	ok, err := s.Get(ctx, "k", &v)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("key still present after Delete")
	}

	// Deleting an absent key is not an error.
	if err := s.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete absent key: %v", err)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "onboard.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Put(ctx, "k", "durable"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	var v string
	ok, err := s.Get(ctx, "k", &v)
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if !ok || v != "durable" {
		t.Errorf("after reopen: got %q, %v; want durable, true", v, ok)
	}
}

func TestUserRecordRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// No record yet.
	u, err := LoadUser(ctx, s)
	if err != nil {
		t.Fatalf("LoadUser: %v", err)
	}
	if u != nil {
		t.Fatalf("LoadUser on empty store = %+v, want nil", u)
	}

	score := 85
	in := identity.New("Maya Okafor", "maya@moonbite.example", "MB-0117", progress.Progress{
		"module-1": {Status: progress.StatusCompleted, Score: &score, Attempts: 1},
		"module-2": {Status: progress.StatusReady},
	}, time.Now())

	if err := SaveUser(ctx, s, in); err != nil {
		t.Fatalf("SaveUser: %v", err)
	}

	out, err := LoadUser(ctx, s)
	if err != nil {
		t.Fatalf("LoadUser: %v", err)
	}
	if out == nil {
		t.Fatal("LoadUser = nil after SaveUser")
	}
	if out.Name != in.Name || out.Email != in.Email || out.EmployeeID != in.EmployeeID {
		t.Errorf("identity fields = %+v, want %+v", out, in)
	}
	if out.LastLogin != in.LastLogin {
		t.Errorf("LastLogin = %d, want %d", out.LastLogin, in.LastLogin)
	}
	entry := out.Progress["module-1"]
	if entry.Status != progress.StatusCompleted || entry.Score == nil || *entry.Score != 85 || entry.Attempts != 1 {
		t.Errorf("module-1 entry = %+v, want completed/85/1", entry)
	}
}

func TestThemeRecord(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	mode, err := LoadTheme(ctx, s, "dark")
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if mode != "dark" {
		t.Errorf("fallback theme = %q, want dark", mode)
	}

	if err := SaveTheme(ctx, s, "light"); err != nil {
		t.Fatalf("SaveTheme: %v", err)
	}
	mode, err = LoadTheme(ctx, s, "dark")
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if mode != "light" {
		t.Errorf("theme = %q, want light", mode)
	}
}
