package identity

import (
	"testing"
	"time"

	"github.com/moonbite/onboard/internal/progress"
)

func testUser(lastLogin time.Time) *User {
	return New("Maya Okafor", "maya@moonbite.example", "MB-0117", progress.Progress{}, lastLogin)
}

func TestCanResumeWindow(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		since time.Duration
		want  bool
	}{
		{"just now", 0, true},
		{"one hour", time.Hour, true},
		{"just inside", ResumeWindow - time.Minute, true},
		{"exactly at window", ResumeWindow, false},
		{"two days", 48 * time.Hour, false},
	}

	for _, tt := range tests {
		u := testUser(now.Add(-tt.since))
		if got := u.CanResume(now); got != tt.want {
			t.Errorf("%s: CanResume = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestLogoutKeepsRecord(t *testing.T) {
	now := time.Now()
	u := testUser(now)
	u.Logout()

	if u.LastLogin != 0 {
		t.Errorf("LastLogin = %d after logout, want 0", u.LastLogin)
	}
	if u.CanResume(now) {
		t.Error("CanResume = true after logout")
	}
	if u.Name != "Maya Okafor" {
		t.Error("logout discarded the identity record")
	}
}

func TestTouchRestoresResume(t *testing.T) {
	now := time.Now()
	u := testUser(now.Add(-48 * time.Hour))

	if u.CanResume(now) {
		t.Fatal("stale session should not resume")
	}
	u.Touch(now)
	if !u.CanResume(now) {
		t.Error("CanResume = false after Touch")
	}
}

func TestFirstName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Maya Okafor", "Maya"},
		{"Maya", "Maya"},
		{"  Maya   Okafor  ", "Maya"},
		{"", ""},
	}

	for _, tt := range tests {
		u := testUser(time.Now())
		u.Name = tt.name
		if got := u.FirstName(); got != tt.want {
			t.Errorf("FirstName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Maya Okafor", "MO"},
		{"maya okafor", "MO"},
		{"Maya", "M"},
		{"", ""},
	}

	for _, tt := range tests {
		u := testUser(time.Now())
		u.Name = tt.name
		if got := u.Initials(); got != tt.want {
			t.Errorf("Initials(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
