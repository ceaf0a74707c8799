// Package identity models the self-declared user record. There is no
// credential system: the login form is an identity form, and "continue as"
// reuses the stored record indefinitely by design.
package identity

import (
	"strings"
	"time"

	"github.com/moonbite/onboard/internal/progress"
)

// ResumeWindow is how recently the user must have logged in for the app to
// skip the login screen and resume straight to the dashboard.
const ResumeWindow = 24 * time.Hour

// User is the single persisted identity record.
type User struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	EmployeeID string `json:"employeeId"`
	// LastLogin is epoch milliseconds. Zero means the session was
	// explicitly logged out.
	LastLogin int64             `json:"lastLogin"`
	Progress  progress.Progress `json:"progress"`
}

// New creates a user with a fresh progress mapping and lastLogin set to now.
func New(name, email, employeeID string, prog progress.Progress, now time.Time) *User {
	return &User{
		Name:       name,
		Email:      email,
		EmployeeID: employeeID,
		LastLogin:  now.UnixMilli(),
		Progress:   prog,
	}
}

// Touch refreshes the login timestamp.
func (u *User) Touch(now time.Time) {
	u.LastLogin = now.UnixMilli()
}

// Logout expires the session while keeping the record for "continue as".
func (u *User) Logout() {
	u.LastLogin = 0
}

// CanResume reports whether the stored session is fresh enough to skip the
// login screen entirely.
func (u *User) CanResume(now time.Time) bool {
	if u.LastLogin == 0 {
		return false
	}
	return now.Sub(time.UnixMilli(u.LastLogin)) < ResumeWindow
}

// FirstName returns the leading name component for greetings.
func (u *User) FirstName() string {
	fields := strings.Fields(u.Name)
	if len(fields) == 0 {
		return u.Name
	}
	return fields[0]
}

// Initials returns up to the first letter of each name component.
func (u *User) Initials() string {
	var b strings.Builder
	for _, f := range strings.Fields(u.Name) {
		r := []rune(f)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}
