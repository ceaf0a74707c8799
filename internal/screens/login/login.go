// Package login implements the identity form: a self-declared profile, not
// a credential check. A stored identity adds a one-click "continue as"
// shortcut.
package login

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/moonbite/onboard/internal/app"
	"github.com/moonbite/onboard/internal/identity"
	"github.com/moonbite/onboard/internal/progress"
	"github.com/moonbite/onboard/internal/router"
	"github.com/moonbite/onboard/internal/screen"
	"github.com/moonbite/onboard/internal/screens/dashboard"
	"github.com/moonbite/onboard/internal/ui/components"
	"github.com/moonbite/onboard/internal/ui/layout"
	"github.com/moonbite/onboard/internal/ui/theme"
)

const (
	fieldName = iota
	fieldEmail
	fieldEmployeeID
	fieldSubmit
	fieldContinue
)

// Screen is the login screen.
type Screen struct {
	state  *app.State
	saved  *identity.User
	inputs [3]components.TextInput
	focus  int
	errMsg string
}

var _ screen.Screen = (*Screen)(nil)

// New creates the login screen. saved is the stored identity offered for
// "continue as", nil when none exists.
func New(state *app.State, saved *identity.User) *Screen {
	s := &Screen{state: state, saved: saved}
	s.inputs[fieldName] = components.NewTextInput("Full name", 60)
	s.inputs[fieldEmail] = components.NewTextInput("Email", 80)
	s.inputs[fieldEmployeeID] = components.NewTextInput("Employee ID", 20)
	return s
}

func (s *Screen) Title() string {
	return "New Hire Onboarding"
}

func (s *Screen) Init() tea.Cmd {
	return s.inputs[fieldName].Init()
}

// fieldCount is how many focusable rows the form has.
func (s *Screen) fieldCount() int {
	if s.saved != nil {
		return fieldContinue + 1
	}
	return fieldSubmit + 1
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch kmsg.String() {
		case "tab", "down":
			return s, s.setFocus((s.focus + 1) % s.fieldCount())
		case "shift+tab", "up":
			return s, s.setFocus((s.focus - 1 + s.fieldCount()) % s.fieldCount())
		case "enter":
			switch s.focus {
			case fieldSubmit:
				return s, s.submit()
			case fieldContinue:
				return s, s.continueAs()
			default:
				return s, s.setFocus(s.focus + 1)
			}
		}
	}

	if s.focus < len(s.inputs) {
		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		return s, cmd
	}
	return s, nil
}

// setFocus moves keyboard focus between the form rows.
func (s *Screen) setFocus(focus int) tea.Cmd {
	s.focus = focus
	var cmd tea.Cmd
	for i := range s.inputs {
		if i == focus {
			cmd = s.inputs[i].Model.Focus()
		} else {
			s.inputs[i].Model.Blur()
		}
	}
	return cmd
}

// submit validates the form and creates a fresh identity with a fresh
// progress mapping.
func (s *Screen) submit() tea.Cmd {
	name := strings.TrimSpace(s.inputs[fieldName].Value())
	email := strings.TrimSpace(s.inputs[fieldEmail].Value())
	employeeID := strings.TrimSpace(s.inputs[fieldEmployeeID].Value())

	emailOK := email != "" && strings.Contains(email, "@")
	s.inputs[fieldName].Submit(name != "")
	s.inputs[fieldEmail].Submit(emailOK)
	s.inputs[fieldEmployeeID].Submit(employeeID != "")

	if name == "" || email == "" || employeeID == "" {
		s.errMsg = "All fields are required."
		return nil
	}
	if !emailOK {
		s.errMsg = "That email doesn't look right."
		return nil
	}

	user := identity.New(name, email, employeeID, progress.Initialize(s.state.Catalog), time.Now())
	s.state.SetUser(user)

	next := dashboard.New(s.state)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// continueAs resumes the stored identity, refreshing its login time.
func (s *Screen) continueAs() tea.Cmd {
	if s.saved == nil {
		return nil
	}
	s.saved.Touch(time.Now())
	s.state.SetUser(s.saved)

	next := dashboard.New(s.state)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *Screen) View(width, height int) string {
	labels := [3]string{"Full Name", "Email", "Employee ID"}

	var rows []string
	rows = append(rows, theme.Title.Render("MOONBITE BAKEHOUSE"))
	rows = append(rows, theme.Subtitle.Render("New Hire Onboarding"))
	rows = append(rows, "")

	for i := range s.inputs {
		rows = append(rows, lipgloss.NewStyle().Foreground(theme.TextDim).Render(labels[i]))
		rows = append(rows, s.inputs[i].View())
		rows = append(rows, "")
	}

	submit := components.NewButton("Start Training", s.focus == fieldSubmit, nil)
	rows = append(rows, submit.View())

	if s.saved != nil {
		rows = append(rows, "")
		rows = append(rows, theme.Hint.Render("— or —"))
		cont := components.NewButton("Continue as "+s.saved.Name, s.focus == fieldContinue, nil)
		rows = append(rows, cont.View())
	}

	if s.errMsg != "" {
		rows = append(rows, "")
		rows = append(rows, theme.Incorrect.Render(s.errMsg))
	}

	form := theme.Card.Render(strings.Join(rows, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, form)
}

// KeyHints provides the footer hints for the login form.
func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
