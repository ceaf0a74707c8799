// Package dashboard shows the module cards, overall progress, and — once
// every module is completed — the way to the certificate. The item list is
// rebuilt from the shared state on every pass so progress mutations made
// by deeper screens show up as soon as control returns here.
package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/moonbite/onboard/internal/app"
	"github.com/moonbite/onboard/internal/identity"
	"github.com/moonbite/onboard/internal/progress"
	"github.com/moonbite/onboard/internal/router"
	"github.com/moonbite/onboard/internal/screen"
	"github.com/moonbite/onboard/internal/screens/certificate"
	"github.com/moonbite/onboard/internal/screens/moduleview"
	"github.com/moonbite/onboard/internal/ui/components"
	"github.com/moonbite/onboard/internal/ui/layout"
	"github.com/moonbite/onboard/internal/ui/theme"
)

// loginScreenFactory breaks the import cycle with the login package: the
// cmd layer injects the constructor once at startup. saved is the record
// offered for "continue as".
var loginScreenFactory func(state *app.State, saved *identity.User) screen.Screen

// SetLoginFactory registers the constructor used for logout navigation.
func SetLoginFactory(f func(state *app.State, saved *identity.User) screen.Screen) {
	loginScreenFactory = f
}

// Screen is the dashboard.
type Screen struct {
	state    *app.State
	selected int
}

var _ screen.Screen = (*Screen)(nil)

// New creates the dashboard screen.
func New(state *app.State) *Screen {
	return &Screen{state: state}
}

func (s *Screen) Title() string {
	return "Dashboard"
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

// items rebuilds the menu entries from current progress.
func (s *Screen) items() []components.MenuItem {
	user := s.state.User
	var items []components.MenuItem

	if progress.AllCompleted(user.Progress, s.state.Catalog) {
		items = append(items, components.MenuItem{
			Label:  "★ View Your Certificate",
			Detail: "all modules completed",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: certificate.New(s.state)}
				}
			},
		})
	}

	for _, m := range s.state.Catalog.Modules() {
		entry := user.Progress[m.ID]
		moduleID := m.ID

		item := components.MenuItem{Label: m.Title}
		switch entry.Status {
		case progress.StatusCompleted:
			detail := "Completed"
			if entry.Score != nil {
				detail = fmt.Sprintf("Completed | %d%%", *entry.Score)
			}
			item.Detail = detail
		case progress.StatusReady:
			item.Detail = "Ready"
		default:
			item.Detail = "Locked"
			item.Disabled = true
		}

		if !item.Disabled {
			item.Action = func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: moduleview.New(s.state, moduleID)}
				}
			}
		}
		items = append(items, item)
	}

	return items
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "t":
			mode := theme.Toggle()
			s.state.SaveTheme(mode)
			return s, nil
		case "l":
			return s, s.logout()
		}
	}

	menu := components.Menu{Items: s.items(), Selected: s.selected}
	menu, cmd := menu.Update(msg)
	s.selected = menu.Selected
	return s, cmd
}

// logout expires the session but keeps the record for "continue as".
func (s *Screen) logout() tea.Cmd {
	user := s.state.User
	user.Logout()
	s.state.SaveUser()
	s.state.User = nil

	if loginScreenFactory == nil {
		return tea.Quit
	}
	next := loginScreenFactory(s.state, user)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *Screen) View(width, height int) string {
	user := s.state.User
	if user == nil {
		return ""
	}

	var sections []string

	greeting := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("Welcome, %s!", user.FirstName()))
	sections = append(sections, greeting)
	sections = append(sections, theme.Hint.Render("Your training dashboard"))
	sections = append(sections, "")

	percent := progress.OverallPercent(user.Progress, s.state.Catalog)
	bar := components.NewProgressBar("Overall Progress", float64(percent)/100, true, min(width-8, 64))
	sections = append(sections, bar.View())
	sections = append(sections, "")

	if progress.AllCompleted(user.Progress, s.state.Catalog) {
		banner := theme.Correct.Render("Congratulations! You have completed all training modules.")
		sections = append(sections, banner)
		sections = append(sections, "")
	}

	menu := components.Menu{Items: s.items(), Selected: s.selected}
	sections = append(sections, menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// KeyHints provides the footer hints for the dashboard.
func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "T", Description: "Theme"},
		{Key: "L", Description: "Logout"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
