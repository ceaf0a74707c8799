// Package certificate shows the completion certificate and offers export:
// save the PNG next to the current directory, or send it to the training
// records inbox. Both run as commands so the UI stays responsive.
package certificate

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/moonbite/onboard/internal/app"
	"github.com/moonbite/onboard/internal/cert"
	"github.com/moonbite/onboard/internal/mailer"
	"github.com/moonbite/onboard/internal/router"
	"github.com/moonbite/onboard/internal/screen"
	"github.com/moonbite/onboard/internal/ui/components"
	"github.com/moonbite/onboard/internal/ui/layout"
	"github.com/moonbite/onboard/internal/ui/theme"
)

// resultMsg reports the outcome of an export or send command.
type resultMsg struct {
	text string
	err  error
}

// Screen is the certificate view.
type Screen struct {
	state       *app.State
	serial      string
	completedAt time.Time
	selected    int
	busy        bool
	status      string
	statusErr   bool
}

var _ screen.Screen = (*Screen)(nil)

// New creates the certificate screen. The dashboard only routes here once
// every module is completed.
func New(state *app.State) *Screen {
	return &Screen{
		state:       state,
		serial:      cert.NewSerial(),
		completedAt: time.Now(),
	}
}

func (s *Screen) Title() string {
	return "Certificate"
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) items() []components.MenuItem {
	return []components.MenuItem{
		{
			Label:  "Save Certificate (PNG)",
			Detail: cert.DefaultFilename(s.state.User.Name),
			Action: s.save,
		},
		{
			Label:  "Email to Training Records",
			Detail: mailer.RecordsRecipient,
			Action: s.send,
		},
		{
			Label: "Back to Dashboard",
			Action: func() tea.Cmd {
				return func() tea.Msg { return router.PopScreenMsg{} }
			},
		},
	}
}

func (s *Screen) save() tea.Cmd {
	if s.busy {
		return nil
	}
	s.busy = true
	s.status = "Saving..."
	s.statusErr = false

	name := s.state.User.Name
	path := cert.DefaultFilename(name)
	completedAt := s.completedAt
	serial := s.serial

	return func() tea.Msg {
		if err := cert.Export(path, name, completedAt, serial); err != nil {
			return resultMsg{err: err}
		}
		return resultMsg{text: "Saved to " + path}
	}
}

func (s *Screen) send() tea.Cmd {
	if s.busy {
		return nil
	}
	s.busy = true
	s.status = "Sending..."
	s.statusErr = false

	name := s.state.User.Name
	completedAt := s.completedAt
	serial := s.serial

	return func() tea.Msg {
		png, err := cert.Render(name, completedAt, serial)
		if err != nil {
			return resultMsg{err: err}
		}
		if err := mailer.Send(context.Background(), name, png); err != nil {
			return resultMsg{err: err}
		}
		return resultMsg{text: "Sent to " + mailer.RecordsRecipient}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if res, ok := msg.(resultMsg); ok {
		s.busy = false
		if res.err != nil {
			s.status = res.err.Error()
			s.statusErr = true
		} else {
			s.status = res.text
			s.statusErr = false
		}
		return s, nil
	}

	menu := components.Menu{Items: s.items(), Selected: s.selected}
	menu, cmd := menu.Update(msg)
	s.selected = menu.Selected
	return s, cmd
}

// preview is the in-terminal rendition of the printed certificate.
func (s *Screen) preview(width int) string {
	inner := min(width-8, 64)

	line := func(style lipgloss.Style, text string) string {
		return style.Align(lipgloss.Center).Width(inner).Render(text)
	}

	rows := []string{
		line(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), "MOONBITE BAKEHOUSE"),
		line(theme.Subtitle, "C E R T I F I C A T E  O F  C O M P L E T I O N"),
		"",
		line(theme.Body, "This certifies that"),
		"",
		line(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true), s.state.User.Name),
		"",
		line(theme.Body, "has successfully completed the"),
		line(lipgloss.NewStyle().Foreground(theme.Text).Bold(true), "New Hire Onboarding Program"),
		"",
		line(theme.Hint, "Completed on "+s.completedAt.Format("January 2, 2006")),
		line(theme.Hint, "Certificate "+s.serial),
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Padding(1, 2).
		Render(strings.Join(rows, "\n"))
}

func (s *Screen) View(width, height int) string {
	var sections []string
	sections = append(sections, s.preview(width))
	sections = append(sections, "")

	menu := components.Menu{Items: s.items(), Selected: s.selected}
	sections = append(sections, menu.View())

	if s.status != "" {
		style := theme.Correct
		if s.statusErr {
			style = theme.Incorrect
		}
		sections = append(sections, style.Render(s.status))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// KeyHints provides the footer hints for the certificate screen.
func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
