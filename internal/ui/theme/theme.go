// Package theme holds the active color palette and shared styles. The
// palette is switchable between dark and light; Apply rebuilds every
// package-level style, and components that construct styles inline pick up
// the new colors on their next render.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Mode is the persisted theme preference value.
type Mode string

const (
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// DefaultMode matches the product default: the midnight vibe.
const DefaultMode = ModeDark

// ParseMode maps a stored preference to a Mode, defaulting on junk input.
func ParseMode(s string) Mode {
	if s == string(ModeLight) {
		return ModeLight
	}
	return ModeDark
}

type palette struct {
	primary   color.Color
	secondary color.Color
	accent    color.Color
	success   color.Color
	error     color.Color
	text      color.Color
	textDim   color.Color
	bg        color.Color
	bgCard    color.Color
	border    color.Color
	locked    color.Color
}

var darkPalette = palette{
	primary:   lipgloss.Color("#60A5FA"), // Brand Blue
	secondary: lipgloss.Color("#A78BFA"), // Violet
	accent:    lipgloss.Color("#FBBF24"), // Amber
	success:   lipgloss.Color("#34D399"), // Green
	error:     lipgloss.Color("#FB7185"), // Rose
	text:      lipgloss.Color("#F8FAFC"), // White
	textDim:   lipgloss.Color("#94A3B8"), // Slate
	bg:        lipgloss.Color("#0F172A"), // Deep Navy
	bgCard:    lipgloss.Color("#1E293B"), // Dark Slate
	border:    lipgloss.Color("#334155"), // Slate
	locked:    lipgloss.Color("#475569"), // Muted Slate
}

var lightPalette = palette{
	primary:   lipgloss.Color("#1D4ED8"),
	secondary: lipgloss.Color("#7C3AED"),
	accent:    lipgloss.Color("#B45309"),
	success:   lipgloss.Color("#059669"),
	error:     lipgloss.Color("#E11D48"),
	text:      lipgloss.Color("#1E293B"),
	textDim:   lipgloss.Color("#64748B"),
	bg:        lipgloss.Color("#F8FAFC"),
	bgCard:    lipgloss.Color("#E2E8F0"),
	border:    lipgloss.Color("#CBD5E1"),
	locked:    lipgloss.Color("#94A3B8"),
}

// Color palette, set by Apply.
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
	Locked    color.Color
)

// Shared styles, rebuilt by Apply.
var (
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Body       lipgloss.Style
	Hint       lipgloss.Style
	Header     lipgloss.Style
	Footer     lipgloss.Style
	Card       lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style

	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
)

var activeMode Mode

func init() {
	Apply(DefaultMode)
}

// Active returns the mode currently applied.
func Active() Mode {
	return activeMode
}

// Toggle switches to the other mode and returns it.
func Toggle() Mode {
	if activeMode == ModeDark {
		Apply(ModeLight)
	} else {
		Apply(ModeDark)
	}
	return activeMode
}

// Apply installs the palette for mode and rebuilds the shared styles.
func Apply(mode Mode) {
	p := darkPalette
	if mode == ModeLight {
		p = lightPalette
	}
	activeMode = mode

	Primary = p.primary
	Secondary = p.secondary
	Accent = p.accent
	Success = p.success
	Error = p.error
	Text = p.text
	TextDim = p.textDim
	Bg = p.bg
	BgCard = p.bgCard
	Border = p.border
	Locked = p.locked

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	ButtonActive = lipgloss.NewStyle().
		Background(Primary).
		Foreground(Bg).
		Bold(true).
		Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
}
