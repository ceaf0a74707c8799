// Package moduleview renders one training module: the content blocks for
// reading, and — when the user starts the assessment — the quiz flow for
// the same module. The quiz lives here rather than on its own screen so
// "review material" after a failed attempt is a mode switch, not a
// navigation dance.
package moduleview

import (
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/moonbite/onboard/internal/app"
	"github.com/moonbite/onboard/internal/catalog"
	"github.com/moonbite/onboard/internal/progress"
	"github.com/moonbite/onboard/internal/quiz"
	"github.com/moonbite/onboard/internal/router"
	"github.com/moonbite/onboard/internal/screen"
	"github.com/moonbite/onboard/internal/ui/components"
	"github.com/moonbite/onboard/internal/ui/layout"
	"github.com/moonbite/onboard/internal/ui/theme"
)

type mode int

const (
	modeContent mode = iota
	modeQuiz
)

// Screen shows a module's content and runs its quiz.
type Screen struct {
	state  *app.State
	module catalog.Module

	mode   mode
	scroll int

	session  *quiz.Session
	choices  components.ChoiceList
	recorded bool

	resultCursor int
}

var _ screen.Screen = (*Screen)(nil)

// New opens the module with the given id. An id missing from the catalog
// is an integration bug; the screen renders an error and nothing else.
func New(state *app.State, moduleID string) *Screen {
	m, _ := state.Catalog.ByID(moduleID)
	return &Screen{state: state, module: m}
}

func (s *Screen) Title() string {
	return s.module.Title
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

// entry returns the user's progress entry for this module.
func (s *Screen) entry() progress.Entry {
	return s.state.User.Progress[s.module.ID]
}

// attemptsRemaining is retries left before the quiz locks out.
func (s *Screen) attemptsRemaining() int {
	return progress.AttemptsRemaining(s.state.User.Progress, s.module.ID, s.module.Quiz.MaxAttempts)
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.mode == modeContent {
		return s.updateContent(kmsg)
	}
	return s.updateQuiz(kmsg)
}

func (s *Screen) updateContent(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "up", "k":
		if s.scroll > 0 {
			s.scroll--
		}
	case "down", "j":
		s.scroll++
	case "s", "enter":
		return s, s.startQuiz()
	}
	return s, nil
}

// startQuiz opens a fresh session. Completed modules stay readable but
// their quiz is closed; an exhausted module refuses too.
func (s *Screen) startQuiz() tea.Cmd {
	if s.entry().Status == progress.StatusCompleted {
		return nil
	}

	session, err := quiz.NewSession(s.module.Quiz, s.attemptsRemaining())
	if err != nil {
		return nil
	}

	s.session = session
	s.recorded = false
	s.resultCursor = 0
	s.choices = components.NewChoiceList(session.Question().Choices())
	s.session.Select(s.choices.Current())
	s.mode = modeQuiz
	return nil
}

func (s *Screen) updateQuiz(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.session.Phase() {
	case quiz.PhaseAsking:
		if kmsg.String() == "enter" {
			if s.session.Submit() {
				s.choices.Submitted = true
				s.choices.Chosen = s.session.Selected()
				s.choices.Answer = s.session.Question().Answer
			}
			return s, nil
		}
		s.choices, _ = s.choices.Update(kmsg)
		s.session.Select(s.choices.Current())
		return s, nil

	case quiz.PhaseAnswered:
		if kmsg.String() == "enter" {
			if s.session.Advance() {
				return s, s.recordOutcome()
			}
			s.choices = components.NewChoiceList(s.session.Question().Choices())
			s.session.Select(s.choices.Current())
		}
		return s, nil

	default: // quiz.PhaseResults
		return s.updateResults(kmsg)
	}
}

// recordOutcome applies the finished session's score exactly once.
func (s *Screen) recordOutcome() tea.Cmd {
	if s.recorded {
		return nil
	}
	s.recorded = true

	next, err := progress.RecordOutcome(
		s.state.User.Progress, s.state.Catalog,
		s.module.ID, s.session.Score(), s.module.Quiz.PassingScore,
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "record outcome:", err)
		return func() tea.Msg { return router.PopScreenMsg{} }
	}

	s.state.User.Progress = next
	s.state.SaveUser()
	return nil
}

// resultOptions are the affordances offered on the results card, in order.
func (s *Screen) resultOptions() []string {
	if s.session.Passed() {
		return []string{"Return to Dashboard"}
	}
	if s.attemptsRemaining() > 0 {
		return []string{"Retry Quiz", "Return to Dashboard"}
	}
	return []string{"Review Material", "Return to Dashboard"}
}

func (s *Screen) updateResults(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	options := s.resultOptions()

	switch kmsg.String() {
	case "up", "k":
		if s.resultCursor > 0 {
			s.resultCursor--
		}
	case "down", "j":
		if s.resultCursor < len(options)-1 {
			s.resultCursor++
		}
	case "enter":
		switch options[s.resultCursor] {
		case "Retry Quiz":
			return s, s.retry()
		case "Review Material":
			s.mode = modeContent
			s.session = nil
			s.scroll = 0
			return s, nil
		default:
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// retry consumes one attempt and restarts the quiz. The eligibility check
// uses the pre-consumption count: a retry granted here always starts.
func (s *Screen) retry() tea.Cmd {
	remaining := s.attemptsRemaining()
	if remaining <= 0 {
		return nil
	}

	next, err := progress.RecordAttempt(s.state.User.Progress, s.module.ID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "record attempt:", err)
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	s.state.User.Progress = next
	s.state.SaveUser()

	session, err := quiz.NewSession(s.module.Quiz, remaining)
	if err != nil {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	s.session = session
	s.recorded = false
	s.resultCursor = 0
	s.choices = components.NewChoiceList(session.Question().Choices())
	s.session.Select(s.choices.Current())
	return nil
}

func (s *Screen) View(width, height int) string {
	if s.module.ID == "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render("Module not found."))
	}
	if s.mode == modeQuiz {
		return s.viewQuiz(width, height)
	}
	return s.viewContent(width, height)
}

// viewContent renders the reading material with a scrollable window.
func (s *Screen) viewContent(width, height int) string {
	textWidth := min(width-8, 76)

	var blocks []string
	blocks = append(blocks, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(s.module.Title))
	blocks = append(blocks, theme.Hint.Width(textWidth).Render(s.module.Description))
	blocks = append(blocks, "")

	for _, b := range s.module.Content {
		blocks = append(blocks, renderBlock(b, textWidth))
		blocks = append(blocks, "")
	}
	blocks = append(blocks, s.quizPrompt(textWidth))

	lines := strings.Split(strings.Join(blocks, "\n"), "\n")
	maxScroll := len(lines) - (height - 2)
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}
	visible := lines[s.scroll:]
	if len(visible) > height-2 {
		visible = visible[:height-2]
	}

	content := strings.Join(visible, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		lipgloss.NewStyle().Padding(1, 0).Render(content))
}

// quizPrompt is the call-to-action (or its replacement) below the content.
func (s *Screen) quizPrompt(textWidth int) string {
	entry := s.entry()

	if entry.Status == progress.StatusCompleted {
		msg := "Module completed."
		if entry.Score != nil {
			msg = fmt.Sprintf("Module completed with a score of %d%%.", *entry.Score)
		}
		return theme.Correct.Render("✓ " + msg)
	}

	if s.attemptsRemaining() <= 0 {
		return theme.Incorrect.Width(textWidth).Render(
			"No quiz attempts remaining. Please contact your training coordinator.")
	}

	button := components.NewButton("Start Quiz", true, nil)
	note := theme.Hint.Render(fmt.Sprintf(
		"Press S to start · pass mark %d%%", s.module.Quiz.PassingScore))
	return button.View() + "\n" + note
}

// renderBlock maps one content block to its terminal form.
func renderBlock(b catalog.ContentBlock, width int) string {
	switch b.Type {
	case catalog.BlockHeading:
		return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(b.Text)

	case catalog.BlockParagraph:
		return theme.Body.Width(width).Render(b.Text)

	case catalog.BlockList:
		var items []string
		for _, it := range b.Items {
			items = append(items, theme.Body.Width(width-4).Render("• "+it))
		}
		return strings.Join(items, "\n")

	case catalog.BlockScenario:
		title := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(b.Title)
		body := theme.Body.Width(width - 6).Render(b.Body)
		return theme.Card.Width(width).Render(title + "\n" + body)

	case catalog.BlockReveal:
		title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("💡 " + b.Title)
		body := theme.Hint.Width(width - 6).Render(b.Body)
		return theme.Card.Width(width).Render(title + "\n" + body)

	default:
		return theme.Body.Width(width).Render(b.Text)
	}
}

func (s *Screen) viewQuiz(width, height int) string {
	if s.session.Phase() == quiz.PhaseResults {
		return s.viewResults(width, height)
	}

	textWidth := min(width-8, 72)
	q := s.session.Question()

	var rows []string
	rows = append(rows, theme.Hint.Render(fmt.Sprintf(
		"Question %d of %d", s.session.QuestionNumber(), s.session.QuestionCount())))
	rows = append(rows, "")
	rows = append(rows, theme.Body.Width(textWidth).Bold(true).Render(q.Text))
	rows = append(rows, "")
	rows = append(rows, s.choices.View())

	if s.session.Phase() == quiz.PhaseAnswered {
		if s.session.Correct() {
			rows = append(rows, theme.Correct.Render("✓ Correct!"))
		} else {
			rows = append(rows, theme.Incorrect.Render("✗ Incorrect."))
		}
		rows = append(rows, theme.Hint.Width(textWidth).Render(q.Explanation))
		rows = append(rows, "")
		rows = append(rows, theme.Hint.Render("Press Enter to continue"))
	}

	card := theme.Card.Width(min(width-4, 80)).Render(strings.Join(rows, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *Screen) viewResults(width, height int) string {
	score := s.session.Score()

	var rows []string
	if s.session.Passed() {
		rows = append(rows, theme.Correct.Render("Quiz Passed!"))
	} else {
		rows = append(rows, theme.Incorrect.Render("Quiz Failed"))
	}
	rows = append(rows, "")
	rows = append(rows, lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("Your score: %d%%", score)))
	rows = append(rows, theme.Hint.Render(fmt.Sprintf("Passing score: %d%%", s.module.Quiz.PassingScore)))

	if !s.session.Passed() {
		remaining := s.attemptsRemaining()
		if remaining > 0 {
			plural := "attempts"
			if remaining == 1 {
				plural = "attempt"
			}
			rows = append(rows, theme.Hint.Render(fmt.Sprintf("%d retry %s remaining", remaining, plural)))
		} else {
			rows = append(rows, theme.Incorrect.Render("No attempts remaining"))
		}
	}
	rows = append(rows, "")

	for i, opt := range s.resultOptions() {
		b := components.NewButton(opt, i == s.resultCursor, nil)
		rows = append(rows, b.View())
	}

	card := theme.Card.Width(min(width-4, 60)).Render(strings.Join(rows, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// KeyHints provides the footer hints, varying with the screen mode.
func (s *Screen) KeyHints() []layout.KeyHint {
	if s.mode == modeContent {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "S", Description: "Start quiz"},
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Confirm"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
