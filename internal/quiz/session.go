// Package quiz drives a single pass through a quiz's question sequence,
// scores it, and reports one final outcome. A session is ephemeral: it is
// created when the quiz view opens and thrown away when it closes. A retry
// always constructs a brand-new session; nothing carries over.
package quiz

import (
	"errors"
	"math"
	"slices"

	"github.com/moonbite/onboard/internal/catalog"
)

// ErrAttemptsExhausted is returned when a session is requested with no
// retries remaining. The UI must not offer the retry affordance in this
// state; the engine refuses regardless.
var ErrAttemptsExhausted = errors.New("quiz: no attempts remaining")

// Phase is the session's position in its lifecycle.
type Phase int

const (
	// PhaseAsking is waiting for an answer to the current question.
	PhaseAsking Phase = iota
	// PhaseAnswered is showing feedback; the submitted choice is final.
	PhaseAnswered
	// PhaseResults is terminal: the score is computed and reported.
	PhaseResults
)

// Session is the in-progress state for one quiz pass.
type Session struct {
	quiz     catalog.Quiz
	index    int
	selected string
	answered bool
	correct  int
	phase    Phase
}

// NewSession starts a fresh pass over the quiz. attemptsRemaining is the
// number of retries the user still has; a non-positive value refuses the
// session.
func NewSession(q catalog.Quiz, attemptsRemaining int) (*Session, error) {
	if attemptsRemaining <= 0 {
		return nil, ErrAttemptsExhausted
	}
	return &Session{quiz: q}, nil
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Question returns the current question. Only meaningful before Results.
func (s *Session) Question() catalog.Question {
	return s.quiz.Questions[s.index]
}

// QuestionNumber returns the 1-based position of the current question.
func (s *Session) QuestionNumber() int {
	return s.index + 1
}

// QuestionCount returns the total number of questions.
func (s *Session) QuestionCount() int {
	return len(s.quiz.Questions)
}

// Selected returns the tentative (or, after Submit, final) choice.
// Empty string means no choice yet.
func (s *Session) Selected() string {
	return s.selected
}

// Select records a tentative choice for the current question. Re-selecting
// before submission overwrites the previous choice. Rejected outside
// Asking and for options the question does not offer.
func (s *Session) Select(option string) bool {
	if s.phase != PhaseAsking {
		return false
	}
	if !slices.Contains(s.Question().Choices(), option) {
		return false
	}
	s.selected = option
	return true
}

// Submit scores the tentative choice against the recorded answer using
// exact string equality. No-op without a choice. The transition is
// one-way: a submitted answer cannot be changed.
func (s *Session) Submit() bool {
	if s.phase != PhaseAsking || s.selected == "" {
		return false
	}
	if s.selected == s.Question().Answer {
		s.correct++
	}
	s.answered = true
	s.phase = PhaseAnswered
	return true
}

// Correct reports whether the submitted choice for the current question
// was right. Only meaningful in Answered.
func (s *Session) Correct() bool {
	return s.answered && s.selected == s.Question().Answer
}

// Advance moves past the feedback for the current question: to the next
// question with the choice cleared, or — after the last question — into
// Results. Returns true once the session has reached Results.
func (s *Session) Advance() bool {
	if s.phase != PhaseAnswered {
		return s.phase == PhaseResults
	}
	if s.index+1 < len(s.quiz.Questions) {
		s.index++
		s.selected = ""
		s.answered = false
		s.phase = PhaseAsking
		return false
	}
	s.phase = PhaseResults
	return true
}

// Score returns the integer percentage score, rounded half-up. It is
// deterministic for any question count.
func (s *Session) Score() int {
	return int(math.Round(100 * float64(s.correct) / float64(len(s.quiz.Questions))))
}

// Passed reports whether the score meets the quiz's passing threshold.
// Only meaningful in Results.
func (s *Session) Passed() bool {
	return s.Score() >= s.quiz.PassingScore
}
