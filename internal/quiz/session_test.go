package quiz

import (
	"errors"
	"fmt"
	"testing"

	"github.com/moonbite/onboard/internal/catalog"
)

// testQuiz builds an n-question quiz where every answer is "Right".
func testQuiz(n, passingScore int) catalog.Quiz {
	q := catalog.Quiz{PassingScore: passingScore, MaxAttempts: 3}
	for i := 1; i <= n; i++ {
		q.Questions = append(q.Questions, catalog.Question{
			ID:      fmt.Sprintf("q%d", i),
			Text:    fmt.Sprintf("Question %d", i),
			Options: []string{"Right", "Wrong", "Other"},
			Answer:  "Right",
		})
	}
	return q
}

func mustSession(t *testing.T, q catalog.Quiz) *Session {
	t.Helper()
	s, err := NewSession(q, 1)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

// answer submits the given option for the current question and advances.
func answer(t *testing.T, s *Session, option string) {
	t.Helper()
	if !s.Select(option) {
		t.Fatalf("Select(%q) rejected", option)
	}
	if !s.Submit() {
		t.Fatal("Submit rejected")
	}
	s.Advance()
}

func TestNewSessionRefusesExhausted(t *testing.T) {
	for _, remaining := range []int{0, -1} {
		_, err := NewSession(testQuiz(2, 80), remaining)
		if !errors.Is(err, ErrAttemptsExhausted) {
			t.Errorf("NewSession(remaining=%d) err = %v, want ErrAttemptsExhausted", remaining, err)
		}
	}
}

func TestScoreRounding(t *testing.T) {
	tests := []struct {
		questions int
		correct   int
		want      int
	}{
		{5, 4, 80},  // 4/5
		{5, 5, 100},
		{5, 0, 0},
		{3, 1, 33},  // 33.33 rounds down
		{3, 2, 67},  // 66.67 rounds up
		{6, 3, 50},
		{8, 7, 88},  // 87.5 rounds half-up
	}

	for _, tt := range tests {
		s := mustSession(t, testQuiz(tt.questions, 80))
		for i := 0; i < tt.questions; i++ {
			option := "Wrong"
			if i < tt.correct {
				option = "Right"
			}
			answer(t, s, option)
		}
		if s.Phase() != PhaseResults {
			t.Fatalf("%d/%d: not in Results after last question", tt.correct, tt.questions)
		}
		if got := s.Score(); got != tt.want {
			t.Errorf("%d/%d correct: Score = %d, want %d", tt.correct, tt.questions, got, tt.want)
		}
	}
}

func TestPassedThreshold(t *testing.T) {
	// 4/5 = 80 meets a passing score of exactly 80.
	s := mustSession(t, testQuiz(5, 80))
	for i := 0; i < 5; i++ {
		option := "Right"
		if i == 0 {
			option = "Wrong"
		}
		answer(t, s, option)
	}
	if !s.Passed() {
		t.Errorf("Passed = false at score %d with threshold 80", s.Score())
	}

	// 3/5 = 60 does not.
	s = mustSession(t, testQuiz(5, 80))
	for i := 0; i < 5; i++ {
		option := "Right"
		if i < 2 {
			option = "Wrong"
		}
		answer(t, s, option)
	}
	if s.Passed() {
		t.Errorf("Passed = true at score %d with threshold 80", s.Score())
	}
}

func TestSelectRules(t *testing.T) {
	s := mustSession(t, testQuiz(1, 80))

	if s.Select("NotAnOption") {
		t.Error("Select accepted an option the question does not offer")
	}
	if !s.Select("Wrong") {
		t.Error("Select rejected a valid option")
	}
	// Re-selecting before submission overwrites.
	if !s.Select("Right") {
		t.Error("re-Select rejected")
	}
	if got := s.Selected(); got != "Right" {
		t.Errorf("Selected = %q, want Right", got)
	}
}

func TestSubmitIsOneWay(t *testing.T) {
	s := mustSession(t, testQuiz(2, 80))

	if s.Submit() {
		t.Error("Submit accepted with no selection")
	}

	s.Select("Right")
	if !s.Submit() {
		t.Fatal("Submit rejected a valid selection")
	}
	if s.Phase() != PhaseAnswered {
		t.Fatalf("phase = %v, want Answered", s.Phase())
	}
	if !s.Correct() {
		t.Error("Correct = false for the right answer")
	}

	// The submitted choice is final.
	if s.Select("Wrong") {
		t.Error("Select accepted after submission")
	}
	if s.Submit() {
		t.Error("second Submit accepted")
	}
	if got := s.Selected(); got != "Right" {
		t.Errorf("Selected = %q after rejected re-select, want Right", got)
	}
}

func TestAdvanceLifecycle(t *testing.T) {
	s := mustSession(t, testQuiz(2, 80))

	// Advance is a no-op while asking.
	if s.Advance() {
		t.Error("Advance reported done while asking")
	}
	if s.QuestionNumber() != 1 {
		t.Errorf("QuestionNumber = %d, want 1", s.QuestionNumber())
	}

	s.Select("Right")
	s.Submit()
	if done := s.Advance(); done {
		t.Error("Advance reported done with a question left")
	}
	if s.QuestionNumber() != 2 {
		t.Errorf("QuestionNumber = %d, want 2", s.QuestionNumber())
	}
	if s.Selected() != "" {
		t.Errorf("Selected = %q on a fresh question, want empty", s.Selected())
	}
	if s.Phase() != PhaseAsking {
		t.Errorf("phase = %v, want Asking", s.Phase())
	}

	s.Select("Wrong")
	s.Submit()
	if done := s.Advance(); !done {
		t.Error("Advance did not report done after the last question")
	}
	if s.Phase() != PhaseResults {
		t.Errorf("phase = %v, want Results", s.Phase())
	}
	if got := s.Score(); got != 50 {
		t.Errorf("Score = %d, want 50", got)
	}
}

func TestExactStringMatching(t *testing.T) {
	q := catalog.Quiz{
		PassingScore: 100,
		MaxAttempts:  1,
		Questions: []catalog.Question{{
			ID:      "q1",
			Text:    "Pick one",
			Options: []string{"Answer", "answer"},
			Answer:  "Answer",
		}},
	}

	s := mustSession(t, q)
	s.Select("answer")
	s.Submit()
	if s.Correct() {
		t.Error("case-insensitive match accepted; matching must be exact")
	}
}

func TestTrueFalseImplicitOptions(t *testing.T) {
	q := catalog.Quiz{
		PassingScore: 100,
		MaxAttempts:  1,
		Questions: []catalog.Question{{
			ID:     "q1",
			Text:   "The oven is hot.",
			Answer: "True",
		}},
	}

	s := mustSession(t, q)
	if s.Select("Yes") {
		t.Error("Select accepted an option outside the implicit True/False set")
	}
	if !s.Select("True") {
		t.Error("Select rejected the implicit True option")
	}
	s.Submit()
	if !s.Correct() {
		t.Error("Correct = false for the right True/False answer")
	}
}
