package catalog

import (
	"strings"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("embedded catalog is empty")
	}

	for _, m := range c.Modules() {
		if m.Title == "" {
			t.Errorf("module %s has no title", m.ID)
		}
		if len(m.Content) == 0 {
			t.Errorf("module %s has no content", m.ID)
		}
		if len(m.Quiz.Questions) == 0 {
			t.Errorf("module %s has no questions", m.ID)
		}
	}
}

func TestDefaultIsCached(t *testing.T) {
	a, _ := Default()
	b, _ := Default()
	if a != b {
		t.Error("Default returned different catalog instances")
	}
}

const validModule = `{
	"id": "m1",
	"title": "T",
	"description": "d",
	"content": [{"type": "paragraph", "text": "p"}],
	"quiz": {
		"passingScore": 80,
		"maxAttempts": 3,
		"questions": [{"id": "q1", "question": "Q?", "answer": "True", "explanation": "e"}]
	}
}`

func TestLoadValid(t *testing.T) {
	c, err := Load([]byte("[" + validModule + "]"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
	m, ok := c.ByID("m1")
	if !ok {
		t.Fatal("ByID(m1) not found")
	}
	if m.Quiz.PassingScore != 80 {
		t.Errorf("passingScore = %d, want 80", m.Quiz.PassingScore)
	}
}

func TestLoadRejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty array", `[]`},
		{"not json", `{`},
		{"missing quiz", `[{"id": "m1", "title": "T", "description": "d", "content": []}]`},
		{
			"duplicate module id",
			"[" + validModule + "," + validModule + "]",
		},
		{
			"answer not an option",
			`[{"id": "m1", "title": "T", "description": "d", "content": [],
			   "quiz": {"passingScore": 80, "maxAttempts": 3,
			            "questions": [{"id": "q1", "question": "Q?", "options": ["A", "B"], "answer": "C", "explanation": "e"}]}}]`,
		},
		{
			"zero maxAttempts",
			`[{"id": "m1", "title": "T", "description": "d", "content": [],
			   "quiz": {"passingScore": 80, "maxAttempts": 0,
			            "questions": [{"id": "q1", "question": "Q?", "answer": "True", "explanation": "e"}]}}]`,
		},
		{
			"passingScore over 100",
			`[{"id": "m1", "title": "T", "description": "d", "content": [],
			   "quiz": {"passingScore": 101, "maxAttempts": 3,
			            "questions": [{"id": "q1", "question": "Q?", "answer": "True", "explanation": "e"}]}}]`,
		},
		{
			"duplicate question id",
			`[{"id": "m1", "title": "T", "description": "d", "content": [],
			   "quiz": {"passingScore": 80, "maxAttempts": 3,
			            "questions": [
			              {"id": "q1", "question": "Q?", "answer": "True", "explanation": "e"},
			              {"id": "q1", "question": "Q2?", "answer": "False", "explanation": "e"}]}}]`,
		},
		{
			"heading without text",
			`[{"id": "m1", "title": "T", "description": "d",
			   "content": [{"type": "heading"}],
			   "quiz": {"passingScore": 80, "maxAttempts": 3,
			            "questions": [{"id": "q1", "question": "Q?", "answer": "True", "explanation": "e"}]}}]`,
		},
	}

	for _, tt := range tests {
		if _, err := Load([]byte(tt.raw)); err == nil {
			t.Errorf("%s: Load accepted invalid catalog", tt.name)
		}
	}
}

func TestChoices(t *testing.T) {
	withOptions := Question{Options: []string{"A", "B", "C"}}
	if got := withOptions.Choices(); len(got) != 3 || got[0] != "A" {
		t.Errorf("Choices = %v, want [A B C]", got)
	}

	trueFalse := Question{}
	got := trueFalse.Choices()
	if len(got) != 2 || got[0] != "True" || got[1] != "False" {
		t.Errorf("implicit Choices = %v, want [True False]", got)
	}

	// Returned slices are copies.
	got[0] = "mutated"
	if again := trueFalse.Choices(); again[0] != "True" {
		t.Error("Choices returned a shared slice")
	}
}

func TestSuccessor(t *testing.T) {
	second := strings.Replace(validModule, `"id": "m1"`, `"id": "m2"`, 1)
	c, err := Load([]byte("[" + validModule + "," + second + "]"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	succ, ok := c.Successor("m1")
	if !ok || succ.ID != "m2" {
		t.Errorf("Successor(m1) = %v, %v; want m2, true", succ.ID, ok)
	}
	if _, ok := c.Successor("m2"); ok {
		t.Error("Successor(m2) = true for the last module")
	}
	if _, ok := c.Successor("nope"); ok {
		t.Error("Successor(nope) = true for an unknown id")
	}
}
