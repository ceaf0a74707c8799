// Package progress owns the per-user, per-module completion ledger and the
// linear unlock policy. Every operation is a pure transformation over the
// Progress value passed in: nothing is retained between calls and the
// caller is responsible for persisting the result.
package progress

import (
	"fmt"
	"math"

	"github.com/moonbite/onboard/internal/catalog"
)

// Status is the lifecycle state of one module for one user.
type Status string

const (
	StatusLocked    Status = "locked"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
)

// Entry tracks a user's standing on a single module.
type Entry struct {
	Status Status `json:"status"`
	// Score is the last recorded quiz score, absent until a quiz finishes.
	Score *int `json:"score"`
	// Attempts counts retries consumed. The first try is free and never
	// counted here.
	Attempts int `json:"attempts"`
}

// Progress maps module id to its Entry, one per catalog module.
type Progress map[string]Entry

// ErrUnknownModule reports a module id absent from the progress mapping —
// an integration error, caught at the screen boundary.
type ErrUnknownModule struct {
	ModuleID string
}

func (e *ErrUnknownModule) Error() string {
	return fmt.Sprintf("unknown module %q in progress record", e.ModuleID)
}

// Initialize builds a fresh progress mapping for the catalog: the first
// module ready, the rest locked, no scores, no attempts. Called exactly
// once, when an identity is created.
func Initialize(c *catalog.Catalog) Progress {
	p := make(Progress, c.Len())
	for i, m := range c.Modules() {
		status := StatusLocked
		if i == 0 {
			status = StatusReady
		}
		p[m.ID] = Entry{Status: status}
	}
	return p
}

// RecordOutcome applies a just-computed quiz score to the mapping and
// returns a new mapping. A passing score completes the module and unlocks
// its immediate successor if that successor is currently locked; nothing
// cascades further. A failing score only overwrites the stored score.
// Completed is terminal: a second passing call leaves status untouched.
func RecordOutcome(p Progress, c *catalog.Catalog, moduleID string, score, passingScore int) (Progress, error) {
	entry, ok := p[moduleID]
	if !ok {
		return nil, &ErrUnknownModule{ModuleID: moduleID}
	}

	next := p.clone()
	entry.Score = &score
	if score >= passingScore {
		entry.Status = StatusCompleted
		if succ, ok := c.Successor(moduleID); ok {
			if se, ok := next[succ.ID]; ok && se.Status == StatusLocked {
				se.Status = StatusReady
				next[succ.ID] = se
			}
		}
	}
	next[moduleID] = entry
	return next, nil
}

// RecordAttempt consumes one retry for the module. It is called when the
// user elects to retry after a failure, before the retry's first question
// is shown, and independently of RecordOutcome.
func RecordAttempt(p Progress, moduleID string) (Progress, error) {
	entry, ok := p[moduleID]
	if !ok {
		return nil, &ErrUnknownModule{ModuleID: moduleID}
	}
	next := p.clone()
	entry.Attempts++
	next[moduleID] = entry
	return next, nil
}

// AttemptsRemaining returns maxAttempts minus the retries consumed. The
// result is deliberately unclamped so callers can tell "exactly exhausted"
// from "over"; a missing entry counts as zero retries consumed.
func AttemptsRemaining(p Progress, moduleID string, maxAttempts int) int {
	return maxAttempts - p[moduleID].Attempts
}

// CompletedCount returns how many modules are completed.
func CompletedCount(p Progress) int {
	n := 0
	for _, e := range p {
		if e.Status == StatusCompleted {
			n++
		}
	}
	return n
}

// AllCompleted reports whether every catalog module is completed.
func AllCompleted(p Progress, c *catalog.Catalog) bool {
	return c.Len() > 0 && CompletedCount(p) == c.Len()
}

// OverallPercent returns the completed share as an integer percentage.
func OverallPercent(p Progress, c *catalog.Catalog) int {
	if c.Len() == 0 {
		return 0
	}
	return int(math.Round(100 * float64(CompletedCount(p)) / float64(c.Len())))
}

func (p Progress) clone() Progress {
	next := make(Progress, len(p))
	for id, e := range p {
		next[id] = e
	}
	return next
}
