// Package checkbox implements the progressive checkbox: once checked, further
// uncheck attempts are absorbed and raise the style tier until the top tier is
// reached, and only then does the box actually uncheck.
package checkbox

import "pagepick/internal/clickcount"

// DefaultMaxTier is the number of style tiers a checked box walks through
const DefaultMaxTier = 4

// Action is what the user asked the checkbox to do
type Action int

const (
	Check Action = iota
	Uncheck
)

func (a Action) String() string {
	if a == Check {
		return "check"
	}
	return "uncheck"
}

// Outcome classifies how a press was resolved
type Outcome int

const (
	// Applied means the box took the requested checked value
	Applied Outcome = iota
	// Absorbed means an uncheck was turned into a tier increment; the box stays checked
	Absorbed
	// Ignored means the press had no effect
	Ignored
)

// State is a checkbox's checked flag plus its click count
type State struct {
	Checked bool
	Count   int
}

// Step is the transition table:
//
//	(false, Check)            -> (true, 1)
//	(true, Uncheck, count<max) -> (true, count+1), absorbed
//	(true, Uncheck, count>=max) -> (false, 0)
//	(false, Uncheck)          -> (false, 0)
//	(true, Check)             -> unchanged
func Step(s State, a Action, maxTier int) (State, Outcome) {
	switch {
	case a == Check && !s.Checked:
		return State{Checked: true, Count: 1}, Applied
	case a == Check:
		return s, Ignored
	case s.Checked && s.Count < maxTier:
		return State{Checked: true, Count: s.Count + 1}, Absorbed
	default:
		return State{}, Applied
	}
}

// CountWriter is the only way Press mutates a count. Item rows bind it to
// the synchronizer's item writes, the aggregate row to its aggregate writes.
type CountWriter interface {
	SetCount(n int)
	UpdateCount(fn clickcount.Updater)
}

// Result is what the caller should do with the row's checked state
type Result struct {
	Checked bool
	Outcome Outcome
}

// Absorbed reports whether the caller must keep rendering the box as checked
func (r Result) Absorbed() bool {
	return r.Outcome == Absorbed
}

// Press resolves a user action against the row's current state and writes the
// resulting count through w. Absorbed clicks use an increment updater so the
// aggregate row increments from its displayed count.
func Press(checked bool, count int, a Action, maxTier int, w CountWriter) Result {
	next, outcome := Step(State{Checked: checked, Count: count}, a, maxTier)

	switch outcome {
	case Absorbed:
		w.UpdateCount(clickcount.Increment)
	case Applied:
		w.SetCount(next.Count)
	}

	return Result{Checked: next.Checked, Outcome: outcome}
}

// ActionFor picks the action a plain toggle press means for a box
func ActionFor(checked bool) Action {
	if checked {
		return Uncheck
	}
	return Check
}

// Tier returns the style tier for a box: 0 when unchecked, otherwise the
// highest tier not above count, at least 1 and at most maxTier.
func Tier(checked bool, count, maxTier int) int {
	if !checked || maxTier < 1 {
		return 0
	}
	if count < 1 {
		return 1
	}
	if count > maxTier {
		return maxTier
	}
	return count
}
