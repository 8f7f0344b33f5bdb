package state

import "pagepick/internal/domain"

// AppState contains the UI-only state; selection and click counts live in the widget
type AppState struct {
	// Focus
	FocusIndex int // 0 = aggregate row, 1..n = pages, n+1 = Done button

	// Rows whose uncheck was absorbed and are waiting for the checked
	// rendering to be re-asserted, keyed by focus index
	Absorbed map[int]bool

	// UI state
	ShowHelp      bool
	StatusMessage string

	// Set once the selection was handed off through Done
	Committed []domain.ItemID
	Done      bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Absorbed: make(map[int]bool),
	}
}

// MoveFocus moves focus by delta, clamped to [0, total-1]
func (s *AppState) MoveFocus(delta, total int) {
	s.SetFocus(s.FocusIndex+delta, total)
}

// SetFocus sets focus, clamped to [0, total-1]
func (s *AppState) SetFocus(index, total int) {
	if total <= 0 {
		s.FocusIndex = 0
		return
	}
	if index < 0 {
		index = 0
	}
	if index > total-1 {
		index = total - 1
	}
	s.FocusIndex = index
}

// MarkAbsorbed records that the row at index must stay visibly checked
func (s *AppState) MarkAbsorbed(index int) {
	s.Absorbed[index] = true
}

// Reassert clears the pending re-assertion for index
func (s *AppState) Reassert(index int) {
	delete(s.Absorbed, index)
}

// Commit records the handed-off selection
func (s *AppState) Commit(ids []domain.ItemID) {
	s.Committed = ids
	s.Done = true
}
