package input

import (
	"pagepick/internal/ui/state"
	"pagepick/internal/widget"
)

// ModelContext implements the Context interface for the input handler.
// Focus index 0 is the aggregate row, 1..n the page rows and n+1 the Done button.
type ModelContext struct {
	State  *state.AppState
	Widget *widget.Widget
}

// FocusIndex returns the focused row
func (c *ModelContext) FocusIndex() int {
	return c.State.FocusIndex
}

// TotalItems returns the number of focusable rows
func (c *ModelContext) TotalItems() int {
	return len(c.Widget.Items()) + 2
}

// OnAggregate reports whether the aggregate row has focus
func (c *ModelContext) OnAggregate() bool {
	return c.State.FocusIndex == 0
}

// OnDone reports whether the Done button has focus
func (c *ModelContext) OnDone() bool {
	return c.State.FocusIndex == c.TotalItems()-1
}

// FocusedChecked returns the checked state of the focused row
func (c *ModelContext) FocusedChecked() bool {
	if c.OnAggregate() {
		return c.Widget.AggregateChecked()
	}
	if c.OnDone() {
		return false
	}
	items := c.Widget.Items()
	return c.Widget.Selection().IsSelected(items[c.State.FocusIndex-1].ID)
}

// AggregateChecked returns the aggregate row's effective checked state
func (c *ModelContext) AggregateChecked() bool {
	return c.Widget.AggregateChecked()
}

// HasSelection returns true if any items are selected
func (c *ModelContext) HasSelection() bool {
	return c.Widget.Selection().HasSelection()
}
