package ui

import (
	"time"

	"pagepick/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// reassertMsg fires after an absorbed click so the row is drawn checked again
type reassertMsg struct {
	index int
}

// clearStatusMsg clears the status bar
type clearStatusMsg struct{}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// reassertDelay is how long an absorbed row stays highlighted
const reassertDelay = 150 * time.Millisecond
