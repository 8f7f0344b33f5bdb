package domain

import "github.com/google/uuid"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged  EventType = "SelectionChanged"
	EventClickCountChanged EventType = "ClickCountChanged"
	EventCommitted         EventType = "Committed"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionChangedEvent is emitted when item membership in the selection changes
type SelectionChangedEvent struct {
	Added   []ItemID
	Removed []ItemID
	Total   int
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// ClickCountChangedEvent is emitted after a counter write.
// Aggregate is set when the write came from the aggregate row and was broadcast.
type ClickCountChangedEvent struct {
	ID        ItemID
	Count     int
	Aggregate bool
}

func (e ClickCountChangedEvent) Type() EventType { return EventClickCountChanged }

// CommittedEvent is emitted when the user presses Done
type CommittedEvent struct {
	ID       uuid.UUID
	Selected []ItemID
}

func (e CommittedEvent) Type() EventType { return EventCommitted }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path  string
	Items []Item
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
