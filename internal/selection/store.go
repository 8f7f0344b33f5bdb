package selection

import (
	"fmt"

	"pagepick/internal/domain"
	"pagepick/internal/eventbus"
)

// State holds selection state
type State struct {
	Selected map[domain.ItemID]bool
}

// Store owns the set of selected item ids for a fixed item list
type Store struct {
	items []domain.ItemID
	known map[domain.ItemID]bool
	state *State
	bus   eventbus.EventBus
}

// New creates an empty selection store for items.
// Items are assumed valid; see domain.ValidateItems.
func New(items []domain.Item, bus eventbus.EventBus) *Store {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	ids := domain.ItemIDs(items)
	known := make(map[domain.ItemID]bool, len(ids))
	for _, id := range ids {
		known[id] = true
	}
	return &Store{
		items: ids,
		known: known,
		state: &State{Selected: make(map[domain.ItemID]bool)},
		bus:   bus,
	}
}

// ToggleAll selects every item when checked, otherwise clears the selection
func (s *Store) ToggleAll(checked bool) {
	var added, removed []domain.ItemID
	for _, id := range s.items {
		switch {
		case checked && !s.state.Selected[id]:
			added = append(added, id)
		case !checked && s.state.Selected[id]:
			removed = append(removed, id)
		}
	}

	s.state.Selected = make(map[domain.ItemID]bool, len(s.items))
	if checked {
		for _, id := range s.items {
			s.state.Selected[id] = true
		}
	}

	s.publish(added, removed)
}

// SelectItem sets membership of id to *checked, or toggles it when checked is nil
func (s *Store) SelectItem(id domain.ItemID, checked *bool) error {
	if !s.known[id] {
		return fmt.Errorf("select %q: %w", id, domain.ErrUnknownItem)
	}

	want := !s.state.Selected[id]
	if checked != nil {
		want = *checked
	}
	if want == s.state.Selected[id] {
		return nil
	}

	if want {
		s.state.Selected[id] = true
		s.publish([]domain.ItemID{id}, nil)
	} else {
		delete(s.state.Selected, id)
		s.publish(nil, []domain.ItemID{id})
	}
	return nil
}

// Set sets membership of id
func (s *Store) Set(id domain.ItemID, checked bool) error {
	return s.SelectItem(id, &checked)
}

// Toggle flips membership of id
func (s *Store) Toggle(id domain.ItemID) error {
	return s.SelectItem(id, nil)
}

// AllSelected reports whether every item is selected and there is at least one item
func (s *Store) AllSelected() bool {
	return len(s.items) > 0 && len(s.state.Selected) == len(s.items)
}

// SomeSelected reports a partial selection
func (s *Store) SomeSelected() bool {
	n := len(s.state.Selected)
	return n > 0 && n < len(s.items)
}

// IsSelected checks if an item is selected
func (s *Store) IsSelected(id domain.ItemID) bool {
	return s.state.Selected[id]
}

// SelectedIDs returns a snapshot of the selected ids in item order
func (s *Store) SelectedIDs() []domain.ItemID {
	selected := make([]domain.ItemID, 0, len(s.state.Selected))
	for _, id := range s.items {
		if s.state.Selected[id] {
			selected = append(selected, id)
		}
	}
	return selected
}

// Count returns the number of selected items
func (s *Store) Count() int {
	return len(s.state.Selected)
}

// HasSelection returns true if anything is selected
func (s *Store) HasSelection() bool {
	return len(s.state.Selected) > 0
}

func (s *Store) publish(added, removed []domain.ItemID) {
	if len(added) == 0 && len(removed) == 0 {
		return
	}
	s.bus.Publish(eventbus.SelectionChangedEvent{
		Added:   added,
		Removed: removed,
		Total:   len(s.state.Selected),
	})
}
