package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the selection and click-count stores
var (
	ErrUnknownItem  = errors.New("unknown item")
	ErrInvalidItems = errors.New("invalid item list")
)

// ItemID identifies a selectable row
type ItemID string

// Item represents one selectable page row
type Item struct {
	ID   ItemID
	Name string
}

// ValidateItems checks that every item has a non-empty, unique ID
func ValidateItems(items []Item) error {
	seen := make(map[ItemID]bool, len(items))
	for i, item := range items {
		if item.ID == "" {
			return fmt.Errorf("%w: item %d has an empty id", ErrInvalidItems, i)
		}
		if seen[item.ID] {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidItems, item.ID)
		}
		seen[item.ID] = true
	}
	return nil
}

// ItemIDs returns the ids of items in order
func ItemIDs(items []Item) []ItemID {
	ids := make([]ItemID, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}
