// Package clickcount keeps one click counter per item plus the aggregate row's baseline.
//
// The aggregate's displayed count and checked flag are always derived from the
// item counters. Writes through the aggregate are broadcast to every item, so
// the aggregate wins over any earlier divergence; a later per-item write that
// breaks agreement resets the aggregate baseline to zero.
package clickcount

import (
	"fmt"

	"pagepick/internal/domain"
	"pagepick/internal/eventbus"
)

// Updater computes a new count from the previous one
type Updater func(prev int) int

// Increment is the updater used for absorbed clicks
func Increment(prev int) int { return prev + 1 }

// Synchronizer owns the per-item counters and the aggregate baseline
type Synchronizer struct {
	order    []domain.ItemID
	counts   map[domain.ItemID]int
	baseline int
	bus      eventbus.EventBus
}

// New creates a synchronizer with every counter and the baseline at zero
func New(items []domain.Item, bus eventbus.EventBus) *Synchronizer {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	order := domain.ItemIDs(items)
	counts := make(map[domain.ItemID]int, len(order))
	for _, id := range order {
		counts[id] = 0
	}
	return &Synchronizer{
		order:  order,
		counts: counts,
		bus:    bus,
	}
}

// SetItemCount writes n to a single item's counter
func (s *Synchronizer) SetItemCount(id domain.ItemID, n int) error {
	return s.UpdateItemCount(id, func(int) int { return n })
}

// UpdateItemCount applies fn to a single item's counter.
// If the items no longer agree afterwards the aggregate baseline drops to 0.
func (s *Synchronizer) UpdateItemCount(id domain.ItemID, fn Updater) error {
	prev, ok := s.counts[id]
	if !ok {
		return fmt.Errorf("click count %q: %w", id, domain.ErrUnknownItem)
	}

	next := clamp(fn(prev))
	s.counts[id] = next
	if !s.AllAgree() {
		s.baseline = 0
	}

	s.bus.Publish(eventbus.ClickCountChangedEvent{ID: id, Count: next})
	return nil
}

// SetAggregateCount stores n as the baseline and broadcasts it to every item
func (s *Synchronizer) SetAggregateCount(n int) {
	s.UpdateAggregateCount(func(int) int { return n })
}

// UpdateAggregateCount applies fn to the displayed aggregate count, not the
// stored baseline, then stores and broadcasts the result.
func (s *Synchronizer) UpdateAggregateCount(fn Updater) {
	next := clamp(fn(s.AggregateDisplayCount()))
	s.baseline = next
	for _, id := range s.order {
		s.counts[id] = next
	}

	for _, id := range s.order {
		s.bus.Publish(eventbus.ClickCountChangedEvent{ID: id, Count: next, Aggregate: true})
	}
}

// ItemCount returns the counter for id
func (s *Synchronizer) ItemCount(id domain.ItemID) (int, bool) {
	n, ok := s.counts[id]
	return n, ok
}

// AllAgree reports whether every item holds the same count. True for zero items.
func (s *Synchronizer) AllAgree() bool {
	_, agree := s.common()
	return agree
}

// AggregateDisplayCount is the shared count when all items agree, otherwise 0
func (s *Synchronizer) AggregateDisplayCount() int {
	n, agree := s.common()
	if !agree {
		return 0
	}
	return n
}

// Baseline returns the last value written through the aggregate row,
// or 0 after the items diverged.
func (s *Synchronizer) Baseline() int {
	return s.baseline
}

// EffectiveChecked is the aggregate checkbox's checked flag: the items must
// agree on a count and every item must be selected.
func (s *Synchronizer) EffectiveChecked(allSelected bool) bool {
	return allSelected && s.AllAgree()
}

// Counts returns a copy of the counters
func (s *Synchronizer) Counts() map[domain.ItemID]int {
	out := make(map[domain.ItemID]int, len(s.counts))
	for id, n := range s.counts {
		out[id] = n
	}
	return out
}

func (s *Synchronizer) common() (int, bool) {
	if len(s.order) == 0 {
		return 0, true
	}
	first := s.counts[s.order[0]]
	for _, id := range s.order[1:] {
		if s.counts[id] != first {
			return 0, false
		}
	}
	return first, true
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
