// Package widget composes the selection store, the click-count synchronizer
// and the progressive checkbox into one "All pages" list.
package widget

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"pagepick/internal/checkbox"
	"pagepick/internal/clickcount"
	"pagepick/internal/domain"
	"pagepick/internal/eventbus"
	"pagepick/internal/selection"
)

// RowState is everything a renderer needs to draw one checkbox row
type RowState struct {
	ID            domain.ItemID
	Name          string
	Checked       bool
	Indeterminate bool
	Count         int
	Tier          int
}

// Option configures a Widget
type Option func(*Widget)

// WithBus attaches an event bus; stores publish their changes on it
func WithBus(bus eventbus.EventBus) Option {
	return func(w *Widget) { w.bus = bus }
}

// WithMaxTier overrides the number of checkbox style tiers
func WithMaxTier(n int) Option {
	return func(w *Widget) {
		if n > 0 {
			w.maxTier = n
		}
	}
}

// Widget owns one selection store and one synchronizer for a fixed item list
type Widget struct {
	items     []domain.Item
	index     map[domain.ItemID]int
	selection *selection.Store
	counts    *clickcount.Synchronizer
	bus       eventbus.EventBus
	maxTier   int
}

// New validates items and creates a widget with nothing selected and all counts at 0
func New(items []domain.Item, opts ...Option) (*Widget, error) {
	w := &Widget{
		bus:     eventbus.NullBus{},
		maxTier: checkbox.DefaultMaxTier,
	}
	for _, opt := range opts {
		opt(w)
	}
	if err := w.Reset(items); err != nil {
		return nil, err
	}
	return w, nil
}

// Reset re-initializes both stores for a new item list
func (w *Widget) Reset(items []domain.Item) error {
	if err := domain.ValidateItems(items); err != nil {
		return err
	}

	w.items = append([]domain.Item(nil), items...)
	w.index = make(map[domain.ItemID]int, len(items))
	for i, item := range w.items {
		w.index[item.ID] = i
	}
	w.selection = selection.New(w.items, w.bus)
	w.counts = clickcount.New(w.items, w.bus)
	return nil
}

// Items returns the item list
func (w *Widget) Items() []domain.Item {
	return append([]domain.Item(nil), w.items...)
}

// MaxTier returns the number of checkbox style tiers
func (w *Widget) MaxTier() int {
	return w.maxTier
}

// Selection exposes the underlying selection store
func (w *Widget) Selection() *selection.Store {
	return w.selection
}

// ClickCounts exposes the underlying click-count synchronizer
func (w *Widget) ClickCounts() *clickcount.Synchronizer {
	return w.counts
}

// PressItem runs a checkbox action on one item row
func (w *Widget) PressItem(id domain.ItemID, a checkbox.Action) (checkbox.Result, error) {
	count, ok := w.counts.ItemCount(id)
	if !ok {
		return checkbox.Result{}, fmt.Errorf("press %q: %w", id, domain.ErrUnknownItem)
	}

	r := checkbox.Press(w.selection.IsSelected(id), count, a, w.maxTier, itemWriter{counts: w.counts, id: id})
	if r.Outcome == checkbox.Ignored {
		return r, nil
	}
	if err := w.selection.Set(id, r.Checked); err != nil {
		return r, err
	}
	return r, nil
}

// Toggle presses an item row the way a plain click would
func (w *Widget) Toggle(id domain.ItemID) (checkbox.Result, error) {
	return w.PressItem(id, checkbox.ActionFor(w.selection.IsSelected(id)))
}

// PressAll runs a checkbox action on the aggregate row. Count writes are
// broadcast to every item and the result drives ToggleAll.
func (w *Widget) PressAll(a checkbox.Action) checkbox.Result {
	r := checkbox.Press(w.AggregateChecked(), w.counts.AggregateDisplayCount(), a, w.maxTier, aggregateWriter{counts: w.counts})
	if r.Outcome != checkbox.Ignored {
		w.selection.ToggleAll(r.Checked)
	}
	return r
}

// ToggleAllRow presses the aggregate row the way a plain click would
func (w *Widget) ToggleAllRow() checkbox.Result {
	return w.PressAll(checkbox.ActionFor(w.AggregateChecked()))
}

// AggregateChecked is true only when every item is selected and all counts agree
func (w *Widget) AggregateChecked() bool {
	return w.counts.EffectiveChecked(w.selection.AllSelected())
}

// AggregateRow returns the "All pages" row state
func (w *Widget) AggregateRow() RowState {
	checked := w.AggregateChecked()
	count := w.counts.AggregateDisplayCount()
	return RowState{
		Checked:       checked,
		Indeterminate: w.selection.SomeSelected(),
		Count:         count,
		Tier:          checkbox.Tier(checked, count, w.maxTier),
	}
}

// Row returns one item row
func (w *Widget) Row(id domain.ItemID) (RowState, bool) {
	i, ok := w.index[id]
	if !ok {
		return RowState{}, false
	}
	item := w.items[i]
	checked := w.selection.IsSelected(id)
	count, _ := w.counts.ItemCount(id)
	return RowState{
		ID:      item.ID,
		Name:    item.Name,
		Checked: checked,
		Count:   count,
		Tier:    checkbox.Tier(checked, count, w.maxTier),
	}, true
}

// Rows returns every item row in order
func (w *Widget) Rows() []RowState {
	rows := make([]RowState, 0, len(w.items))
	for _, item := range w.items {
		row, _ := w.Row(item.ID)
		rows = append(rows, row)
	}
	return rows
}

// Done snapshots the current selection and hands it to subscribers of
// CommittedEvent.
func (w *Widget) Done() []domain.ItemID {
	selected := w.selection.SelectedIDs()
	w.bus.Publish(eventbus.CommittedEvent{
		ID:       uuid.New(),
		Selected: selected,
	})
	return selected
}

type itemWriter struct {
	counts *clickcount.Synchronizer
	id     domain.ItemID
}

func (w itemWriter) SetCount(n int) {
	if err := w.counts.SetItemCount(w.id, n); err != nil {
		log.Printf("widget: %v", err)
	}
}

func (w itemWriter) UpdateCount(fn clickcount.Updater) {
	if err := w.counts.UpdateItemCount(w.id, fn); err != nil {
		log.Printf("widget: %v", err)
	}
}

type aggregateWriter struct {
	counts *clickcount.Synchronizer
}

func (w aggregateWriter) SetCount(n int)                    { w.counts.SetAggregateCount(n) }
func (w aggregateWriter) UpdateCount(fn clickcount.Updater) { w.counts.UpdateAggregateCount(fn) }
