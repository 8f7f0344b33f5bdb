package views

import (
	"strings"

	"pagepick/internal/widget"
)

// RowRenderer handles rendering of checkbox rows
type RowRenderer struct {
	styles  *Styles
	maxTier int
}

// NewRowRenderer creates a new row renderer
func NewRowRenderer(styles *Styles, maxTier int) *RowRenderer {
	return &RowRenderer{
		styles:  styles,
		maxTier: maxTier,
	}
}

// RenderCheckbox renders the box glyph for a row.
// Indeterminate only shows while the box is unchecked.
func (r *RowRenderer) RenderCheckbox(row widget.RowState, absorbed bool) string {
	switch {
	case row.Checked || absorbed:
		tier := row.Tier
		if tier == 0 {
			tier = 1
		}
		return r.styles.Tier(tier).Render("[✓]")
	case row.Indeterminate:
		return r.styles.Indeterminate.Render("[-]")
	default:
		return r.styles.Unchecked.Render("[ ]")
	}
}

// RenderMeter shows how far a checked box has progressed through the tiers
func (r *RowRenderer) RenderMeter(row widget.RowState) string {
	if !row.Checked || r.maxTier <= 1 {
		return ""
	}
	filled := row.Tier
	return r.styles.Tier(row.Tier).Render(strings.Repeat("■", filled)) +
		r.styles.Dim.Render(strings.Repeat("□", r.maxTier-filled))
}

// RenderRow renders a full row: label on the left, box and meter on the right
func (r *RowRenderer) RenderRow(row widget.RowState, label string, focused, absorbed, header bool, width int) string {
	labelStyle := r.styles.Label
	if header {
		labelStyle = r.styles.Header
	}

	box := r.RenderCheckbox(row, absorbed)
	if absorbed {
		box = r.styles.Absorbed.Render("›") + box
	} else {
		box = " " + box
	}
	meter := r.RenderMeter(row)

	left := labelStyle.Render(label)
	right := box
	if meter != "" {
		right = meter + " " + box
	} else if r.maxTier > 1 {
		right = strings.Repeat(" ", r.maxTier+1) + box
	}

	line := padBetween(left, right, width)
	if focused {
		return r.styles.Focus.Render(line)
	}
	return line
}
