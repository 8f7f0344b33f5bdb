package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"pagepick/internal/widget"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Title          string
	AggregateLabel string
	DoneLabel      string
	Aggregate      widget.RowState
	Rows           []widget.RowState
	FocusIndex     int
	Absorbed       map[int]bool
	StatusMessage  string
	ConfirmQuit    bool
	ShowHelp       bool
	HelpModel      help.Model
	KeyMap         help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	rowRender   *RowRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(tierColors []string, maxTier int) *Renderer {
	styles := NewStyles(tierColors)
	return &Renderer{
		styles:      styles,
		rowRender:   NewRowRenderer(styles, maxTier),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	width := state.Width - 4 // Main padding
	if width < 30 {
		width = 30
	}

	content.WriteString(r.styles.Title.Render(state.Title))
	content.WriteString("\n")

	// Header row
	content.WriteString(r.rowRender.RenderRow(state.Aggregate, state.AggregateLabel,
		state.FocusIndex == 0, state.Absorbed[0], true, width))
	content.WriteString("\n")
	content.WriteString(r.divider(width))
	content.WriteString("\n")

	for i, row := range state.Rows {
		idx := i + 1
		content.WriteString(r.rowRender.RenderRow(row, row.Name, state.FocusIndex == idx, state.Absorbed[idx], false, width))
		content.WriteString("\n")
	}

	content.WriteString(r.divider(width))
	content.WriteString("\n\n")

	// Footer button
	button := r.styles.Button
	if state.FocusIndex == len(state.Rows)+1 {
		button = r.styles.ButtonFocus
	}
	content.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Right, button.Render(state.DoneLabel)))
	content.WriteString("\n")

	if state.ConfirmQuit {
		content.WriteString("\n")
		content.WriteString(r.styles.Confirm.Render("Quit without pressing Done? (y/n, d = done): "))
		content.WriteString("\n")
	} else if state.StatusMessage != "" {
		content.WriteString(r.styles.Status.Render(state.StatusMessage))
		content.WriteString("\n")
	}

	if state.KeyMap != nil {
		content.WriteString("\n")
		content.WriteString(state.HelpModel.View(state.KeyMap))
	}

	finalContent := r.styles.Main.Render(content.String())

	if state.ShowHelp && state.KeyMap != nil {
		full := state.HelpModel
		full.ShowAll = true
		helpContent := fmt.Sprintf("%s\n\n%s", r.styles.Header.Render("Keys"), full.View(state.KeyMap))
		return r.popupRender.RenderPopup(helpContent, state.Height, state.Width, r.styles.InfoBox)
	}

	return finalContent
}

func (r *Renderer) divider(width int) string {
	return r.styles.Divider.Render(strings.Repeat("─", width))
}

// padBetween lays left and right out on one line of the given width
func padBetween(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
