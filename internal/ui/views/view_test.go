package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/stretchr/testify/assert"

	"pagepick/internal/ui/input/types"
	"pagepick/internal/widget"
)

var palette = []string{"#BDBDBD", "#878787", "#5087F8", "#2469F6"}

func baseState() ViewState {
	return ViewState{
		Width:          60,
		Height:         24,
		Title:          "pagepick",
		AggregateLabel: "All pages",
		DoneLabel:      "Done",
		Aggregate:      widget.RowState{},
		Rows: []widget.RowState{
			{ID: "1", Name: "Page 1"},
			{ID: "2", Name: "Page 2", Checked: true, Count: 3, Tier: 3},
		},
		Absorbed:  map[int]bool{},
		HelpModel: help.New(),
		KeyMap:    types.DefaultKeyMap(),
	}
}

func TestRenderShowsRowsAndButton(t *testing.T) {
	out := StripANSI(NewRenderer(palette, 4).Render(baseState()))

	assert.Contains(t, out, "pagepick")
	assert.Contains(t, out, "All pages")
	assert.Contains(t, out, "Page 1")
	assert.Contains(t, out, "Page 2")
	assert.Contains(t, out, "Done")
	assert.Contains(t, out, "■■■□")
}

func TestCheckboxGlyphs(t *testing.T) {
	r := NewRowRenderer(NewStyles(palette), 4)

	assert.Equal(t, "[ ]", StripANSI(r.RenderCheckbox(widget.RowState{}, false)))
	assert.Equal(t, "[-]", StripANSI(r.RenderCheckbox(widget.RowState{Indeterminate: true}, false)))
	assert.Equal(t, "[✓]", StripANSI(r.RenderCheckbox(widget.RowState{Checked: true, Tier: 2}, false)))
	assert.Equal(t, "[✓]", StripANSI(r.RenderCheckbox(widget.RowState{Checked: true, Indeterminate: true, Tier: 1}, false)))
}

func TestAbsorbedRowStaysChecked(t *testing.T) {
	r := NewRowRenderer(NewStyles(palette), 4)
	out := StripANSI(r.RenderRow(widget.RowState{}, "Page 1", false, true, false, 40))
	assert.Contains(t, out, "›[✓]")
}

func TestConfirmPrompt(t *testing.T) {
	state := baseState()
	state.ConfirmQuit = true
	out := StripANSI(NewRenderer(palette, 4).Render(state))
	assert.Contains(t, out, "Quit without pressing Done?")
}

func TestHelpPopup(t *testing.T) {
	state := baseState()
	state.ShowHelp = true
	out := StripANSI(NewRenderer(palette, 4).Render(state))
	assert.Contains(t, out, "Keys")
	assert.True(t, strings.Contains(out, "all pages"))
}

func TestTierStyleClamps(t *testing.T) {
	s := NewStyles(palette)
	assert.Equal(t, s.Tiers[0].Render("x"), s.Tier(0).Render("x"))
	assert.Equal(t, s.Tiers[3].Render("x"), s.Tier(9).Render("x"))
}
