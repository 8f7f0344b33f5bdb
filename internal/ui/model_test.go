package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagepick/internal/config"
	"pagepick/internal/domain"
	"pagepick/internal/eventbus"
	"pagepick/internal/ui/views"
	"pagepick/internal/widget"
)

func newTestModel(t *testing.T) (*Model, *widget.Widget) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Items = []config.ItemConfig{{ID: "A", Name: "Page 1"}, {ID: "B", Name: "Page 2"}}
	w, err := widget.New(cfg.DomainItems(), widget.WithMaxTier(cfg.UI.MaxTier))
	require.NoError(t, err)

	m := NewModel(cfg, w)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, w
}

func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	switch msg := cmd().(type) {
	case tea.QuitMsg:
		return true
	case tea.BatchMsg:
		for _, c := range msg {
			if isQuit(c) {
				return true
			}
		}
	}
	return false
}

func TestViewBeforeSize(t *testing.T) {
	cfg := config.DefaultConfig()
	w, err := widget.New(cfg.DomainItems())
	require.NoError(t, err)
	assert.Equal(t, "Loading...", NewModel(cfg, w).View())
}

func TestNavigationIsClamped(t *testing.T) {
	m, _ := newTestModel(t)

	send(m, up)
	assert.Equal(t, 0, m.state.FocusIndex)

	send(m, down, down, down, down, down)
	assert.Equal(t, 3, m.state.FocusIndex) // Done button

	send(m, runes("g"))
	assert.Equal(t, 0, m.state.FocusIndex)
	send(m, runes("G"))
	assert.Equal(t, 3, m.state.FocusIndex)
}

func TestPressItemRow(t *testing.T) {
	m, w := newTestModel(t)

	send(m, down, space)
	row, _ := w.Row("A")
	assert.True(t, row.Checked)
	assert.Equal(t, 1, row.Count)

	cmd := send(m, space)
	require.NotNil(t, cmd)
	assert.True(t, m.state.Absorbed[1])
	row, _ = w.Row("A")
	assert.Equal(t, 2, row.Count)
	assert.True(t, row.Checked)

	send(m, reassertMsg{index: 1})
	assert.False(t, m.state.Absorbed[1])
}

func TestExplicitUncheckOnEmptyRow(t *testing.T) {
	m, w := newTestModel(t)
	send(m, down, runes("x"), runes("x"))
	row, _ := w.Row("A")
	assert.Equal(t, widget.RowState{ID: "A", Name: "Page 1"}, row)
}

func TestAggregateRowBroadcasts(t *testing.T) {
	m, w := newTestModel(t)

	send(m, enter)
	assert.True(t, w.AggregateRow().Checked)
	for _, r := range w.Rows() {
		assert.Equal(t, 1, r.Count)
	}

	send(m, runes("a"))
	assert.True(t, m.state.Absorbed[0])
	for _, r := range w.Rows() {
		assert.Equal(t, 2, r.Count)
		assert.True(t, r.Checked)
	}
}

func TestDivergedAggregateRendersUnchecked(t *testing.T) {
	m, w := newTestModel(t)
	send(m, enter)       // all pages (true, 1)
	send(m, down, space) // Page 1 absorbed -> 2
	send(m, reassertMsg{index: 1})

	assert.False(t, w.AggregateRow().Checked)
	assert.Equal(t, 0, w.AggregateRow().Count)

	out := views.StripANSI(m.View())
	assert.Contains(t, out, "All pages")
}

func TestDoneCommitsAndQuits(t *testing.T) {
	m, _ := newTestModel(t)
	send(m, down, down, space)

	cmd := send(m, runes("d"))
	assert.True(t, isQuit(cmd))

	ids, done := m.Committed()
	assert.True(t, done)
	assert.Equal(t, []domain.ItemID{"B"}, ids)
}

func TestEnterOnDoneButtonCommits(t *testing.T) {
	m, _ := newTestModel(t)
	send(m, runes("G"))
	cmd := send(m, enter)
	assert.True(t, isQuit(cmd))
	_, done := m.Committed()
	assert.True(t, done)
}

func TestQuitWithoutSelectionQuits(t *testing.T) {
	m, _ := newTestModel(t)
	assert.True(t, isQuit(send(m, runes("q"))))
	_, done := m.Committed()
	assert.False(t, done)
}

func TestQuitWithSelectionAsksFirst(t *testing.T) {
	m, _ := newTestModel(t)
	send(m, enter)

	cmd := send(m, runes("q"))
	assert.False(t, isQuit(cmd))
	assert.Contains(t, views.StripANSI(m.View()), "Quit without pressing Done?")

	send(m, runes("n"))
	assert.NotContains(t, views.StripANSI(m.View()), "Quit without pressing Done?")

	send(m, runes("q"))
	assert.True(t, isQuit(send(m, runes("y"))))
}

func TestCtrlCAlwaysQuits(t *testing.T) {
	m, _ := newTestModel(t)
	send(m, enter)
	assert.True(t, isQuit(send(m, tea.KeyMsg{Type: tea.KeyCtrlC})))
}

func TestInlineHelpWithoutProgram(t *testing.T) {
	m, _ := newTestModel(t)

	send(m, runes("?"))
	assert.True(t, m.state.ShowHelp)
	assert.Contains(t, views.StripANSI(m.View()), "Keys")

	send(m, runes("j"))
	assert.Equal(t, 0, m.state.FocusIndex)

	send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.state.ShowHelp)
}

func TestSelectionEventSetsStatus(t *testing.T) {
	m, _ := newTestModel(t)
	send(m, EventMsg{Event: eventbus.SelectionChangedEvent{Total: 1}})
	assert.Equal(t, "1 of 2 selected", m.state.StatusMessage)

	send(m, clearStatusMsg{})
	assert.Empty(t, m.state.StatusMessage)
}

func TestHelpPagerFailureFallsBack(t *testing.T) {
	m, _ := newTestModel(t)
	send(m, helpPagerMsg{err: assert.AnError})
	assert.True(t, m.state.ShowHelp)
}

func TestHelpContentListsBindings(t *testing.T) {
	m, _ := newTestModel(t)
	out := views.StripANSI(m.helpRenderer.RenderHelpContent())
	assert.Contains(t, out, "pagepick Help")
	assert.Contains(t, out, "all pages")
	assert.Contains(t, out, "Checkboxes")
}
