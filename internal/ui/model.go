package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"pagepick/internal/config"
	"pagepick/internal/domain"
	"pagepick/internal/eventbus"
	"pagepick/internal/ui/input"
	inputtypes "pagepick/internal/ui/input/types"
	"pagepick/internal/ui/state"
	"pagepick/internal/ui/views"
	"pagepick/internal/widget"
)

// Model represents the UI state
type Model struct {
	config *config.Config
	state  *state.AppState
	widget *widget.Widget

	width  int
	height int
	help   help.Model

	renderer     *views.Renderer
	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model around w
func NewModel(cfg *config.Config, w *widget.Widget) *Model {
	inputHandler := input.New()
	return &Model{
		config:       cfg,
		state:        state.NewAppState(),
		widget:       w,
		help:         help.New(),
		renderer:     views.NewRenderer(cfg.UI.TierColors, w.MaxTier()),
		inputHandler: inputHandler,
		helpRenderer: NewHelpRenderer(inputHandler.Keys()),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Committed returns the ids handed off through Done, and whether Done was pressed
func (m *Model) Committed() ([]domain.ItemID, bool) {
	return m.state.Committed, m.state.Done
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		if m.state.ShowHelp {
			switch msg.String() {
			case "esc", "?", "q":
				m.state.ShowHelp = false
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}

		ctx := &input.ModelContext{
			State:  m.state,
			Widget: m.widget,
		}

		var cmds []tea.Cmd
		for _, action := range m.inputHandler.HandleKey(msg, ctx) {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case reassertMsg:
		m.state.Reassert(msg.index)

	case clearStatusMsg:
		m.state.StatusMessage = ""

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: fall back to the inline popup
			log.Printf("Help pager failed: %v", msg.err)
			m.state.ShowHelp = true
		}

	case EventMsg:
		return m, m.handleEvent(msg.Event)
	}

	return m, nil
}

// processAction applies one input action
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	total := len(m.widget.Items()) + 2

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		switch a.Direction {
		case "up":
			m.state.MoveFocus(-1, total)
		case "down":
			m.state.MoveFocus(1, total)
		case "home":
			m.state.SetFocus(0, total)
		case "end":
			m.state.SetFocus(total-1, total)
		}

	case inputtypes.PressAction:
		items := m.widget.Items()
		idx := m.state.FocusIndex
		if idx < 1 || idx > len(items) {
			return nil
		}
		result, err := m.widget.PressItem(items[idx-1].ID, a.Action)
		if err != nil {
			log.Printf("Press failed: %v", err)
			return m.setStatus(fmt.Sprintf("Error: %v", err))
		}
		if result.Absorbed() {
			return m.absorb(idx)
		}

	case inputtypes.PressAllAction:
		if m.widget.PressAll(a.Action).Absorbed() {
			return m.absorb(0)
		}

	case inputtypes.CommitAction:
		selected := m.widget.Done()
		log.Printf("Committed %d selected item(s): %v", len(selected), selected)
		m.state.Commit(selected)
		return tea.Quit

	case inputtypes.ToggleHelpAction:
		if m.helpOps != nil {
			return m.fetchHelpPager(m.helpRenderer.RenderHelpContent())
		}
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// absorb keeps the row at index drawn checked until the reassert tick
func (m *Model) absorb(index int) tea.Cmd {
	m.state.MarkAbsorbed(index)
	return tea.Tick(reassertDelay, func(time.Time) tea.Msg {
		return reassertMsg{index: index}
	})
}

func (m *Model) setStatus(text string) tea.Cmd {
	m.state.StatusMessage = text
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.SelectionChangedEvent:
		return m.setStatus(fmt.Sprintf("%d of %d selected", e.Total, len(m.widget.Items())))
	}
	return nil
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		return helpPagerMsg{err: m.helpOps.ShowHelpInPager(helpContent)}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	return m.renderer.Render(views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Title:          m.config.Title,
		AggregateLabel: m.config.UI.AggregateLabel,
		DoneLabel:      m.config.UI.DoneLabel,
		Aggregate:      m.widget.AggregateRow(),
		Rows:           m.widget.Rows(),
		FocusIndex:     m.state.FocusIndex,
		Absorbed:       m.state.Absorbed,
		StatusMessage:  m.state.StatusMessage,
		ConfirmQuit:    m.inputHandler.CurrentMode() == inputtypes.ModeQuitConfirm,
		ShowHelp:       m.state.ShowHelp,
		HelpModel:      m.help,
		KeyMap:         m.inputHandler.Keys(),
	})
}
