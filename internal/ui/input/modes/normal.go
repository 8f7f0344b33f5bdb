package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pagepick/internal/checkbox"
	"pagepick/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case key.Matches(msg, m.keys.Top):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case key.Matches(msg, m.keys.Bottom):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, m.keys.Press):
		// Enter/space on the footer button commits
		if ctx.OnDone() {
			return []types.Action{types.CommitAction{}}, true
		}
		act := checkbox.ActionFor(ctx.FocusedChecked())
		if ctx.OnAggregate() {
			return []types.Action{types.PressAllAction{Action: act}}, true
		}
		return []types.Action{types.PressAction{Action: act}}, true

	case key.Matches(msg, m.keys.Uncheck):
		if ctx.OnDone() {
			return nil, true
		}
		if ctx.OnAggregate() {
			return []types.Action{types.PressAllAction{Action: checkbox.Uncheck}}, true
		}
		return []types.Action{types.PressAction{Action: checkbox.Uncheck}}, true

	case key.Matches(msg, m.keys.PressAll):
		return []types.Action{types.PressAllAction{Action: checkbox.ActionFor(ctx.AggregateChecked())}}, true

	case key.Matches(msg, m.keys.Done):
		return []types.Action{types.CommitAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, m.keys.Quit):
		// Leaving with a selection asks first
		if ctx.HasSelection() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeQuitConfirm}}, true
		}
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}
