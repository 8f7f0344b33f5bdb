package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"pagepick/internal/ui/input/types"
)

// ConfirmMode asks before quitting with a selection that was never committed
type ConfirmMode struct{}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "quit-confirm"
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c", "y", "Y":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "n", "N":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "d":
		return []types.Action{
			types.ChangeModeAction{Mode: types.ModeNormal},
			types.CommitAction{},
		}, true
	}

	// Swallow everything else while the prompt is up
	return nil, true
}
