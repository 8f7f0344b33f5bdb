package types

import "pagepick/internal/checkbox"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// PressAction presses the focused page row
type PressAction struct {
	Action checkbox.Action
}

func (a PressAction) Type() string { return "press" }

// PressAllAction presses the aggregate row regardless of focus
type PressAllAction struct {
	Action checkbox.Action
}

func (a PressAllAction) Type() string { return "press_all" }

// CommitAction hands the current selection off and exits
type CommitAction struct{}

func (a CommitAction) Type() string { return "commit" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true skips the discard confirmation
}

func (a QuitAction) Type() string { return "quit" }
