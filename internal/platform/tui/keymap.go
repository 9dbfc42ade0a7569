package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/castle-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	bindings map[string]core.Action
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{bindings: map[string]core.Action{
		"left":  core.ActionLeft,
		"a":     core.ActionLeft,
		"right": core.ActionRight,
		"d":     core.ActionRight,
		"up":    core.ActionUp,
		"w":     core.ActionUp,
		"down":  core.ActionDown,
		"s":     core.ActionDown,
		" ":     core.ActionJump,
		"enter": core.ActionConfirm,
		"b":     core.ActionBack,
		"esc":   core.ActionBack,
		"p":     core.ActionPause,
		"r":     core.ActionRestart,
		"1":     core.ActionTrap1,
		"2":     core.ActionTrap2,
		"3":     core.ActionTrap3,
		"4":     core.ActionTrap4,
	}}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	if a, ok := km.bindings[key]; ok {
		return a, false
	}
	return core.ActionNone, false
}

// MapKeyToKeyboard presses the mapped action on kb.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToKeyboard(msg tea.KeyMsg, kb *core.Keyboard) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		kb.Press(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
