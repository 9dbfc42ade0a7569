package core

import (
	"sort"
	"time"
)

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - walk left / move cursor
	ActionRight          // D, Right arrow - walk right / move cursor
	ActionUp             // W, Up arrow - jump (platformer), floor up (castle)
	ActionDown           // S, Down arrow - floor down (castle)
	ActionJump           // Space - jump, place trap
	ActionConfirm        // Enter - confirm selection, place trap
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
	ActionTrap1          // 1 - select first trap type
	ActionTrap2          // 2
	ActionTrap3          // 3
	ActionTrap4          // 4
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionJump:    "Jump",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
	ActionTrap1:   "Trap1",
	ActionTrap2:   "Trap2",
	ActionTrap3:   "Trap3",
	ActionTrap4:   "Trap4",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// Movement is the directional intent derived from held keys.
type Movement struct {
	Up, Down, Left, Right bool
}

// InputFrame is the logical input state for one simulation tick.
// Held holds keys that are currently down; Pressed holds keys that went
// down since the previous tick.
type InputFrame struct {
	Held    map[Action]bool
	Pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held:    make(map[Action]bool),
		Pressed: make(map[Action]bool),
	}
}

// Set marks an action as both pressed and held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Held[a] = true
	f.Pressed[a] = true
}

// Hold marks an action as held without a fresh press.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// IsDown reports whether the action is held this frame.
func (f InputFrame) IsDown(a Action) bool {
	return f.Held[a] || f.Pressed[a]
}

// IsJustPressed reports whether the action went down this frame.
func (f InputFrame) IsJustPressed(a Action) bool {
	return f.Pressed[a]
}

// Has is an alias of IsJustPressed used by menus and one-shot actions.
func (f InputFrame) Has(a Action) bool {
	return f.Pressed[a]
}

// Movement returns the directional intent for this frame.
func (f InputFrame) Movement() Movement {
	return Movement{
		Up:    f.IsDown(ActionUp),
		Down:  f.IsDown(ActionDown),
		Left:  f.IsDown(ActionLeft),
		Right: f.IsDown(ActionRight),
	}
}

// ActionPressed reports whether the primary action (Space or Enter) was
// just pressed.
func (f InputFrame) ActionPressed() bool {
	return f.Pressed[ActionJump] || f.Pressed[ActionConfirm]
}

// TrapSelection returns the zero-based trap slot picked this frame, if any.
func (f InputFrame) TrapSelection() (int, bool) {
	for i, a := range []Action{ActionTrap1, ActionTrap2, ActionTrap3, ActionTrap4} {
		if f.Pressed[a] {
			return i, true
		}
	}
	return 0, false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Held)
	clear(f.Pressed)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.Held {
		c.Held[k] = v
	}
	for k, v := range f.Pressed {
		c.Pressed[k] = v
	}
	return c
}

// HeldList returns the held actions in ascending order.
func (f InputFrame) HeldList() []Action {
	return sortedActions(f.Held)
}

// PressedList returns the just-pressed actions in ascending order.
func (f InputFrame) PressedList() []Action {
	return sortedActions(f.Pressed)
}

func sortedActions(m map[Action]bool) []Action {
	out := make([]Action, 0, len(m))
	for a, on := range m {
		if on {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// FrameFromLists rebuilds a frame from held and pressed lists.
func FrameFromLists(held, pressed []Action) InputFrame {
	f := NewInputFrame()
	for _, a := range held {
		f.Held[a] = true
	}
	for _, a := range pressed {
		f.Pressed[a] = true
	}
	return f
}

// DefaultHoldWindow is how long a key counts as held after its last
// press or auto-repeat.
const DefaultHoldWindow = 180 * time.Millisecond

// Keyboard turns a stream of key presses into per-tick InputFrames.
// Terminals report presses and auto-repeats but never key releases, so a
// key stays held until HoldWindow passes without another press or an
// explicit Release.
type Keyboard struct {
	HoldWindow time.Duration

	held    map[Action]time.Duration // remaining hold time per action
	pressed map[Action]bool
}

// NewKeyboard creates a keyboard with the default hold window.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		HoldWindow: DefaultHoldWindow,
		held:       make(map[Action]time.Duration),
		pressed:    make(map[Action]bool),
	}
}

var opposite = map[Action]Action{
	ActionLeft:  ActionRight,
	ActionRight: ActionLeft,
	ActionUp:    ActionDown,
	ActionDown:  ActionUp,
}

// Press registers a key-down or auto-repeat for an action.
func (k *Keyboard) Press(a Action) {
	if a == ActionNone {
		return
	}
	if _, down := k.held[a]; !down {
		k.pressed[a] = true
	}
	k.held[a] = k.HoldWindow
	if o, ok := opposite[a]; ok {
		delete(k.held, o)
	}
}

// Release marks an action as up.
func (k *Keyboard) Release(a Action) {
	delete(k.held, a)
}

// Advance ages held keys by elapsed time and releases expired ones.
func (k *Keyboard) Advance(elapsed time.Duration) {
	for a, left := range k.held {
		left -= elapsed
		if left <= 0 {
			delete(k.held, a)
			continue
		}
		k.held[a] = left
	}
}

// Frame returns the input state for the current tick.
func (k *Keyboard) Frame() InputFrame {
	f := NewInputFrame()
	for a := range k.held {
		f.Held[a] = true
	}
	for a := range k.pressed {
		f.Pressed[a] = true
	}
	return f
}

// EndFrame clears just-pressed state. Hosts call it after every update.
func (k *Keyboard) EndFrame() {
	clear(k.pressed)
}

// Reset releases every key.
func (k *Keyboard) Reset() {
	clear(k.held)
	clear(k.pressed)
}
