package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pong/internal/game"
)

// HoldWindow is how long a movement key counts as held after its last
// press or auto-repeat, since terminals never report key releases
const HoldWindow = 150 * time.Millisecond

// Action is a movement key binding
type Action int

const (
	ActionNone Action = iota
	ActionLeftUp
	ActionLeftDown
	ActionRightUp
	ActionRightDown
)

// opposite returns the binding that moves the same paddle the other way
func (a Action) opposite() Action {
	switch a {
	case ActionLeftUp:
		return ActionLeftDown
	case ActionLeftDown:
		return ActionLeftUp
	case ActionRightUp:
		return ActionRightDown
	case ActionRightDown:
		return ActionRightUp
	}
	return ActionNone
}

// KeyToAction maps W/S to the left paddle and the arrow keys to the right one
func KeyToAction(key tcell.Key, r rune) Action {
	switch key {
	case tcell.KeyUp:
		return ActionRightUp
	case tcell.KeyDown:
		return ActionRightDown
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return ActionLeftUp
		case 's', 'S':
			return ActionLeftDown
		}
	}
	return ActionNone
}

// IsQuitKey returns true if the key should close the game at any time
func IsQuitKey(key tcell.Key) bool {
	return key == tcell.KeyEscape || key == tcell.KeyCtrlC
}

// KeyToPopupAction maps the game over shortcuts
func KeyToPopupAction(key tcell.Key, r rune) game.PopupAction {
	if key != tcell.KeyRune {
		return game.PopupNone
	}
	switch r {
	case 'r', 'R':
		return game.PopupReset
	case 'q', 'Q':
		return game.PopupQuit
	}
	return game.PopupNone
}

// Input accumulates terminal events between frames
type Input struct {
	pressed map[Action]time.Time

	cursorX, cursorY int
	buttonDown       bool
	clicked          bool

	shortcut game.PopupAction
	quit     bool
}

func NewInput() *Input {
	return &Input{pressed: make(map[Action]time.Time)}
}

// HandleEvent records a key or mouse event received at now
func (in *Input) HandleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if IsQuitKey(ev.Key()) {
			in.quit = true
			return
		}
		if a := KeyToAction(ev.Key(), ev.Rune()); a != ActionNone {
			in.pressed[a] = now
			// Reversing should not wait for the old hold to expire
			delete(in.pressed, a.opposite())
			return
		}
		if pa := KeyToPopupAction(ev.Key(), ev.Rune()); pa != game.PopupNone {
			in.shortcut = pa
		}

	case *tcell.EventMouse:
		in.cursorX, in.cursorY = ev.Position()
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !in.buttonDown {
			in.clicked = true
		}
		in.buttonDown = down
	}
}

func (in *Input) held(a Action, now time.Time) bool {
	t, ok := in.pressed[a]
	return ok && now.Sub(t) < HoldWindow
}

// Controls reports which movement keys count as held at now
func (in *Input) Controls(now time.Time) game.Controls {
	return game.Controls{
		LeftUp:    in.held(ActionLeftUp, now),
		LeftDown:  in.held(ActionLeftDown, now),
		RightUp:   in.held(ActionRightUp, now),
		RightDown: in.held(ActionRightDown, now),
	}
}

// Cursor returns the last mouse cell
func (in *Input) Cursor() (int, int) {
	return in.cursorX, in.cursorY
}

// TakeClick reports whether the left button was pressed since the last call
func (in *Input) TakeClick() bool {
	c := in.clicked
	in.clicked = false
	return c
}

// TakeShortcut returns and clears the last popup keyboard shortcut
func (in *Input) TakeShortcut() game.PopupAction {
	a := in.shortcut
	in.shortcut = game.PopupNone
	return a
}

// QuitRequested reports whether a quit key was pressed
func (in *Input) QuitRequested() bool {
	return in.quit
}
