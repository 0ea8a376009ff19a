package engine

import (
	"github.com/lixenwraith/tuikit/terminal"
)

// EventType discriminates the session event sum
type EventType uint8

const (
	EventNone   EventType = iota
	EventEnd              // session over; terminal already restored
	EventResize           // window changed; tree already reflowed
	EventMouse
	EventKey
)

// Event is the unit NextEvent delivers. One payload field is meaningful
// per Type; Handled reports whether a component consumed the event.
type Event struct {
	Type    EventType
	Handled bool

	// EventResize
	Width, Height uint16

	Mouse MouseEvent // EventMouse
	Key   KeyEvent   // EventKey
}

// MouseEvent is a routed pointer event in screen coordinates.
type MouseEvent struct {
	X, Y   uint16
	Button terminal.MouseButton
	Action terminal.MouseAction
	Mod    terminal.Modifier
}

// KeyEvent is a routed keyboard event. Key is KeyRune for printable
// input, with the rune in Rune.
type KeyEvent struct {
	Rune rune
	Key  terminal.Key
	Mod  terminal.Modifier
}
