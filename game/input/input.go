// Package input turns raw key events into steering requests.
package input

import "snake-arcade/game/types"

type EventKind int

const (
	EventKeyDown EventKind = iota
	EventQuit
)

// Key is a backend-independent key code. Only the four direction keys carry
// meaning; everything else arrives as KeyOther.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

type Event struct {
	Kind EventKind
	Key  Key
}

// Quit is the close/quit request event.
func Quit() Event {
	return Event{Kind: EventQuit}
}

// Press is a key-down event for k.
func Press(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// Direction returns the direction bound to k.
func (k Key) Direction() (types.Direction, bool) {
	switch k {
	case KeyUp:
		return types.Up, true
	case KeyDown:
		return types.Down, true
	case KeyLeft:
		return types.Left, true
	case KeyRight:
		return types.Right, true
	default:
		return 0, false
	}
}
