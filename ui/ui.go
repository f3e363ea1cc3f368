// Package ui provides the windows the game can run in: a raylib window and a
// terminal screen. Both implement drawing and input polling; FrameClock paces
// either of them.
package ui

import (
	"errors"
	"fmt"

	"snake-arcade/game/input"
	"snake-arcade/game/types"
)

// ErrDisplayInit is returned when a window or terminal cannot be opened.
var ErrDisplayInit = errors.New("display init failed")

// Caption is the window title.
const Caption = "Snake"

// Backend is a window the game can draw to and read keys from.
type Backend interface {
	Clear(c types.Color)
	FillCell(pos types.Point, size int, fill, border types.Color)
	Present()
	PollEvents() []input.Event
	Close() error
}

const (
	BackendRaylib   = "raylib"
	BackendTerminal = "terminal"
)

// Open creates the named backend sized to the board.
func Open(name string, grid types.Grid, caption string) (Backend, error) {
	switch name {
	case BackendRaylib:
		d, err := NewRaylibDisplay(grid, caption)
		if err != nil {
			return nil, err
		}
		return d, nil
	case BackendTerminal:
		d, err := NewTerminalDisplay(grid, caption)
		if err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, fmt.Errorf("%w: unknown display %q", ErrDisplayInit, name)
	}
}
