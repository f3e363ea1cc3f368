package ui

import (
	"fmt"
	"image/color"

	"snake-arcade/game/input"
	"snake-arcade/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaylibDisplay is a fixed-size raylib window. It draws frames and hands out
// the keys pressed since the previous frame.
type RaylibDisplay struct {
	grid types.Grid
}

// NewRaylibDisplay opens a window of the board's pixel size.
func NewRaylibDisplay(grid types.Grid, caption string) (*RaylibDisplay, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(grid.Width), int32(grid.Height), caption)
	if !rl.IsWindowReady() {
		return nil, fmt.Errorf("%w: raylib window %dx%d", ErrDisplayInit, grid.Width, grid.Height)
	}
	return &RaylibDisplay{grid: grid}, nil
}

// Clear starts a frame. Every Clear must be followed by Present.
func (d *RaylibDisplay) Clear(c types.Color) {
	rl.BeginDrawing()
	rl.ClearBackground(toRaylib(c))
}

func (d *RaylibDisplay) FillCell(pos types.Point, size int, fill, border types.Color) {
	x, y, s := int32(pos.X), int32(pos.Y), int32(size)
	rl.DrawRectangle(x, y, s, s, toRaylib(fill))
	rl.DrawRectangleLines(x, y, s, s, toRaylib(border))
}

// Present ends the frame. raylib also collects input here.
func (d *RaylibDisplay) Present() {
	rl.EndDrawing()
}

// PollEvents drains raylib's key queue. Closing the window or pressing
// Escape yields a quit event.
func (d *RaylibDisplay) PollEvents() []input.Event {
	if rl.WindowShouldClose() {
		return []input.Event{input.Quit()}
	}
	var events []input.Event
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		events = append(events, input.Press(raylibKey(key)))
	}
	return events
}

func (d *RaylibDisplay) Close() error {
	rl.CloseWindow()
	return nil
}

func raylibKey(key int32) input.Key {
	switch key {
	case rl.KeyUp, rl.KeyW:
		return input.KeyUp
	case rl.KeyDown, rl.KeyS:
		return input.KeyDown
	case rl.KeyLeft, rl.KeyA:
		return input.KeyLeft
	case rl.KeyRight, rl.KeyD:
		return input.KeyRight
	default:
		return input.KeyOther
	}
}

func toRaylib(c types.Color) color.RGBA {
	return rl.NewColor(c.R, c.G, c.B, 255)
}
