// Package entity holds the two things that live on the board: the snake and
// its food. Both draw themselves onto a Surface supplied by the caller.
package entity

import "snake-arcade/game/types"

// Surface is the drawing capability entities need from a display.
type Surface interface {
	// FillCell draws a size x size square at pos with a one pixel border.
	FillCell(pos types.Point, size int, fill, border types.Color)
}

// Drawable is anything that can render itself onto a Surface.
type Drawable interface {
	Render(surface Surface)
}

var (
	_ Drawable = (*Snake)(nil)
	_ Drawable = (*Food)(nil)
)
