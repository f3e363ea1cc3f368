package types

import (
	"errors"
	"fmt"
)

// ErrInvalidGrid is returned by Grid.Validate.
var ErrInvalidGrid = errors.New("invalid grid")

// Point is a board cell addressed in pixels. Stored points are always
// multiples of the cell size and lie inside the board after wrapping.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale multiplies both components by k.
func (p Point) Scale(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// CellSet is a set of occupied cells.
type CellSet map[Point]struct{}

// NewCellSet builds a set from the given points.
func NewCellSet(points ...Point) CellSet {
	set := make(CellSet, len(points))
	for _, p := range points {
		set[p] = struct{}{}
	}
	return set
}

// Contains reports whether p is in the set.
func (s CellSet) Contains(p Point) bool {
	_, ok := s[p]
	return ok
}

// Grid describes the board in pixels and the size of one cell.
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

// Default board: 640x480 pixels split into 20 pixel cells.
const (
	DefaultWidth    = 640
	DefaultHeight   = 480
	DefaultCellSize = 20
)

func NewGrid(width, height, cellSize int) Grid {
	return Grid{
		Width:    width,
		Height:   height,
		CellSize: cellSize,
	}
}

// Validate checks that the board is non-empty and splits evenly into cells.
func (g Grid) Validate() error {
	if g.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d", ErrInvalidGrid, g.CellSize)
	}
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: board %dx%d", ErrInvalidGrid, g.Width, g.Height)
	}
	if g.Width%g.CellSize != 0 || g.Height%g.CellSize != 0 {
		return fmt.Errorf("%w: board %dx%d is not a multiple of cell size %d",
			ErrInvalidGrid, g.Width, g.Height, g.CellSize)
	}
	return nil
}

// Cols returns the number of cell columns.
func (g Grid) Cols() int {
	return g.Width / g.CellSize
}

// Rows returns the number of cell rows.
func (g Grid) Rows() int {
	return g.Height / g.CellSize
}

// Cells returns the total number of cells on the board.
func (g Grid) Cells() int {
	return g.Cols() * g.Rows()
}

// Cell returns the pixel position of the cell at (col, row).
func (g Grid) Cell(col, row int) Point {
	return Point{X: col * g.CellSize, Y: row * g.CellSize}
}

// Center returns the cell-aligned center of the board.
func (g Grid) Center() Point {
	return g.Cell(g.Cols()/2, g.Rows()/2)
}

// Wrap maps an arbitrary pixel coordinate onto the toroidal board.
func (g Grid) Wrap(p Point) Point {
	return Point{X: wrap(p.X, g.Width), Y: wrap(p.Y, g.Height)}
}

func wrap(v, size int) int {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// Palette holds the colors used to draw a frame.
type Palette struct {
	Background Color
	Border     Color
	Food       Color
	Snake      Color
}

var DefaultPalette = Palette{
	Background: Color{R: 0, G: 0, B: 0},
	Border:     Color{R: 93, G: 216, B: 228},
	Food:       Color{R: 255, G: 0, B: 0},
	Snake:      Color{R: 0, G: 255, B: 0},
}
