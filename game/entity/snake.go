package entity

import (
	"snake-arcade/game/types"
)

// pendingDirection is a direction change requested by input and not yet
// applied. The zero value means no change is queued.
type pendingDirection struct {
	dir types.Direction
	set bool
}

type Snake struct {
	grid      types.Grid
	body      []types.Point
	direction types.Direction
	pending   pendingDirection
	color     types.Color
	border    types.Color
}

// NewSnake returns a one-cell snake at the board center heading right.
func NewSnake(grid types.Grid, color, border types.Color) *Snake {
	s := &Snake{
		grid:   grid,
		color:  color,
		border: border,
	}
	s.Reset()
	return s
}

// Head returns the head cell.
func (s *Snake) Head() types.Point {
	return s.body[0]
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []types.Point {
	body := make([]types.Point, len(s.body))
	copy(body, s.body)
	return body
}

func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the direction applied on the next move.
func (s *Snake) Direction() types.Direction {
	return s.direction
}

// Pending returns the queued direction change, if any.
func (s *Snake) Pending() (types.Direction, bool) {
	return s.pending.dir, s.pending.set
}

// SetPendingDirection queues d for the next tick. A reversal of the current
// direction is ignored and reported as false.
func (s *Snake) SetPendingDirection(d types.Direction) bool {
	if s.direction.IsOpposite(d) {
		return false
	}
	s.pending = pendingDirection{dir: d, set: true}
	return true
}

// CommitDirection applies the queued direction change, if any.
func (s *Snake) CommitDirection() {
	if !s.pending.set {
		return
	}
	s.direction = s.pending.dir
	s.pending = pendingDirection{}
}

// Move advances the head one cell in the current direction. The tail is kept
// when grew is true, so the body gets one cell longer.
func (s *Snake) Move(grew bool) {
	step := s.direction.Vector().Scale(s.grid.CellSize)
	newHead := s.grid.Wrap(s.Head().Add(step))

	s.body = append(s.body, types.Point{})
	copy(s.body[1:], s.body)
	s.body[0] = newHead

	if !grew {
		s.body = s.body[:len(s.body)-1]
	}
}

// HasSelfCollision reports whether the head overlaps any other body cell.
func (s *Snake) HasSelfCollision() bool {
	head := s.Head()
	for _, p := range s.body[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// Reset puts the snake back to a single cell at the board center heading
// right with no queued turn.
func (s *Snake) Reset() {
	s.body = []types.Point{s.grid.Center()}
	s.direction = types.DefaultDirection
	s.pending = pendingDirection{}
}

// Occupied returns the set of cells covered by the body.
func (s *Snake) Occupied() types.CellSet {
	return types.NewCellSet(s.body...)
}

func (s *Snake) Render(surface Surface) {
	for _, p := range s.body {
		surface.FillCell(p, s.grid.CellSize, s.color, s.border)
	}
}
