package entity

import (
	"errors"

	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

// ErrNoFreeCell is returned when every cell of the board is occupied and food
// has nowhere to go.
var ErrNoFreeCell = errors.New("no free cell for food")

// sampleFactor bounds random sampling to sampleFactor * cells attempts before
// falling back to enumerating free cells.
const sampleFactor = 4

type Food struct {
	grid     types.Grid
	rng      *rand.Rand
	position types.Point
	color    types.Color
	border   types.Color
}

// NewFood places food on a random cell outside occupied.
func NewFood(grid types.Grid, rng *rand.Rand, occupied types.CellSet, color, border types.Color) (*Food, error) {
	f := &Food{
		grid:   grid,
		rng:    rng,
		color:  color,
		border: border,
	}
	if err := f.Relocate(occupied); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Food) Position() types.Point {
	return f.position
}

// Relocate moves the food to a uniformly random cell that is not in occupied.
// The position is left unchanged when the board has no free cell.
func (f *Food) Relocate(occupied types.CellSet) error {
	cols, rows := f.grid.Cols(), f.grid.Rows()

	for attempt := 0; attempt < sampleFactor*f.grid.Cells(); attempt++ {
		p := f.grid.Cell(f.rng.Intn(cols), f.rng.Intn(rows))
		if !occupied.Contains(p) {
			f.position = p
			return nil
		}
	}

	var free []types.Point
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if p := f.grid.Cell(col, row); !occupied.Contains(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return ErrNoFreeCell
	}
	f.position = free[f.rng.Intn(len(free))]
	return nil
}

func (f *Food) Render(surface Surface) {
	surface.FillCell(f.position, f.grid.CellSize, f.color, f.border)
}
