package entity

import (
	"errors"
	"testing"

	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestNewFood_AvoidsOccupied(t *testing.T) {
	g := testGrid()
	occupied := types.NewCellSet(g.Center())
	for seed := uint64(1); seed <= 50; seed++ {
		f, err := NewFood(g, newRand(seed), occupied, types.DefaultPalette.Food, types.DefaultPalette.Border)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		p := f.Position()
		if occupied.Contains(p) {
			t.Fatalf("seed %d: food on occupied cell %v", seed, p)
		}
		if p.X%g.CellSize != 0 || p.Y%g.CellSize != 0 || g.Wrap(p) != p {
			t.Fatalf("seed %d: food %v is not a board cell", seed, p)
		}
	}
}

func TestRelocate_AfterGrowth(t *testing.T) {
	s := newTestSnake([]types.Point{{X: 100, Y: 100}}, types.Right)
	s.Move(true)
	if s.Head() != (types.Point{X: 120, Y: 100}) || s.Len() != 2 {
		t.Fatalf("body=%v want=[(120,100) (100,100)]", s.Body())
	}

	f := &Food{grid: testGrid(), rng: newRand(7), position: types.Point{X: 120, Y: 100}}
	for i := 0; i < 200; i++ {
		if err := f.Relocate(s.Occupied()); err != nil {
			t.Fatal(err)
		}
		if p := f.Position(); p == (types.Point{X: 100, Y: 100}) || p == (types.Point{X: 120, Y: 100}) {
			t.Fatalf("food relocated onto the snake at %v", p)
		}
	}
}

func TestRelocate_NearlyFullBoardFindsLastCell(t *testing.T) {
	g := types.NewGrid(60, 40, 20)
	free := g.Cell(2, 1)
	occupied := types.CellSet{}
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			if p := g.Cell(col, row); p != free {
				occupied[p] = struct{}{}
			}
		}
	}

	for seed := uint64(1); seed <= 20; seed++ {
		f := &Food{grid: g, rng: newRand(seed)}
		if err := f.Relocate(occupied); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if f.Position() != free {
			t.Fatalf("seed %d: position=%v want=%v", seed, f.Position(), free)
		}
	}
}

func TestRelocate_FullBoard(t *testing.T) {
	g := types.NewGrid(40, 40, 20)
	occupied := types.NewCellSet(g.Cell(0, 0), g.Cell(1, 0), g.Cell(0, 1), g.Cell(1, 1))
	before := types.Point{X: 20, Y: 20}
	f := &Food{grid: g, rng: newRand(1), position: before}

	err := f.Relocate(occupied)
	if !errors.Is(err, ErrNoFreeCell) {
		t.Fatalf("err=%v want=ErrNoFreeCell", err)
	}
	if f.Position() != before {
		t.Fatalf("position changed to %v on failure", f.Position())
	}
}

func TestFoodRender(t *testing.T) {
	f := &Food{grid: testGrid(), position: types.Point{X: 40, Y: 60}, color: types.DefaultPalette.Food, border: types.DefaultPalette.Border}
	surface := &recordingSurface{}
	f.Render(surface)

	want := drawnCell{pos: types.Point{X: 40, Y: 60}, size: 20, fill: types.DefaultPalette.Food, border: types.DefaultPalette.Border}
	if len(surface.cells) != 1 || surface.cells[0] != want {
		t.Fatalf("drew %+v want=[%+v]", surface.cells, want)
	}
}
