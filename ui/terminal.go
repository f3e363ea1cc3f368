package ui

import (
	"fmt"

	"snake-arcade/game/input"
	"snake-arcade/game/types"

	"github.com/gdamore/tcell/v2"
)

// TerminalDisplay draws the board in a terminal. One board cell takes two
// terminal columns so cells look roughly square; the caption sits on the row
// below the board.
type TerminalDisplay struct {
	screen  tcell.Screen
	grid    types.Grid
	caption string
}

func NewTerminalDisplay(grid types.Grid, caption string) (*TerminalDisplay, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDisplayInit, err)
	}
	return newTerminalDisplay(screen, grid, caption)
}

func newTerminalDisplay(screen tcell.Screen, grid types.Grid, caption string) (*TerminalDisplay, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDisplayInit, err)
	}
	screen.HideCursor()
	return &TerminalDisplay{
		screen:  screen,
		grid:    grid,
		caption: caption,
	}, nil
}

func (d *TerminalDisplay) Clear(c types.Color) {
	d.screen.Fill(' ', tcell.StyleDefault.Background(toTcell(c)))
	for i, r := range d.caption {
		d.screen.SetContent(i, d.grid.Rows(), r, nil, tcell.StyleDefault)
	}
}

func (d *TerminalDisplay) FillCell(pos types.Point, size int, fill, border types.Color) {
	col, row := pos.X/size, pos.Y/size
	style := tcell.StyleDefault.Background(toTcell(fill)).Foreground(toTcell(border))
	d.screen.SetContent(2*col, row, '[', nil, style)
	d.screen.SetContent(2*col+1, row, ']', nil, style)
}

func (d *TerminalDisplay) Present() {
	d.screen.Show()
}

// PollEvents drains the events tcell has already queued without blocking.
// Escape, Ctrl-C and q quit.
func (d *TerminalDisplay) PollEvents() []input.Event {
	var events []input.Event
	for d.screen.HasPendingEvent() {
		switch ev := d.screen.PollEvent().(type) {
		case *tcell.EventKey:
			events = append(events, terminalKey(ev))
		case *tcell.EventResize:
			d.screen.Sync()
		case nil:
			return append(events, input.Quit())
		}
	}
	return events
}

func (d *TerminalDisplay) Close() error {
	d.screen.Fini()
	return nil
}

func terminalKey(ev *tcell.EventKey) input.Event {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Quit()
	case tcell.KeyUp:
		return input.Press(input.KeyUp)
	case tcell.KeyDown:
		return input.Press(input.KeyDown)
	case tcell.KeyLeft:
		return input.Press(input.KeyLeft)
	case tcell.KeyRight:
		return input.Press(input.KeyRight)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return input.Quit()
		case 'w', 'W':
			return input.Press(input.KeyUp)
		case 's', 'S':
			return input.Press(input.KeyDown)
		case 'a', 'A':
			return input.Press(input.KeyLeft)
		case 'd', 'D':
			return input.Press(input.KeyRight)
		}
	}
	return input.Press(input.KeyOther)
}

func toTcell(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
