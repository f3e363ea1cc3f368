package types

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// DefaultDirection is the heading of a new or reset snake.
const DefaultDirection = Right

// Vector returns the unit step for d. Y grows downwards, as on screen.
func (d Direction) Vector() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the direction whose vector is the inverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return d
	}
}

// TurnLeft returns the direction after a quarter turn counter-clockwise.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Right:
		return Up
	case Down:
		return Right
	case Left:
		return Down
	default:
		return d
	}
}

// TurnRight returns the direction after a quarter turn clockwise.
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		return d
	}
}

// IsOpposite reports whether d and other point in opposite directions.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other && d != other
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}
