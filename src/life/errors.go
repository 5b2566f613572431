package life

import "github.com/pkg/errors"

var (
	//ErrInvalidDimension is returned by the constructor for non-positive rows or cols
	ErrInvalidDimension = errors.New("invalid dimension")
	//ErrOutOfBounds is returned when a coordinate lies outside the grid
	ErrOutOfBounds      = errors.New("coordinate out of bounds")
	//ErrRunning is returned by edit operations while the simulation is running
	ErrRunning          = errors.New("simulation is running")
	//ErrUnknownTemplate is returned when settling a template which was never added
	ErrUnknownTemplate  = errors.New("unknown template")
)

func outOfBounds(a Area, row int, col int) error {
	return errors.Wrapf(ErrOutOfBounds, "cell (%d, %d) is outside the %dx%d grid", row, col, a.Rows, a.Cols)
}
