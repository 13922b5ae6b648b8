package rules

const (
	// Dead is the stored value of a dead cell.
	Dead uint8 = 0
	// Live is the stored value of a live cell.
	Live uint8 = 1
)

/*
Next applies Conway's Game of Life rules to determine the next state of a cell.

A live cell with 2 or 3 live neighbours survives, a dead cell with exactly 3 is born,
everything else is dead in the next generation.
*/
func Next(cell uint8, neighbours int) uint8 {
	if neighbours == 3 || (cell == Live && neighbours == 2) {
		return Live
	}
	return Dead
}
