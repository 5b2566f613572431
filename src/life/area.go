package life

type Cell bool

const (
	Dead  Cell = false
	Alive Cell = true
)

//Area is the rectangular field where cells are living
//Cells is indexed as Cells[row][col]
type Area struct {
	Rows  int
	Cols  int
	Cells [][]Cell
}

//createArea allocates the new area, all rows share one backing slice
func createArea(rows int, cols int) Area {
	area := Area{Rows: rows, Cols: cols, Cells: make([][]Cell, rows)}
	b := make([]Cell, rows*cols)
	for i := range area.Cells {
		start := cols * i
		area.Cells[i] = b[start : start+cols : start+cols]
	}
	return area
}

//contains reports whether row, col lies inside the area
func (a Area) contains(row int, col int) bool {
	return row >= 0 && col >= 0 && row < a.Rows && col < a.Cols
}

//walk calls cb for each cell of the area
func (a Area) walk(cb func(row int, col int, c Cell)) {
	for r := range a.Cells {
		for c := range a.Cells[r] {
			cb(r, c, a.Cells[r][c])
		}
	}
}

//reset kills all cells
func (a Area) reset() {
	for r := range a.Cells {
		for c := range a.Cells[r] {
			a.Cells[r][c] = Dead
		}
	}
}

//copyTo copies the cells into dst, dst must have the same dimensions
func (a Area) copyTo(dst Area) {
	for r := range a.Cells {
		copy(dst.Cells[r], a.Cells[r])
	}
}

//liveCells counts the live cells
func (a Area) liveCells() (n int) {
	a.walk(func(_ int, _ int, c Cell) {
		if c {
			n++
		}
	})
	return
}

//liveNeighbours counts live cells in the Moore neighbourhood of row, col
//neighbours outside the area are not counted, there is no wraparound
func (a Area) liveNeighbours(row int, col int) int {
	n := 0
	for i := -1; i < 2; i++ {
		for j := -1; j < 2; j++ {
			//skip my position
			if i == 0 && j == 0 {
				continue
			}
			nr := row + i
			nc := col + j
			if !a.contains(nr, nc) {
				continue
			}
			if a.Cells[nr][nc] {
				n++
			}
		}
	}
	return n
}

//nextState applies the B3/S23 rule to the cell at row, col
func (a Area) nextState(row int, col int) Cell {
	n := a.liveNeighbours(row, col)
	if a.Cells[row][col] {
		return n == 2 || n == 3
	}
	return n == 3
}

//nextGeneration writes the next generation of a into dst
//a is only read, so every cell sees the same pre-transition state
func (a Area) nextGeneration(dst Area) (liveCells int) {
	for r := range a.Cells {
		for c := range a.Cells[r] {
			s := a.nextState(r, c)
			dst.Cells[r][c] = s
			if s {
				liveCells++
			}
		}
	}
	return
}
