package models

import "github.com/ukaji3/formulagraph-go/pkg/formulagraph/address"

// Grid is a row-major, 0-indexed block of cells. A nil cell or a short row
// means the cell is absent.
type Grid [][]*Cell

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the width of the widest row.
func (g Grid) Cols() int {
	n := 0
	for _, row := range g {
		n = max(n, len(row))
	}
	return n
}

// At returns the cell at a 0-indexed position, or nil when absent.
func (g Grid) At(row, col int) *Cell {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return nil
	}
	return g[row][col]
}

// BuildGrid places values at their A1 addresses. The grid is sized to the
// furthest address given.
func BuildGrid(values map[string]any) (Grid, error) {
	coords := make(map[address.Coord]any, len(values))
	rows, cols := 0, 0
	for addr, v := range values {
		c, err := address.ParseA1(addr)
		if err != nil {
			return nil, err
		}
		coords[c] = v
		rows = max(rows, c.Row)
		cols = max(cols, c.Col)
	}

	g := make(Grid, rows)
	for r := range g {
		g[r] = make([]*Cell, cols)
	}
	for c, v := range coords {
		g[c.Row-1][c.Col-1] = &Cell{Value: v}
	}
	return g, nil
}
