// Package models defines data structures for sheet evaluation.
package models

import (
	"github.com/tiendc/go-deepcopy"
	"github.com/xuri/excelize/v2"
)

// Grid holds raw cell text in row-major order.
// Rows may have different lengths.
type Grid [][]string

// Cell returns the raw text at the zero-based coordinate.
// ok is false when the coordinate lies outside the grid.
func (g Grid) Cell(row, col int) (text string, ok bool) {
	if row < 0 || row >= len(g) {
		return "", false
	}
	if col < 0 || col >= len(g[row]) {
		return "", false
	}
	return g[row][col], true
}

// Width returns the length of the longest row.
func (g Grid) Width() int {
	width := 0
	for _, row := range g {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// Clone returns a deep copy of the grid so that an evaluation pass
// never observes changes made by the caller.
func (g Grid) Clone() (Grid, error) {
	var out Grid
	if err := deepcopy.Copy(&out, g); err != nil {
		return nil, err
	}
	return out, nil
}

// CellName converts a zero-based coordinate to its sheet name (e.g. 0,1 -> "B1").
func CellName(row, col int) string {
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return ""
	}
	return name
}
