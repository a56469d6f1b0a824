package a2svg

import (
	"bytes"
)

// Grid is the rectangular-ish array of runes a diagram is parsed from. Rows
// may have different lengths (the input need not be padded), so every read
// goes through At, which treats anything outside a row's actual extent as a
// blank cell rather than failing.
type Grid struct {
	rows [][]rune
}

// newGrid splits data into a Grid of runes, one row per input line,
// expanding tabs to tabWidth-aligned runs of spaces first so column
// arithmetic elsewhere never has to special-case '\t'.
func newGrid(data []byte, tabWidth int) *Grid {
	if tabWidth <= 0 {
		tabWidth = 8
	}
	g := &Grid{}
	for _, line := range bytes.Split(data, []byte("\n")) {
		g.rows = append(g.rows, expandTabs(bytes.Runes(line), tabWidth))
	}
	return g
}

// expandTabs replaces each tab with spaces out to the next tabWidth
// column boundary.
func expandTabs(line []rune, tabWidth int) []rune {
	out := make([]rune, 0, len(line))
	for _, r := range line {
		if r != '\t' {
			out = append(out, r)
			continue
		}
		n := tabWidth - len(out)%tabWidth
		for i := 0; i < n; i++ {
			out = append(out, ' ')
		}
	}
	return out
}

// Rows reports the number of rows in the grid.
func (g *Grid) Rows() int {
	return len(g.rows)
}

// Cols reports the length of the longest row.
func (g *Grid) Cols() int {
	max := 0
	for _, r := range g.rows {
		if len(r) > max {
			max = len(r)
		}
	}
	return max
}

// At returns the rune at (row, col), or a space if that position falls
// outside the grid or past the end of a short row. A safe OOB sentinel
// keeps every directional lookahead in the parsers branch-free.
func (g *Grid) At(row, col int) rune {
	if row < 0 || col < 0 || row >= len(g.rows) || col >= len(g.rows[row]) {
		return ' '
	}
	return g.rows[row][col]
}

// Set overwrites the rune at (row, col) if that position exists.
func (g *Grid) Set(row, col int, r rune) {
	if row < 0 || col < 0 || row >= len(g.rows) || col >= len(g.rows[row]) {
		return
	}
	g.rows[row][col] = r
}

// Blank clears (row, col) to a space.
func (g *Grid) Blank(row, col int) {
	g.Set(row, col, ' ')
}
