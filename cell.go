package braille

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Cell is a six-dot Braille cell. Bit i-1 is set if dot i is raised.
//
// Dots are numbered column-wise:
//
//	1 ● ● 4
//	2 ● ● 5
//	3 ● ● 6
//
// The mask form is canonical: two cells with the same dots are equal, no matter
// in which order the dots were given.
type Cell uint8

// Blank is the empty cell, used for spaces.
const Blank Cell = 0

const (
	minDot  = 1
	maxDot  = 6
	allDots = Cell(0x3F)
)

// patternBase is the first code point of the Unicode Braille Patterns block.
// The low six bits of a pattern code point use the same dot order as Cell.
const patternBase = 0x2800

// CellFromDots creates a cell from a list of dot numbers.
// Dots must be in 1…6, duplicates are rejected.
func CellFromDots(dots []int) (Cell, error) {
	var c Cell
	for _, d := range dots {
		if d < minDot || d > maxDot {
			return Blank, fmt.Errorf("dot out of range (1..6): %d", d)
		}
		if c.Has(d) {
			return Blank, fmt.Errorf("duplicate dot %d", d)
		}
		c |= 1 << (d - 1)
	}
	return c, nil
}

// MustCell creates a cell from literal dot numbers and panics on invalid input.
func MustCell(dots ...int) Cell {
	c, err := CellFromDots(dots)
	if err != nil {
		panic(err.Error())
	}
	return c
}

// Has is true if dot d is raised.
func (c Cell) Has(d int) bool {
	if d < minDot || d > maxDot {
		return false
	}
	return c&(1<<(d-1)) != 0
}

// With returns c with additional dots raised.
func (c Cell) With(dots ...int) Cell {
	for _, d := range dots {
		assert(d >= minDot && d <= maxDot, "dot out of range")
		c |= 1 << (d - 1)
	}
	return c
}

// IsBlank is true for the empty cell.
func (c Cell) IsBlank() bool {
	return c&allDots == 0
}

// Dots returns the raised dots in ascending order.
// The result for the blank cell is an empty, non-nil slice.
func (c Cell) Dots() []int {
	dots := make([]int, 0, maxDot)
	for d := minDot; d <= maxDot; d++ {
		if c.Has(d) {
			dots = append(dots, d)
		}
	}
	return dots
}

// Mirror swaps the left and right column of the cell (1↔4, 2↔5, 3↔6).
// Mirrored cells are needed when embossing from the back side of a sheet.
func (c Cell) Mirror() Cell {
	return (c&0x07)<<3 | (c&0x38)>>3
}

// Rune returns the Unicode Braille Pattern for the cell (U+2800…U+283F).
func (c Cell) Rune() rune {
	return rune(patternBase + int(c&allDots))
}

// CellFromRune converts a six-dot Unicode Braille Pattern to a cell.
func CellFromRune(r rune) (Cell, bool) {
	if r < patternBase || r > patternBase+rune(allDots) {
		return Blank, false
	}
	return Cell(r - patternBase), true
}

// String returns the dots as a digit string, e.g. "125", or "_" for the blank cell.
func (c Cell) String() string {
	if c.IsBlank() {
		return "_"
	}
	var sb strings.Builder
	for _, d := range c.Dots() {
		sb.WriteByte(byte('0' + d))
	}
	return sb.String()
}

// MarshalJSON writes a cell as its list of dots, e.g. [1,2,5].
func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Dots())
}

// UnmarshalJSON reads a list of dots and validates it.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var dots []int
	if err := json.Unmarshal(data, &dots); err != nil {
		return err
	}
	cell, err := CellFromDots(dots)
	if err != nil {
		return err
	}
	*c = cell
	return nil
}

// Mirror returns a mirrored copy of a line of cells: every cell is mirrored and
// the order of cells is reversed, as it appears when reading a sheet from behind.
func Mirror(cells []Cell) []Cell {
	m := make([]Cell, len(cells))
	for i, c := range cells {
		m[len(cells)-1-i] = c.Mirror()
	}
	return m
}

// Unicode renders cells as a string of Unicode Braille Patterns.
func Unicode(cells []Cell) string {
	var sb strings.Builder
	sb.Grow(len(cells) * 3)
	for _, c := range cells {
		sb.WriteRune(c.Rune())
	}
	return sb.String()
}

// DotLists converts cells to the list-of-dot-lists interchange form.
func DotLists(cells []Cell) [][]int {
	lists := make([][]int, len(cells))
	for i, c := range cells {
		lists[i] = c.Dots()
	}
	return lists
}

// CellsFromDotLists converts the list-of-dot-lists interchange form to cells.
// The error reports the index of the first invalid cell.
func CellsFromDotLists(lists [][]int) ([]Cell, error) {
	cells := make([]Cell, len(lists))
	for i, dots := range lists {
		c, err := CellFromDots(dots)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		cells[i] = c
	}
	return cells, nil
}
