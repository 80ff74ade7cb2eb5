package braille

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/braille/internal/runemap"
)

// Symbol is a transcodable character or one of the two structural markers.
// Characters are represented by their code point; markers use negative values
// and therefore never clash with a character.
type Symbol rune

const (
	// NumberPrefix announces that the following cells are digits.
	NumberPrefix Symbol = -1
	// CapitalPrefix announces that the following cell is an uppercase letter.
	CapitalPrefix Symbol = -2
)

// IsMarker is true for the structural markers NumberPrefix and CapitalPrefix.
func (s Symbol) IsMarker() bool {
	return s == NumberPrefix || s == CapitalPrefix
}

func (s Symbol) String() string {
	switch s {
	case NumberPrefix:
		return `\num`
	case CapitalPrefix:
		return `\cap`
	}
	if s < 0 {
		return "Symbol(" + strconv.Itoa(int(s)) + ")"
	}
	return string(rune(s))
}

// SymbolReader yields (symbol, cell) entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type SymbolReader interface {
	Next() (Symbol, Cell, error)
}

// SymbolTable maps characters and structural markers to cells.
//
// A table is complete after construction and never changes afterwards; it is
// safe for concurrent use.
type SymbolTable struct {
	chars         runemap.CellMap
	numberPrefix  Cell
	capitalPrefix Cell
	Identifier    string // Identifies the table
}

func newSymbolTable(name string) *SymbolTable {
	return &SymbolTable{Identifier: name}
}

// set inserts or overwrites a mapping. Only called during construction.
func (t *SymbolTable) set(s Symbol, c Cell) {
	switch s {
	case NumberPrefix:
		t.numberPrefix = c
	case CapitalPrefix:
		t.capitalPrefix = c
	default:
		t.chars.Set(rune(s), uint8(c))
	}
}

// Lookup returns the cell for a plain character. Structural markers are never
// found through Lookup, use Marker for them.
func (t *SymbolTable) Lookup(r rune) (Cell, bool) {
	m, ok := t.chars.Get(r)
	return Cell(m), ok
}

// Marker returns the cell of a structural marker. For any other symbol it
// returns the blank cell.
func (t *SymbolTable) Marker(s Symbol) Cell {
	switch s {
	case NumberPrefix:
		return t.numberPrefix
	case CapitalPrefix:
		return t.capitalPrefix
	}
	return Blank
}

// Cell returns the cell for any symbol, markers included.
func (t *SymbolTable) Cell(s Symbol) (Cell, bool) {
	if s.IsMarker() {
		return t.Marker(s), true
	}
	return t.Lookup(rune(s))
}

// Len returns the number of characters in the table (markers not counted).
func (t *SymbolTable) Len() int {
	return t.chars.Len()
}

// Range calls fn for every character in ascending code point order, followed
// by the two structural markers, until fn returns false.
func (t *SymbolTable) Range(fn func(s Symbol, c Cell) bool) {
	stopped := false
	t.chars.Range(func(r rune, m uint8) bool {
		if !fn(Symbol(r), Cell(m)) {
			stopped = true
			return false
		}
		return true
	})
	if stopped || !fn(NumberPrefix, t.numberPrefix) {
		return
	}
	fn(CapitalPrefix, t.capitalPrefix)
}

// LoadSymbolTable builds the standard table and applies entries from a
// streaming source on top of it. An entry for an existing symbol replaces the
// built-in mapping.
//
// File format parsing is intentionally outside the base package. Use adapters
// like package tablefile to parse concrete formats and feed this API.
func LoadSymbolTable(name string, reader SymbolReader) (*SymbolTable, error) {
	t := buildSymbolTable(name)
	if reader == nil {
		return t, nil
	}
	overrides := 0
	for {
		s, c, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if s < 0 && !s.IsMarker() {
			return nil, fmt.Errorf("invalid symbol %d in table %q", int(s), name)
		}
		t.set(s, c)
		overrides++
	}
	tracer().Infof("symbol table %q: %d override entries, %d characters", name, overrides, t.Len())
	return t, nil
}
