package braille

import (
	"strings"
	"unicode"
)

// Placeholder is the character produced for cells without a reading.
const Placeholder = '?'

// decoder is the state of the reverse transducer, a combination of numeric
// mode and a pending capital. All four combinations are reachable.
type decoder uint8

const (
	numericMode decoder = 1 << iota
	capitalNext
)

func (d decoder) numeric() bool { return d&numericMode != 0 }
func (d decoder) capital() bool { return d&capitalNext != 0 }

// step consumes one cell. It returns the new state and, if the cell produces
// output, the character to append.
func (d decoder) step(t *SymbolTable, rt *ReverseTable, c Cell) (decoder, rune, bool) {
	switch {
	case c == t.numberPrefix:
		return d | numericMode, 0, false
	case c == t.capitalPrefix:
		return d | capitalNext, 0, false
	case c.IsBlank():
		// a pending capital survives the space
		return d &^ numericMode, ' ', true
	}
	r := Placeholder
	if s, ok := rt.Lookup(c); ok {
		r = rune(s)
	}
	if d.numeric() {
		if v, ok := letterDigit(r); ok {
			r = rune('0' + v)
		} else if !isNumericSeparator(r) {
			d &^= numericMode
		}
	}
	if d.capital() && unicode.IsLetter(r) {
		r = unicode.ToUpper(r)
		d &^= capitalNext
	}
	return d, r, true
}

// decode runs the reverse transducer over cells.
func decode(t *SymbolTable, rt *ReverseTable, cells []Cell) string {
	var sb strings.Builder
	sb.Grow(len(cells))
	var d decoder
	for _, c := range cells {
		var r rune
		var ok bool
		if d, r, ok = d.step(t, rt, c); ok {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
