package braille

import "unicode"

// encoder is the state of the forward transducer. The only state is whether
// the previous characters opened a numeric run.
type encoder struct {
	inNumericRun bool
}

// step consumes one character and appends its cells to out.
func (e encoder) step(t *SymbolTable, r rune, out []Cell) (encoder, []Cell) {
	if v, ok := digitValue(r); ok {
		if !e.inNumericRun {
			out = append(out, t.numberPrefix)
			e.inNumericRun = true
		}
		if c, ok := t.Lookup(digitLetters[v]); ok {
			out = append(out, c)
		}
		return e, out
	}
	if e.inNumericRun && !isNumericSeparator(r) {
		e.inNumericRun = false
	}
	if r == ' ' {
		return e, append(out, Blank)
	}
	if unicode.IsUpper(r) {
		out = append(out, t.capitalPrefix)
		if c, ok := t.Lookup(unicode.ToLower(r)); ok {
			out = append(out, c)
		}
		return e, out
	}
	if c, ok := t.Lookup(r); ok {
		out = append(out, c)
	}
	return e, out
}

// encode runs the forward transducer over text, one code point at a time.
// Characters missing from the table are dropped.
func encode(t *SymbolTable, text string) []Cell {
	cells := make([]Cell, 0, len(text))
	var e encoder
	for _, r := range text {
		e, cells = e.step(t, r, cells)
	}
	return cells
}
