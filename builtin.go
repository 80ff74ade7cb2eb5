package braille

// seriesOne is the primitive base: the letters a–j, written with the upper
// dots 1, 2, 4 and 5 only. Every other letter of the Latin alphabet is derived
// from it.
var seriesOne = [10]struct {
	letter rune
	dots   []int
}{
	{'a', []int{1}},
	{'b', []int{1, 2}},
	{'c', []int{1, 4}},
	{'d', []int{1, 4, 5}},
	{'e', []int{1, 5}},
	{'f', []int{1, 2, 4}},
	{'g', []int{1, 2, 4, 5}},
	{'h', []int{1, 2, 5}},
	{'i', []int{2, 4}},
	{'j', []int{2, 4, 5}},
}

// seriesTwo is series one plus dot 3, by ordinal position (a→k, …, j→t).
var seriesTwo = [10]rune{'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't'}

// seriesThree is series one plus dots 3 and 6. 'w' is not part of it (it was
// missing from the French alphabet Braille was designed for), so the
// correspondence is explicit.
var seriesThree = []struct {
	letter, base rune
}{
	{'u', 'a'}, {'v', 'b'}, {'x', 'c'}, {'y', 'd'}, {'z', 'e'},
}

// specialLetters do not follow the series rules.
var specialLetters = []struct {
	letter rune
	dots   []int
}{
	{'w', []int{2, 4, 5, 6}},
	{'ñ', []int{1, 2, 4, 5, 6}},
	{'ü', []int{1, 2, 5, 6}},
	{'á', []int{1, 2, 3, 5, 6}},
	{'é', []int{2, 3, 4, 6}},
	{'í', []int{3, 4}},
	{'ó', []int{3, 4, 6}},
	{'ú', []int{2, 3, 4, 5, 6}},
}

// punctuation maps punctuation and arithmetic signs. Inverted Spanish marks
// share the cell of their closing counterpart.
var punctuation = []struct {
	mark rune
	dots []int
}{
	{'.', []int{3}},
	{',', []int{2}},
	{':', []int{2, 5}},
	{';', []int{2, 3}},
	{'"', []int{2, 3, 6}},
	{'?', []int{2, 6}},
	{'¿', []int{2, 6}},
	{'!', []int{2, 3, 5}},
	{'¡', []int{2, 3, 5}},
	{'-', []int{3, 6}},
	{'(', []int{1, 2, 6}},
	{')', []int{3, 4, 5}},
	{'+', []int{2, 3, 5}},
	{'*', []int{2, 3, 6}},
	{'/', []int{2, 5, 6}},
	{'=', []int{2, 3, 5, 6}},
}

var (
	numberPrefixCell  = MustCell(3, 4, 5, 6)
	capitalPrefixCell = MustCell(4, 6)
)

// BuildSymbolTable creates the standard Spanish symbol table.
// Every call yields an equal table.
func BuildSymbolTable() *SymbolTable {
	return buildSymbolTable("es")
}

// buildSymbolTable runs the construction steps in fixed order. A later step
// overwrites an earlier one for the same symbol; the steps are disjoint for
// the standard table.
func buildSymbolTable(name string) *SymbolTable {
	t := newSymbolTable(name)
	base := make(map[rune]Cell, len(seriesOne))
	for _, l := range seriesOne {
		c := MustCell(l.dots...)
		assert(c&^MustCell(1, 2, 4, 5) == 0, "series one uses upper dots only")
		base[l.letter] = c
		t.set(Symbol(l.letter), c)
	}
	for i, letter := range seriesTwo {
		t.set(Symbol(letter), base[seriesOne[i].letter].With(3))
	}
	for _, l := range seriesThree {
		t.set(Symbol(l.letter), base[l.base].With(3, 6))
	}
	for _, l := range specialLetters {
		t.set(Symbol(l.letter), MustCell(l.dots...))
	}
	for _, p := range punctuation {
		t.set(Symbol(p.mark), MustCell(p.dots...))
	}
	t.set(' ', Blank)
	t.set(NumberPrefix, numberPrefixCell)
	t.set(CapitalPrefix, capitalPrefixCell)
	tracer().Debugf("symbol table %q: %d characters", name, t.Len())
	return t
}
