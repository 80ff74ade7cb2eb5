package braille

import (
	"sync"

	"golang.org/x/text/unicode/norm"
)

// Transcoder converts between text and cells using one pair of tables.
// It holds no mutable state and may be used from multiple goroutines.
type Transcoder struct {
	symbols *SymbolTable
	reverse *ReverseTable
}

// New creates a transcoder for a symbol table. The reverse table is built
// once, here. A nil table selects the standard Spanish table.
func New(symbols *SymbolTable) *Transcoder {
	if symbols == nil {
		symbols = BuildSymbolTable()
	}
	return &Transcoder{
		symbols: symbols,
		reverse: BuildReverseTable(symbols),
	}
}

var defaultTranscoder = sync.OnceValue(func() *Transcoder {
	return New(BuildSymbolTable())
})

// Default returns the shared transcoder for the standard Spanish table.
// It is created on first use.
func Default() *Transcoder {
	return defaultTranscoder()
}

// Symbols returns the symbol table of the transcoder.
func (tc *Transcoder) Symbols() *SymbolTable { return tc.symbols }

// Reverse returns the reverse table of the transcoder.
func (tc *Transcoder) Reverse() *ReverseTable { return tc.reverse }

// TextToCells transcribes text to Braille cells.
//
// Input is normalized to NFC first, so decomposed accents are recognized.
// Digits are preceded by a number prefix once per run, uppercase letters by a
// capital prefix. Characters without a cell are silently dropped.
// The result is never nil.
//
//	"Bus 15" => 46 12 136 234 _ 3456 1 15
func (tc *Transcoder) TextToCells(text string) []Cell {
	return encode(tc.symbols, norm.NFC.String(text))
}

// CellsToText reads cells back to text.
//
// Ambiguous cells read as their highest-ranking symbol. Cells without any
// reading produce Placeholder.
func (tc *Transcoder) CellsToText(cells []Cell) string {
	return decode(tc.symbols, tc.reverse, cells)
}

// TextToUnicode transcribes text to a string of Unicode Braille Patterns.
func (tc *Transcoder) TextToUnicode(text string) string {
	return Unicode(tc.TextToCells(text))
}

// TextToCells transcribes text with the default transcoder.
func TextToCells(text string) []Cell {
	return Default().TextToCells(text)
}

// CellsToText reads cells with the default transcoder.
func CellsToText(cells []Cell) string {
	return Default().CellsToText(cells)
}
