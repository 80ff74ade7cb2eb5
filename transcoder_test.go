package braille

import (
	"reflect"
	"sync"
	"testing"
	"unicode/utf8"
)

var (
	numPrefix = MustCell(3, 4, 5, 6)
	capPrefix = MustCell(4, 6)
)

func TestTextToCells(t *testing.T) {
	tests := []struct {
		text string
		want []Cell
	}{
		{"hola", []Cell{MustCell(1, 2, 5), MustCell(1, 3, 5), MustCell(1, 2, 3), MustCell(1)}},
		{"12", []Cell{numPrefix, MustCell(1), MustCell(1, 2)}},
		{"1 2", []Cell{numPrefix, MustCell(1), Blank, numPrefix, MustCell(1, 2)}},
		{"A", []Cell{capPrefix, MustCell(1)}},
		{"Bus 15", []Cell{capPrefix, MustCell(1, 2), MustCell(1, 3, 6), MustCell(2, 3, 4),
			Blank, numPrefix, MustCell(1), MustCell(1, 5)}},
		{"Café", []Cell{capPrefix, MustCell(1, 4), MustCell(1), MustCell(1, 2, 4), MustCell(2, 3, 4, 6)}},
		{"3,5", []Cell{numPrefix, MustCell(1, 4), MustCell(2), MustCell(1, 5)}},
		{"0", []Cell{numPrefix, MustCell(2, 4, 5)}},
		{"a\nb", []Cell{MustCell(1), MustCell(1, 2)}}, // newline has no cell
		{"€", []Cell{}},
	}
	for _, tt := range tests {
		if got := TextToCells(tt.text); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%q should be %v, is %v", tt.text, tt.want, got)
		}
	}
}

func TestNumericRunHasOnePrefix(t *testing.T) {
	cells := TextToCells("123")
	if len(cells) != 4 || cells[0] != numPrefix {
		t.Fatalf("expected prefix + 3 digits, got %v", cells)
	}
	count := 0
	for _, c := range cells {
		if c == numPrefix {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected one number prefix, got %d", count)
	}
}

func TestEmptyInput(t *testing.T) {
	cells := TextToCells("")
	if cells == nil || len(cells) != 0 {
		t.Fatalf("empty text should give an empty, non-nil list, got %v", cells)
	}
	if s := CellsToText(nil); s != "" {
		t.Fatalf("no cells should give empty text, got %q", s)
	}
}

func TestUppercaseWithoutLowercaseCell(t *testing.T) {
	// Σ has no cell; the capital prefix is emitted nevertheless.
	cells := TextToCells("Σ")
	if !reflect.DeepEqual(cells, []Cell{capPrefix}) {
		t.Fatalf("expected lone capital prefix, got %v", cells)
	}
}

func TestCellsToText(t *testing.T) {
	tests := []struct {
		cells []Cell
		want  string
	}{
		{[]Cell{MustCell(1, 2, 5), MustCell(1, 3, 5), MustCell(1, 2, 3), MustCell(1)}, "hola"},
		{[]Cell{numPrefix, MustCell(1)}, "1"},
		{[]Cell{numPrefix, MustCell(2, 4, 5)}, "0"},
		{[]Cell{capPrefix, MustCell(1)}, "A"},
		{[]Cell{capPrefix, MustCell(1, 3, 6, 5)}, "Z"},
		{[]Cell{numPrefix, MustCell(1), Blank, numPrefix, MustCell(1, 2)}, "1 2"},
		{[]Cell{numPrefix, MustCell(1), Blank, MustCell(1, 2)}, "1 b"},
		{[]Cell{MustCell(1, 2, 3, 4, 5, 6)}, "?"},
		{[]Cell{MustCell(1, 2, 4, 5, 6)}, "ñ"},
		{[]Cell{MustCell(1), Blank, MustCell(1, 5)}, "a e"},
	}
	for _, tt := range tests {
		if got := CellsToText(tt.cells); got != tt.want {
			t.Errorf("%v should read %q, reads %q", tt.cells, tt.want, got)
		}
	}
}

func TestPendingCapitalSurvivesSpace(t *testing.T) {
	got := CellsToText([]Cell{capPrefix, Blank, MustCell(1)})
	if got != " A" {
		t.Fatalf("pending capital should apply to the next letter, got %q", got)
	}
}

func TestCapitalIsNotConsumedByDigit(t *testing.T) {
	got := CellsToText([]Cell{capPrefix, numPrefix, MustCell(1), Blank, MustCell(1, 2)})
	if got != "1 B" {
		t.Fatalf("expected \"1 B\", got %q", got)
	}
}

func TestRoundTrip(t *testing.T) {
	texts := []string{
		"hola",
		"Hola 123 Mundo",
		"abcdefghijklmnopqrstuvwxyz",
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		"0123456789",
		"Café con leche",
		"áéíóúüñ ÁÉÍÓÚÜÑ",
		"bus 15",
		"HOLA",
		"Qué? hola, mundo: sí; no. (bien) \"ok\" - x/y = z",
		"1.5 y 3,14",
		"Precio: 3,50 euros.",
		"(1)",
	}
	for _, text := range texts {
		if got := CellsToText(TextToCells(text)); got != text {
			t.Errorf("round-trip of %q gives %q", text, got)
		}
	}
}

func TestRoundTripCollisions(t *testing.T) {
	tests := []struct {
		text, want string
	}{
		{"¡Hola!", "!Hola!"},
		{"¿sí?", "?sí?"},
		{"a+b", "a!b"},
		{"a*b", "a\"b"},
	}
	for _, tt := range tests {
		if got := CellsToText(TextToCells(tt.text)); got != tt.want {
			t.Errorf("%q should read back as %q, reads %q", tt.text, tt.want, got)
		}
	}
}

func TestLetterAfterNumberReadsAsDigit(t *testing.T) {
	// No letter sign exists, so a–j right after a number continue it.
	for _, text := range []string{"1a", "1A"} {
		if got := CellsToText(TextToCells(text)); got != "11" {
			t.Fatalf("%q: expected \"11\", got %q", text, got)
		}
	}
}

func TestLetterAfterSeparatorReadsAsDigit(t *testing.T) {
	// '.' and ',' keep a number going, so a-j right after them read as digits.
	tests := []struct {
		text, want string
	}{
		{"1,j", "1,0"},
		{"2.a", "2.1"},
		{"1,k", "1,k"},
	}
	for _, tt := range tests {
		if got := CellsToText(TextToCells(tt.text)); got != tt.want {
			t.Errorf("%q should read back as %q, reads %q", tt.text, tt.want, got)
		}
	}
	cells := []Cell{numPrefix, MustCell(1), MustCell(3), MustCell(1, 5)}
	if got := CellsToText(cells); got != "1.5" {
		t.Fatalf("expected \"1.5\", got %q", got)
	}
}

func TestCellsAreCanonical(t *testing.T) {
	for _, c := range TextToCells("¡Hola, Ñandú! 2024 (año)") {
		dots := c.Dots()
		for i, d := range dots {
			if d < 1 || d > 6 {
				t.Fatalf("dot out of range in %v", dots)
			}
			if i > 0 && dots[i-1] >= d {
				t.Fatalf("dots not strictly ascending in %v", dots)
			}
		}
	}
}

func TestEveryCellDecodes(t *testing.T) {
	cells := make([]Cell, 0, 64)
	for i := 0; i < 64; i++ {
		cells = append(cells, Cell(i))
		_ = CellsToText([]Cell{Cell(i)})
	}
	text := CellsToText(cells)
	if n := utf8.RuneCountInString(text); n > len(cells) {
		t.Fatalf("output has more characters (%d) than cells (%d)", n, len(cells))
	}
}

func TestNormalizationAndScripts(t *testing.T) {
	if got, want := TextToCells("é"), TextToCells("é"); !reflect.DeepEqual(got, want) {
		t.Errorf("decomposed é should equal composed é: %v vs %v", got, want)
	}
	if got, want := TextToCells("٣٤"), TextToCells("34"); !reflect.DeepEqual(got, want) {
		t.Errorf("Arabic-Indic digits should transcribe like ASCII digits: %v vs %v", got, want)
	}
	if got, want := TextToCells("１"), TextToCells("1"); !reflect.DeepEqual(got, want) {
		t.Errorf("fullwidth digit should transcribe like ASCII digit: %v vs %v", got, want)
	}
}

func TestDecoderStates(t *testing.T) {
	table := BuildSymbolTable()
	rt := BuildReverseTable(table)
	tests := []struct {
		name   string
		from   decoder
		cell   Cell
		want   decoder
		out    rune
		output bool
	}{
		{"number prefix", 0, numPrefix, numericMode, 0, false},
		{"capital prefix", 0, capPrefix, capitalNext, 0, false},
		{"both prefixes", numericMode, capPrefix, numericMode | capitalNext, 0, false},
		{"digit", numericMode, MustCell(1, 2), numericMode, '2', true},
		{"separator keeps numeric", numericMode, MustCell(3), numericMode, '.', true},
		{"letter ends numeric", numericMode, MustCell(1, 3), 0, 'k', true},
		{"space ends numeric", numericMode | capitalNext, Blank, capitalNext, ' ', true},
		{"capital letter", capitalNext, MustCell(1, 3), 0, 'K', true},
		{"capital waits for letter", capitalNext, MustCell(2), capitalNext, ',', true},
		{"digit under capital", numericMode | capitalNext, MustCell(1), numericMode | capitalNext, '1', true},
		{"unknown cell", numericMode, MustCell(1, 2, 3, 4, 5, 6), 0, Placeholder, true},
	}
	for _, tt := range tests {
		got, r, ok := tt.from.step(table, rt, tt.cell)
		if got != tt.want || r != tt.out || ok != tt.output {
			t.Errorf("%s: got (%b, %q, %v), want (%b, %q, %v)", tt.name, got, r, ok, tt.want, tt.out, tt.output)
		}
	}
}

func TestEncoderStates(t *testing.T) {
	table := BuildSymbolTable()
	tests := []struct {
		name string
		from encoder
		r    rune
		want encoder
		out  []Cell
	}{
		{"digit opens run", encoder{}, '7', encoder{inNumericRun: true}, []Cell{numPrefix, MustCell(1, 2, 4, 5)}},
		{"digit continues run", encoder{inNumericRun: true}, '7', encoder{inNumericRun: true}, []Cell{MustCell(1, 2, 4, 5)}},
		{"separator keeps run", encoder{inNumericRun: true}, ',', encoder{inNumericRun: true}, []Cell{MustCell(2)}},
		{"space ends run", encoder{inNumericRun: true}, ' ', encoder{}, []Cell{Blank}},
		{"letter ends run", encoder{inNumericRun: true}, 'x', encoder{}, []Cell{MustCell(1, 3, 4, 6)}},
		{"unknown ends run", encoder{inNumericRun: true}, '#', encoder{}, nil},
	}
	for _, tt := range tests {
		got, out := tt.from.step(table, tt.r, nil)
		if got != tt.want || !reflect.DeepEqual(out, tt.out) {
			t.Errorf("%s: got (%v, %v), want (%v, %v)", tt.name, got, out, tt.want, tt.out)
		}
	}
}

func TestConcurrentUse(t *testing.T) {
	tc := Default()
	want := tc.TextToCells("Señalética 2025")
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got := tc.TextToCells("Señalética 2025")
				if !reflect.DeepEqual(got, want) {
					t.Errorf("concurrent transcription differs")
					return
				}
				if tc.CellsToText(got) != "Señalética 2025" {
					t.Errorf("concurrent reading differs")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestTextToUnicode(t *testing.T) {
	if got := Default().TextToUnicode("Hola 1"); got != "⠨⠓⠕⠇⠁⠀⠼⠁" {
		t.Fatalf("unexpected unicode braille %q", got)
	}
}
