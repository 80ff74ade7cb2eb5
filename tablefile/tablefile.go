package tablefile

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/braille"
)

// Reader streams symbol table entries from plain text table files.
type Reader struct {
	scanner    *bufio.Scanner
	identifier string
	lineno     int
}

// Load parses table data and returns a complete symbol table: the built-in
// Spanish table with every entry of the file applied on top.
//
// Table files contain one entry per line, a character followed by its dots:
//
//	% Spanish variants
//	\message{es-variant}
//	ü  1-2-5-6
//	@  4
//	\num 3456
//	~  -
//
// Dots may be written with or without hyphens; a single '-' stands for the
// blank cell. The markers are named \num and \cap. Text after '%' is a
// comment.
func Load(name string, reader io.Reader) (*braille.SymbolTable, error) {
	r := NewReader(reader)
	return braille.LoadSymbolTable(name, r)
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Identifier returns the name given by a \message{...} line, if any has been
// read so far.
func (r *Reader) Identifier() string {
	return r.identifier
}

// Next returns the next entry as (symbol, cell).
// It returns io.EOF when exhausted.
func (r *Reader) Next() (braille.Symbol, braille.Cell, error) {
	for r.scanner.Scan() {
		r.lineno++
		line := r.scanner.Text()
		if strings.HasPrefix(line, "\\message{") && strings.HasSuffix(line, "}") {
			r.identifier = line[9 : len(line)-1]
			continue
		}
		if i := strings.IndexByte(line, '%'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return 0, 0, fmt.Errorf("line %d: expected <char> <dots>, got %q", r.lineno, line)
		}
		s, err := decodeSymbol(fields[0])
		if err != nil {
			return 0, 0, fmt.Errorf("line %d: %w", r.lineno, err)
		}
		c, err := decodeDots(fields[1])
		if err != nil {
			return 0, 0, fmt.Errorf("line %d: %w", r.lineno, err)
		}
		return s, c, nil
	}
	if err := r.scanner.Err(); err != nil {
		return 0, 0, err
	}
	return 0, 0, io.EOF
}

func decodeSymbol(field string) (braille.Symbol, error) {
	switch field {
	case `\num`:
		return braille.NumberPrefix, nil
	case `\cap`:
		return braille.CapitalPrefix, nil
	case `\space`:
		return ' ', nil
	case `\percent`:
		return '%', nil
	}
	ch, size := utf8.DecodeRuneInString(field)
	if ch == utf8.RuneError || size != len(field) {
		return 0, fmt.Errorf("symbol must be a single character, is %q", field)
	}
	return braille.Symbol(ch), nil
}

func decodeDots(field string) (braille.Cell, error) {
	if field == "-" {
		return braille.Blank, nil
	}
	dots := make([]int, 0, 6)
	wasHyphen := true
	for _, ch := range field {
		if ch == '-' {
			if wasHyphen {
				return 0, fmt.Errorf("misplaced hyphen in dots %q", field)
			}
			wasHyphen = true
			continue
		}
		if ch < '0' || ch > '9' {
			return 0, fmt.Errorf("invalid character %q in dots %q", ch, field)
		}
		dots = append(dots, int(ch-'0'))
		wasHyphen = false
	}
	if wasHyphen {
		return 0, fmt.Errorf("misplaced hyphen in dots %q", field)
	}
	return braille.CellFromDots(dots)
}

// Write writes every entry of a symbol table in the format read by Reader,
// characters first, then the markers.
func Write(w io.Writer, t *braille.SymbolTable) error {
	bw := bufio.NewWriter(w)
	if t.Identifier != "" {
		fmt.Fprintf(bw, "\\message{%s}\n", t.Identifier)
	}
	t.Range(func(s braille.Symbol, c braille.Cell) bool {
		fmt.Fprintf(bw, "%s %s\n", encodeSymbol(s), encodeDots(c))
		return true
	})
	return bw.Flush()
}

func encodeSymbol(s braille.Symbol) string {
	switch s {
	case ' ':
		return `\space`
	case '%':
		return `\percent`
	}
	return s.String()
}

func encodeDots(c braille.Cell) string {
	if c.IsBlank() {
		return "-"
	}
	var sb strings.Builder
	for i, d := range c.Dots() {
		if i > 0 {
			sb.WriteByte('-')
		}
		sb.WriteByte(byte('0' + d))
	}
	return sb.String()
}
