/*
Package dotnotation reads and writes Braille cells as text.

Cells are written as lists of raised dots and separated by whitespace or '|':

	3456|1|_|46|125

'_' or '0' stand for the blank cell, dots may be separated by hyphens
("1-2-5"). Characters of the Unicode Braille Patterns block are accepted as
well, each one a cell of its own:

	⠼⠁⠀⠨⠓
*/
package dotnotation

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/braille"
)

// Reader streams cells from dot notation.
type Reader struct {
	scanner *bufio.Scanner
	pending []braille.Cell
	token   int
}

func NewReader(reader io.Reader) *Reader {
	s := bufio.NewScanner(reader)
	s.Split(scanTokens)
	return &Reader{scanner: s}
}

// Next returns the next cell.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (braille.Cell, error) {
	for len(r.pending) == 0 {
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return braille.Blank, err
			}
			return braille.Blank, io.EOF
		}
		r.token++
		cells, err := decodeToken(r.scanner.Text())
		if err != nil {
			return braille.Blank, fmt.Errorf("token %d: %w", r.token, err)
		}
		r.pending = cells
	}
	c := r.pending[0]
	r.pending = r.pending[1:]
	return c, nil
}

// ReadAll reads cells until io.EOF. The result is never nil.
func ReadAll(reader io.Reader) ([]braille.Cell, error) {
	r := NewReader(reader)
	cells := make([]braille.Cell, 0, 32)
	for {
		c, err := r.Next()
		if err == io.EOF {
			return cells, nil
		}
		if err != nil {
			return nil, err
		}
		cells = append(cells, c)
	}
}

// Parse reads cells from a string.
func Parse(s string) ([]braille.Cell, error) {
	return ReadAll(strings.NewReader(s))
}

func isSeparator(r rune) bool {
	return r == '|' || unicode.IsSpace(r)
}

// scanTokens is a split function for bufio.Scanner, like bufio.ScanWords but
// additionally splitting at '|'.
func scanTokens(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) {
		r, width := utf8.DecodeRune(data[start:])
		if !isSeparator(r) {
			break
		}
		start += width
	}
	for i := start; i < len(data); {
		r, width := utf8.DecodeRune(data[i:])
		if isSeparator(r) {
			return i + width, data[start:i], nil
		}
		i += width
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

func decodeToken(tok string) ([]braille.Cell, error) {
	if tok == "_" || tok == "0" {
		return []braille.Cell{braille.Blank}, nil
	}
	if r, _ := utf8.DecodeRuneInString(tok); r >= 0x2800 && r <= 0x28FF {
		cells := make([]braille.Cell, 0, len(tok)/3)
		for _, r := range tok {
			c, ok := braille.CellFromRune(r)
			if !ok {
				return nil, fmt.Errorf("not a six-dot braille pattern: %U", r)
			}
			cells = append(cells, c)
		}
		return cells, nil
	}
	dots := make([]int, 0, 6)
	wasHyphen := true
	for _, ch := range tok {
		switch {
		case ch == '-' && !wasHyphen:
			wasHyphen = true
		case ch >= '1' && ch <= '6':
			dots = append(dots, int(ch-'0'))
			wasHyphen = false
		default:
			return nil, fmt.Errorf("invalid dot notation %q", tok)
		}
	}
	if wasHyphen {
		return nil, fmt.Errorf("invalid dot notation %q", tok)
	}
	c, err := braille.CellFromDots(dots)
	if err != nil {
		return nil, err
	}
	return []braille.Cell{c}, nil
}

// Style selects the output of Format.
type Style int

const (
	Dots    Style = iota // 3456|1|_
	Unicode              // ⠼⠁⠀
	Spaced               // 3456 1 _
)

// Format writes cells as text. Blank cells are written as '_' in the dot
// styles and as U+2800 in Unicode style.
func Format(cells []braille.Cell, style Style) string {
	if style == Unicode {
		return braille.Unicode(cells)
	}
	sep := "|"
	if style == Spaced {
		sep = " "
	}
	var sb strings.Builder
	for i, c := range cells {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}

// ParseStyle resolves a style name: "dots", "unicode" or "spaced".
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(name) {
	case "dots", "":
		return Dots, nil
	case "unicode":
		return Unicode, nil
	case "spaced":
		return Spaced, nil
	}
	return Dots, fmt.Errorf("unknown dot notation style %q", name)
}
