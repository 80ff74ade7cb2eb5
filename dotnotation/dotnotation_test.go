package dotnotation

import (
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/braille"
)

func TestReader(t *testing.T) {
	r := NewReader(strings.NewReader("3456|1 _\n1-2-5\t0|⠨⠓"))
	want := []braille.Cell{
		braille.MustCell(3, 4, 5, 6),
		braille.MustCell(1),
		braille.Blank,
		braille.MustCell(1, 2, 5),
		braille.Blank,
		braille.MustCell(4, 6),
		braille.MustCell(1, 2, 5),
	}
	for i, w := range want {
		c, err := r.Next()
		if err != nil {
			t.Fatalf("cell %d: Next failed: %v", i, err)
		}
		if c != w {
			t.Fatalf("cell %d: expected %v, got %v", i, w, c)
		}
	}
	if _, err := r.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		src  string
		want []braille.Cell
	}{
		{"", []braille.Cell{}},
		{"  | |", []braille.Cell{}},
		{"⠀", []braille.Cell{braille.Blank}},
		{"|46|1|", []braille.Cell{braille.MustCell(4, 6), braille.MustCell(1)}},
		{"21", []braille.Cell{braille.MustCell(1, 2)}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.src)
		if err != nil {
			t.Fatalf("%q: %v", tt.src, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%q should parse to %v, is %v", tt.src, tt.want, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1 7", "token 2"},
		{"12 1--2", "invalid dot notation"},
		{"-1", "invalid dot notation"},
		{"1-", "invalid dot notation"},
		{"abc", "invalid dot notation"},
		{"11", "duplicate"},
		{"⡁", "six-dot"},
	}
	for _, tt := range tests {
		_, err := Parse(tt.src)
		if err == nil {
			t.Errorf("%q: expected error", tt.src)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%q: error %q should mention %q", tt.src, err, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	cells := braille.TextToCells("Bus 1")
	tests := []struct {
		style Style
		want  string
	}{
		{Dots, "46|12|136|234|_|3456|1"},
		{Spaced, "46 12 136 234 _ 3456 1"},
		{Unicode, "⠨⠃⠥⠎⠀⠼⠁"},
	}
	for _, tt := range tests {
		got := Format(cells, tt.style)
		if got != tt.want {
			t.Errorf("style %d: expected %q, got %q", tt.style, tt.want, got)
		}
		back, err := Parse(got)
		if err != nil {
			t.Fatalf("style %d: cannot parse own output: %v", tt.style, err)
		}
		if !reflect.DeepEqual(back, cells) {
			t.Errorf("style %d: parsed %v, expected %v", tt.style, back, cells)
		}
	}
	if Format(nil, Dots) != "" {
		t.Error("no cells should format as empty string")
	}
}

func TestParseStyle(t *testing.T) {
	for name, want := range map[string]Style{"": Dots, "dots": Dots, "Unicode": Unicode, "spaced": Spaced} {
		got, err := ParseStyle(name)
		if err != nil || got != want {
			t.Errorf("%q: expected %d, got %d (%v)", name, want, got, err)
		}
	}
	if _, err := ParseStyle("morse"); err == nil {
		t.Error("expected error for unknown style")
	}
}
