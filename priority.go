package braille

import "unicode"

// Rank orders symbols competing for the same cell in the reverse table.
// A lower rank wins.
type Rank int

const (
	RankAccent      Rank = iota + 1 // á é í ó
	RankEnye                        // ñ
	RankUAcute                      // ú
	RankDiaeresis                   // ü
	RankPunctuation                 // punctuation and arithmetic signs
	RankLetter                      // everything else
)

// RankOf returns the collision rank of a symbol.
// Symbols without an explicit rank default to RankLetter.
func RankOf(s Symbol) Rank {
	if s < 0 {
		return RankLetter
	}
	r := rune(s)
	switch r {
	case 'á', 'é', 'í', 'ó':
		return RankAccent
	case 'ñ':
		return RankEnye
	case 'ú':
		return RankUAcute
	case 'ü':
		return RankDiaeresis
	}
	if unicode.IsPunct(r) || unicode.IsSymbol(r) {
		return RankPunctuation
	}
	return RankLetter
}

// outranks is true if a wins over b. Inside one rank the lower code point
// wins, which makes the order total.
func outranks(a, b Symbol) bool {
	ra, rb := RankOf(a), RankOf(b)
	if ra != rb {
		return ra < rb
	}
	return a < b
}
