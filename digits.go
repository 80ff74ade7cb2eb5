package braille

import "unicode"

// digitLetters holds the series one letter for each digit value:
// 1→a, 2→b, …, 9→i, 0→j.
var digitLetters = [10]rune{'j', 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i'}

// digitValue returns the value of a decimal digit in any script.
func digitValue(r rune) (int, bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	if r < 0x80 || !unicode.IsDigit(r) {
		return 0, false
	}
	// Every range of category Nd starts at a zero and holds runs of ten digits.
	for _, rg := range unicode.Nd.R16 {
		if r >= rune(rg.Lo) && r <= rune(rg.Hi) {
			return int(r-rune(rg.Lo)) % 10, true
		}
	}
	for _, rg := range unicode.Nd.R32 {
		if r >= rune(rg.Lo) && r <= rune(rg.Hi) {
			return int(r-rune(rg.Lo)) % 10, true
		}
	}
	return 0, false
}

// letterDigit is the inverse of digitLetters.
func letterDigit(r rune) (int, bool) {
	if r < 'a' || r > 'j' {
		return 0, false
	}
	if r == 'j' {
		return 0, true
	}
	return int(r-'a') + 1, true
}

// isNumericSeparator reports whether r may appear inside a number (decimal
// point and thousands separator) without ending the numeric run.
func isNumericSeparator(r rune) bool {
	return r == '.' || r == ','
}
