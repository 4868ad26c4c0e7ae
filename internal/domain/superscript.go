package domain

import (
	"strconv"
	"strings"
)

// superscriptDigits maps '0'..'9' to their Unicode superscript glyphs.
var superscriptDigits = [10]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}

const superscriptMinus = '⁻'

// Superscript renders an exponent with Unicode superscript glyphs, most
// significant digit first. Negative values get a leading superscript minus
// and an exponent of 1 is rendered explicitly.
//
//	Superscript(-12) == "⁻¹²"
//	Superscript(1)   == "¹"
func Superscript(n int) string {
	digits := strconv.Itoa(n)

	var b strings.Builder
	b.Grow(len(digits) * 3)
	for _, c := range digits {
		if c == '-' {
			b.WriteRune(superscriptMinus)
			continue
		}
		b.WriteRune(superscriptDigits[c-'0'])
	}
	return b.String()
}
