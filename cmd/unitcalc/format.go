package main

import (
	"strings"

	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// referenceNumber is formatted once per locale to read back its symbols.
// Every group and the fraction are distinct digit runs.
const referenceNumber = 1234567.5

// localeNumbers renders exact decimal strings with the digits and
// separators of a locale. x/text only formats machine integers and floats,
// so the symbols are taken from its rendering of referenceNumber and the
// digits of the decimal string are laid out here.
type localeNumbers struct {
	digits  [10]string
	group   string
	decimal string
	minus   string
}

func newLocaleNumbers(p *message.Printer) localeNumbers {
	var ln localeNumbers
	for i := range ln.digits {
		ln.digits[i] = p.Sprint(number.Decimal(i))
	}
	ln.group, ln.decimal = ",", "."

	// "1<group>234<group>567<decimal>5" in locale glyphs.
	ref := p.Sprint(number.Decimal(referenceNumber, number.MinFractionDigits(1)))
	head := ln.glyphs("234")
	tail := ln.glyphs("567")
	if rest, ok := strings.CutPrefix(ref, ln.digits[1]); ok {
		if i := strings.Index(rest, head); i >= 0 {
			ln.group = rest[:i]
			rest = rest[i+len(head):]
			if j := strings.Index(rest, tail); j >= 0 {
				ln.decimal = strings.TrimSuffix(rest[j+len(tail):], ln.digits[5])
			}
		}
	}

	ln.minus = strings.TrimSuffix(p.Sprint(number.Decimal(-1)), ln.digits[1])
	if ln.minus == "" {
		ln.minus = "-"
	}
	return ln
}

func (ln localeNumbers) glyphs(ascii string) string {
	var b strings.Builder
	for _, r := range ascii {
		b.WriteString(ln.digits[r-'0'])
	}
	return b.String()
}

// format renders s, a plain decimal such as "-1234.5", grouping the
// integer digits in threes.
func (ln localeNumbers) format(s string) string {
	var b strings.Builder
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		b.WriteString(ln.minus)
		s = rest
	}
	whole, frac, _ := strings.Cut(s, ".")
	for i := range len(whole) {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(ln.group)
		}
		b.WriteString(ln.digits[whole[i]-'0'])
	}
	if frac != "" {
		b.WriteString(ln.decimal)
		b.WriteString(ln.glyphs(frac))
	}
	return b.String()
}
