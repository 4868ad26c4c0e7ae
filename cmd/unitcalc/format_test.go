package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestLocaleNumbersFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		locale string
		in     string
		want   string
	}{
		{"en", "0", "0"},
		{"en", "999", "999"},
		{"en", "1000", "1,000"},
		{"en", "0.025", "0.025"},
		{"en", "-1234567.5", "-1,234,567.5"},
		{"en", "12345678901234567.89", "12,345,678,901,234,567.89"},
		{"de", "1500", "1.500"},
		{"de", "1234567.125", "1.234.567,125"},
	}

	for _, tt := range tests {
		t.Run(tt.locale+" "+tt.in, func(t *testing.T) {
			t.Parallel()
			tag, err := language.Parse(tt.locale)
			require.NoError(t, err)
			ln := newLocaleNumbers(message.NewPrinter(tag))
			assert.Equal(t, tt.want, ln.format(tt.in))
		})
	}
}

func TestRootHelpDescribesDivision(t *testing.T) {
	t.Parallel()

	long := newRootCommand().Long
	assert.Contains(t, long, "Every factor\nafter the first '/' is a divisor")
	assert.Contains(t, long, "JOULE·SECOND⁻¹·AMPERE⁻¹")
}
