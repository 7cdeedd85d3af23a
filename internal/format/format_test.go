package format_test

import (
	"testing"

	"github.com/sinclairtarget/git-impact/internal/format"
)

func TestAbbrev(t *testing.T) {
	tests := []struct {
		s        string
		max      int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"much too long to fit", 10, "much too …"},
	}

	for _, test := range tests {
		abbreviated := format.Abbrev(test.s, test.max)
		if abbreviated != test.expected {
			t.Errorf(
				"expected \"%s\" for Abbrev(%q, %d), but got: \"%s\"",
				test.expected,
				test.s,
				test.max,
				abbreviated,
			)
		}
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		n        int
		expected string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}

	for _, test := range tests {
		formatted := format.Number(test.n)
		if formatted != test.expected {
			t.Errorf(
				"expected \"%s\" for %d, but got: \"%s\"",
				test.expected,
				test.n,
				formatted,
			)
		}
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0, "0.0"},
		{2.4, "2.4"},
		{1234.56, "1234.6"},
	}

	for _, test := range tests {
		formatted := format.Score(test.value)
		if formatted != test.expected {
			t.Errorf(
				"expected \"%s\" for %f, but got: \"%s\"",
				test.expected,
				test.value,
				formatted,
			)
		}
	}
}
