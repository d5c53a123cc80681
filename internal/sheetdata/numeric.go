package sheetdata

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Normalize converts a raw spreadsheet cell into a float64. It never fails:
// blanks, dash placeholders, the literal "null" and #-prefixed error markers
// (#N/A, #REF!, ...) all normalize to 0, as does anything that survives
// cleanup but still fails to parse. Equal inputs always yield equal outputs.
//
// Separator handling copes with cells written under either convention:
//
//	"1.234,56" and "1,234.56" both normalize to 1234.56
//
// When both separators appear, whichever occurs last is the decimal point.
// With a single separator and exactly three trailing digits the separator is
// read as a thousands group ("10,000" -> 10000), otherwise as a decimal
// point ("10,5" -> 10.5). A true three-decimal-digit value like "10,500"
// meaning 10.5 is therefore read as 10500; the ambiguity is inherent to the
// input format and resolved the same way everywhere.
func Normalize(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" || s == "-" || s == "null" || strings.HasPrefix(s, "#") {
		return 0
	}

	// Drop every whitespace-class rune, including NBSP, zero-width
	// characters and the BOM, which gviz exports sprinkle into numbers.
	s = strings.Map(func(r rune) rune {
		switch r {
		case '\u00A0', '\u200B', '\u200C', '\u200D', '\uFEFF':
			return -1
		}
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	// Canonical zero spellings early-out before the separator heuristic
	// can misread "0,0" as a thousands group.
	if s == "0" || s == "0.0" || s == "0,0" {
		return 0
	}

	// Strip currency symbols, percent signs and stray letters.
	s = strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)
	if s == "" {
		return 0
	}

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	switch {
	case hasComma && hasDot:
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasComma:
		s = resolveSingleSeparator(s, ",")
	case hasDot:
		s = resolveSingleSeparator(s, ".")
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// resolveSingleSeparator applies the thousands-vs-decimal heuristic when only
// one separator kind is present. Multiple occurrences are always grouping;
// one occurrence is grouping only when followed by exactly three digits.
func resolveSingleSeparator(s, sep string) string {
	parts := strings.Split(s, sep)
	switch {
	case len(parts) > 2:
		return strings.ReplaceAll(s, sep, "")
	case len(parts[1]) == 3:
		return strings.ReplaceAll(s, sep, "")
	case sep == ",":
		return strings.Replace(s, ",", ".", 1)
	default:
		return s
	}
}
