package quantity

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Parse converts a numeric token into a value. Recognized forms, in order:
// a mixed number ("1 1/2"), a bare fraction ("3/4"), a fraction glyph ("½"),
// and a plain decimal ("2.5"). A whole number followed by a glyph ("1½" or
// "1 ½") is also accepted. Zero denominators and non-finite results fail.
func Parse(token string) (float64, bool) {
	fields := strings.Fields(token)
	var (
		value float64
		ok    bool
	)
	switch len(fields) {
	case 1:
		value, ok = parseSingle(fields[0])
	case 2:
		value, ok = parseMixed(fields[0], fields[1])
	default:
		return 0, false
	}
	if !ok || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

func parseMixed(whole, part string) (float64, bool) {
	w, err := strconv.ParseFloat(whole, 64)
	if err != nil {
		return 0, false
	}
	if strings.Contains(part, "/") {
		f, ok := parseFraction(part)
		if !ok {
			return 0, false
		}
		return w + f, true
	}
	if g, ok := singleGlyph(part); ok {
		return w + g, true
	}
	return 0, false
}

func parseSingle(field string) (float64, bool) {
	if strings.Contains(field, "/") {
		return parseFraction(field)
	}
	if g, ok := singleGlyph(field); ok {
		return g, true
	}
	if v, ok := trailingGlyph(field); ok {
		return v, true
	}
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseFraction(field string) (float64, bool) {
	num, den, found := strings.Cut(field, "/")
	if !found || strings.Contains(den, "/") {
		return 0, false
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0, false
	}
	return n / d, true
}

func singleGlyph(field string) (float64, bool) {
	r, size := utf8.DecodeRuneInString(field)
	if size != len(field) {
		return 0, false
	}
	return GlyphValue(r)
}

// trailingGlyph handles "1½": digits immediately followed by one glyph.
func trailingGlyph(field string) (float64, bool) {
	r, size := utf8.DecodeLastRuneInString(field)
	if size == len(field) || r == utf8.RuneError {
		return 0, false
	}
	g, ok := GlyphValue(r)
	if !ok {
		return 0, false
	}
	w, err := strconv.ParseFloat(field[:len(field)-size], 64)
	if err != nil {
		return 0, false
	}
	return w + g, true
}
