// Package yield parses recipe yield strings such as "8 servings" or
// "1 1/2 cups" and rescales them for a serving multiplier.
package yield

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"larder/internal/quantity"
)

// Yield is the parsed form of a yield string. When the leading amount cannot
// be parsed, Quantity is nil and Unit carries the whole trimmed input.
type Yield struct {
	Quantity *float64
	Unit     string
}

// yieldGlyphs is deliberately narrower than the formatter's fraction table.
var yieldGlyphs = map[rune]float64{
	'½': 0.5,
	'⅓': 1.0 / 3,
	'⅔': 2.0 / 3,
	'¼': 0.25,
	'¾': 0.75,
	'⅛': 0.125,
	'⅜': 0.375,
	'⅝': 0.625,
}

var (
	leadingAmount = regexp.MustCompile(`^([0-9./+\s½⅓⅔¼¾⅛⅜⅝]+)(.*)$`)
	partSeparator = regexp.MustCompile(`[\s+]+`)
)

// Parse splits text into a summed leading amount and the unit remainder.
func Parse(text string) Yield {
	trimmed := strings.TrimSpace(text)
	fallback := Yield{Unit: trimmed}

	m := leadingAmount.FindStringSubmatch(trimmed)
	if m == nil {
		return fallback
	}

	var (
		total float64
		parts int
	)
	for _, part := range partSeparator.Split(m[1], -1) {
		if part == "" {
			continue
		}
		v, ok := parsePart(part)
		if !ok {
			return fallback
		}
		total += v
		parts++
	}
	if parts == 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return fallback
	}
	return Yield{Quantity: &total, Unit: strings.TrimSpace(m[2])}
}

func parsePart(part string) (float64, bool) {
	if num, den, ok := strings.Cut(part, "/"); ok {
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
	if r, size := utf8.DecodeRuneInString(part); size == len(part) {
		if v, ok := yieldGlyphs[r]; ok {
			return v, true
		}
	}
	if r, size := utf8.DecodeLastRuneInString(part); size < len(part) {
		if g, ok := yieldGlyphs[r]; ok {
			w, err := strconv.ParseFloat(part[:len(part)-size], 64)
			if err != nil {
				return 0, false
			}
			return w + g, true
		}
	}
	v, err := strconv.ParseFloat(part, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Only these units change form with the count.
var (
	singularUnits = map[string]struct{}{
		"cup": {}, "serving": {}, "loin": {}, "piece": {},
	}
	pluralUnits = map[string]int{
		"cups": 1, "servings": 1, "loins": 1, "pieces": 1,
		"batches": 2, "washes": 2,
	}
)

// FormatScaled multiplies the yield in text by multiplier and adjusts the unit
// between singular and plural forms. Text comes back unchanged when the
// multiplier is 1 or not a positive finite number, or when the yield has no
// usable amount.
func FormatScaled(text string, multiplier float64) string {
	if multiplier == 1 || !(multiplier > 0) || math.IsInf(multiplier, 0) {
		return text
	}
	y := Parse(text)
	if y.Quantity == nil || *y.Quantity == 0 {
		return text
	}

	scaled := *y.Quantity * multiplier
	unit := inflect(y.Unit, scaled)
	amount := quantity.Format(scaled)
	if unit == "" {
		return amount
	}
	return amount + " " + unit
}

func inflect(unit string, count float64) string {
	lower := strings.ToLower(unit)
	if count > 1 {
		if _, ok := singularUnits[lower]; ok && !strings.HasSuffix(lower, "s") {
			return unit + "s"
		}
		return unit
	}
	if strip, ok := pluralUnits[lower]; ok {
		return unit[:len(unit)-strip]
	}
	return unit
}
