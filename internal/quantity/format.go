package quantity

import (
	"math"
	"strconv"
)

// fractionTolerance is how close a fractional part must be to a table entry
// to render as a glyph.
const fractionTolerance = 0.001

// Format renders a quantity for display. Zero, NaN, and infinities render as
// the empty string. Integral values print without a decimal point; known
// fractions print as "{whole} {glyph}" with a zero whole omitted; everything
// else rounds to two decimals with trailing zeros stripped.
func Format(v float64) string {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	if v < 0 {
		return "-" + Format(-v)
	}
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}

	whole, frac := math.Modf(v)
	for _, g := range glyphTable {
		if math.Abs(frac-g.value) < fractionTolerance {
			if whole == 0 {
				return string(g.r)
			}
			return strconv.FormatFloat(whole, 'f', 0, 64) + " " + string(g.r)
		}
	}

	rounded := math.Round(v*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// FormatOptional formats a possibly absent quantity.
func FormatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return Format(*v)
}
