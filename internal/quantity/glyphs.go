package quantity

import "strings"

// glyph pairs a vulgar-fraction rune with its exact value.
type glyph struct {
	r     rune
	value float64
}

// glyphTable lists the fractions recognized on input and produced on output.
// Order matters for Format: the first entry within tolerance wins.
var glyphTable = []glyph{
	{'⅛', 1.0 / 8},
	{'⅙', 1.0 / 6},
	{'⅕', 1.0 / 5},
	{'¼', 1.0 / 4},
	{'⅓', 1.0 / 3},
	{'⅜', 3.0 / 8},
	{'⅖', 2.0 / 5},
	{'½', 1.0 / 2},
	{'⅗', 3.0 / 5},
	{'⅝', 5.0 / 8},
	{'⅔', 2.0 / 3},
	{'¾', 3.0 / 4},
	{'⅘', 4.0 / 5},
	{'⅚', 5.0 / 6},
	{'⅞', 7.0 / 8},
}

var glyphValues map[rune]float64

func init() {
	glyphValues = make(map[rune]float64, len(glyphTable))
	for _, g := range glyphTable {
		glyphValues[g.r] = g.value
	}
}

// GlyphValue reports the value of a single fraction glyph.
func GlyphValue(r rune) (float64, bool) {
	v, ok := glyphValues[r]
	return v, ok
}

// Glyphs returns every recognized glyph as a string, suitable for building
// character classes.
func Glyphs() string {
	var b strings.Builder
	for _, g := range glyphTable {
		b.WriteRune(g.r)
	}
	return b.String()
}
