package ingredient

import (
	"regexp"
	"strings"

	"larder/internal/quantity"
)

// Parsed is the structured form of one ingredient line. Quantity is nil when
// the line has no usable leading amount; in that case Unit is empty and
// Description holds the whole trimmed line.
type Parsed struct {
	Quantity    *float64 `json:"quantity,omitempty"`
	Unit        string   `json:"unit,omitempty"`
	Description string   `json:"description"`
}

// linePattern captures an optional leading amount, an optional single
// unit-like word followed by whitespace, and the rest.
var linePattern = regexp.MustCompile(
	`(?s)^([0-9` + quantity.Glyphs() + `][0-9` + quantity.Glyphs() + `\s./]*)?\s*(?:([A-Za-z.]+)\s+)?(.*)$`,
)

// ParseLine splits an ingredient line into quantity, unit, and description.
func ParseLine(line string) Parsed {
	trimmed := strings.TrimSpace(line)

	var amountText, unitText, rest string
	if m := linePattern.FindStringSubmatch(trimmed); m != nil {
		amountText = strings.TrimSpace(m[1])
		unitText = m[2]
		rest = strings.TrimSpace(m[3])
	} else {
		rest = trimmed
	}

	var p Parsed
	if v, ok := quantity.Parse(amountText); ok {
		p.Quantity = &v
		p.Unit = unitText
		p.Description = rest
	} else {
		p.Description = joinNonEmpty(amountText, unitText, rest)
	}

	if p.Unit != "" && isLineDescriptor(p.Unit) {
		p.Description = joinNonEmpty(p.Unit, p.Description)
		p.Unit = ""
	}

	// An amount with nothing after it is not an ingredient.
	if p.Description == "" {
		p.Quantity = nil
	}

	// Without an amount the split is speculative; keep the text as typed.
	if p.Quantity == nil {
		p.Unit = ""
		p.Description = trimmed
	}
	return p
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0:0]
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, " ")
}
