package recipe

import (
	"math"
	"strings"

	"larder/internal/ingredient"
	"larder/internal/quantity"
	"larder/internal/units"
	"larder/internal/yield"
)

// ScaleLine renders an ingredient line multiplied by multiplier and converted
// to system. A unit that already belongs to system keeps its typed form, so
// "1 tsp salt" stays in teaspoons on an imperial card. Lines without a leading
// amount come back trimmed but otherwise unchanged. A non-positive or
// non-finite multiplier is treated as 1.
func ScaleLine(line string, multiplier float64, system units.System) string {
	parsed := ingredient.ParseLine(line)
	if parsed.Quantity == nil {
		return parsed.Description
	}
	scaled := *parsed.Quantity * normalizeMultiplier(multiplier)
	converted := units.Result{Value: &scaled, Unit: parsed.Unit}
	if !system.Includes(parsed.Unit) {
		converted = units.Convert(&scaled, parsed.Unit, system)
	}
	return strings.Join(nonEmpty(
		quantity.FormatOptional(converted.Value),
		converted.Unit,
		parsed.Description,
	), " ")
}

// Line is one displayed ingredient of a Card.
type Line struct {
	Original string              `json:"original"`
	Display  string              `json:"display"`
	Key      string              `json:"key"`
	Category ingredient.Category `json:"category"`
}

// Card is a recipe prepared for display at a given scale and unit system.
type Card struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Yield        string   `json:"yield,omitempty"`
	Multiplier   float64  `json:"multiplier"`
	UnitSystem   string   `json:"unitSystem"`
	Ingredients  []Line   `json:"ingredients"`
	Instructions []string `json:"instructions,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Notes        string   `json:"notes,omitempty"`
}

// NewCard scales and converts every ingredient line of r. keys may be nil.
func NewCard(r Recipe, multiplier float64, system units.System, keys *ingredient.KeyCache) Card {
	multiplier = normalizeMultiplier(multiplier)
	card := Card{
		ID:           r.ID,
		Name:         r.Name,
		Yield:        yield.FormatScaled(r.Yield, multiplier),
		Multiplier:   multiplier,
		UnitSystem:   system.String(),
		Ingredients:  make([]Line, 0, len(r.Ingredients)),
		Instructions: r.Instructions,
		Tags:         r.Tags,
		Notes:        r.Notes,
	}
	for _, line := range r.Ingredients {
		key := keys.Key(line)
		card.Ingredients = append(card.Ingredients, Line{
			Original: line,
			Display:  ScaleLine(line, multiplier, system),
			Key:      key,
			Category: ingredient.Categorize(key),
		})
	}
	return card
}

func normalizeMultiplier(m float64) float64 {
	if m <= 0 || math.IsInf(m, 0) || math.IsNaN(m) {
		return 1
	}
	return m
}

func nonEmpty(parts ...string) []string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
