package recipe

import (
	"testing"

	"larder/internal/units"
)

func TestScaleLine(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		multiplier float64
		system     units.System
		want       string
	}{
		{"double without conversion", "2 cups flour", 2, units.Imperial, "4 cups flour"},
		{"metric cup", "1 cup sugar", 1, units.Metric, "236.59 ml sugar"},
		{"teaspoons stay teaspoons", "1 1/2 tsp salt", 2, units.Imperial, "3 tsp salt"},
		{"imperial tablespoon kept as typed", "1 tbsp olive oil", 1, units.Imperial, "1 tbsp olive oil"},
		{"imperial teaspoon kept as typed", "1 tsp salt", 1, units.Imperial, "1 tsp salt"},
		{"two teaspoons kept as typed", "2 tsp vanilla extract", 1, units.Imperial, "2 tsp vanilla extract"},
		{"metric teaspoon", "1 1/2 tsp salt", 1, units.Metric, "7.39 ml salt"},
		{"grams kept on metric card", "100 g sugar", 1, units.Metric, "100 g sugar"},
		{"grams shown as ounces", "100 g sugar", 1, units.Imperial, "3.53 oz sugar"},
		{"glyph output", "1/4 cup milk", 2, units.Imperial, "½ cup milk"},
		{"no amount", "  Salt to taste ", 3, units.Metric, "Salt to taste"},
		{"bad multiplier", "2 eggs", 0, units.Imperial, "2 eggs"},
		{"unitless amount", "3 large eggs", 0.5, units.Metric, "1 ½ large eggs"},
		{"unknown unit passes through", "2 cloves garlic", 1, units.Metric, "2 cloves garlic"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScaleLine(tt.line, tt.multiplier, tt.system); got != tt.want {
				t.Fatalf("ScaleLine(%q, %v, %s) = %q, want %q", tt.line, tt.multiplier, tt.system, got, tt.want)
			}
		})
	}
}

func TestNewCard(t *testing.T) {
	r := Recipe{
		ID:          "r1",
		Name:        "Pancakes",
		Yield:       "4 servings",
		Ingredients: []string{"1 cup flour", "2 large eggs", "Butter for the pan"},
	}

	card := NewCard(r, 0.25, units.Imperial, nil)
	if card.Yield != "1 serving" {
		t.Fatalf("unexpected yield %q", card.Yield)
	}
	if card.Multiplier != 0.25 || card.UnitSystem != "imperial" {
		t.Fatalf("unexpected card settings %+v", card)
	}
	if len(card.Ingredients) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(card.Ingredients))
	}
	first := card.Ingredients[0]
	if first.Display != "¼ cup flour" || first.Key != "flour" || first.Original != "1 cup flour" {
		t.Fatalf("unexpected first line %+v", first)
	}
	if card.Ingredients[1].Category != "Dairy" {
		t.Fatalf("eggs should be Dairy, got %q", card.Ingredients[1].Category)
	}

	unscaled := NewCard(r, -1, units.Imperial, nil)
	if unscaled.Multiplier != 1 || unscaled.Yield != "4 servings" {
		t.Fatalf("invalid multiplier should fall back to 1: %+v", unscaled)
	}
}
