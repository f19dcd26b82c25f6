package yield

import (
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantQty  float64
		wantNil  bool
		wantUnit string
	}{
		{name: "servings", input: "8 servings", wantQty: 8, wantUnit: "servings"},
		{name: "decimal", input: "1.5 cups", wantQty: 1.5, wantUnit: "cups"},
		{name: "mixed number", input: "1 1/2 cups", wantQty: 1.5, wantUnit: "cups"},
		{name: "plus joined", input: "2+½ loaves", wantQty: 2.5, wantUnit: "loaves"},
		{name: "glyph", input: "¾ cup", wantQty: 0.75, wantUnit: "cup"},
		{name: "attached glyph", input: "1½ cups", wantQty: 1.5, wantUnit: "cups"},
		{name: "bare number", input: " 12 ", wantQty: 12, wantUnit: ""},
		{name: "no amount", input: "  one loaf ", wantNil: true, wantUnit: "one loaf"},
		{name: "empty", input: "", wantNil: true, wantUnit: ""},
		{name: "zero denominator", input: "1/0 cups", wantNil: true, wantUnit: "1/0 cups"},
		{name: "glyph outside yield table", input: "⅕ cup", wantNil: true, wantUnit: "⅕ cup"},
		{name: "stray dot", input: ". cups", wantNil: true, wantUnit: ". cups"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if tt.wantNil {
				if got.Quantity != nil {
					t.Fatalf("Parse(%q).Quantity = %v, want nil", tt.input, *got.Quantity)
				}
			} else {
				if got.Quantity == nil {
					t.Fatalf("Parse(%q).Quantity = nil, want %v", tt.input, tt.wantQty)
				}
				if math.Abs(*got.Quantity-tt.wantQty) > 1e-9 {
					t.Errorf("Parse(%q).Quantity = %v, want %v", tt.input, *got.Quantity, tt.wantQty)
				}
			}
			if got.Unit != tt.wantUnit {
				t.Errorf("Parse(%q).Unit = %q, want %q", tt.input, got.Unit, tt.wantUnit)
			}
		})
	}
}

func TestFormatScaled(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		multiplier float64
		want       string
	}{
		{name: "double servings", input: "4 servings", multiplier: 2, want: "8 servings"},
		{name: "quarter singularizes", input: "4 servings", multiplier: 0.25, want: "1 serving"},
		{name: "cup pluralizes", input: "1 cup", multiplier: 3, want: "3 cups"},
		{name: "batches strips two", input: "2 batches", multiplier: 0.5, want: "1 batch"},
		{name: "washes strips two", input: "2 washes", multiplier: 0.5, want: "1 wash"},
		{name: "fraction result", input: "3 pieces", multiplier: 0.5, want: "1 ½ pieces"},
		{name: "below one singular", input: "2 cups", multiplier: 0.25, want: "½ cup"},
		{name: "case preserved", input: "1 Serving", multiplier: 2, want: "2 Servings"},
		{name: "unlisted unit unchanged", input: "1 loaf", multiplier: 2, want: "2 loaf"},
		{name: "multiword unit unchanged", input: "2 cups of soup", multiplier: 0.5, want: "1 cups of soup"},
		{name: "no unit", input: "6", multiplier: 1.5, want: "9"},
		{name: "multiplier one", input: "4 servings", multiplier: 1, want: "4 servings"},
		{name: "zero multiplier", input: "4 servings", multiplier: 0, want: "4 servings"},
		{name: "negative multiplier", input: "4 servings", multiplier: -2, want: "4 servings"},
		{name: "nan multiplier", input: "4 servings", multiplier: math.NaN(), want: "4 servings"},
		{name: "empty", input: "", multiplier: 2, want: ""},
		{name: "unparseable", input: "a big pot", multiplier: 2, want: "a big pot"},
		{name: "zero quantity", input: "0 servings", multiplier: 2, want: "0 servings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatScaled(tt.input, tt.multiplier); got != tt.want {
				t.Errorf("FormatScaled(%q, %v) = %q, want %q", tt.input, tt.multiplier, got, tt.want)
			}
		})
	}
}
