package quantity

import (
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		want   float64
		wantOK bool
	}{
		{name: "integer", token: "2", want: 2, wantOK: true},
		{name: "decimal", token: "1.25", want: 1.25, wantOK: true},
		{name: "fraction", token: "3/4", want: 0.75, wantOK: true},
		{name: "mixed number", token: "1 1/2", want: 1.5, wantOK: true},
		{name: "surrounding space", token: "  2  ", want: 2, wantOK: true},
		{name: "glyph", token: "½", want: 0.5, wantOK: true},
		{name: "third glyph exact", token: "⅓", want: 1.0 / 3, wantOK: true},
		{name: "whole with attached glyph", token: "1½", want: 1.5, wantOK: true},
		{name: "whole with spaced glyph", token: "2 ¼", want: 2.25, wantOK: true},
		{name: "empty", token: "", wantOK: false},
		{name: "zero denominator", token: "1/0", wantOK: false},
		{name: "mixed zero denominator", token: "1 1/0", wantOK: false},
		{name: "bad denominator", token: "1/x", wantOK: false},
		{name: "double slash", token: "1/2/3", wantOK: false},
		{name: "words", token: "a few", wantOK: false},
		{name: "three fields", token: "1 2 3", wantOK: false},
		{name: "infinity", token: "Inf", wantOK: false},
		{name: "nan", token: "NaN", wantOK: false},
		{name: "mixed without fraction", token: "1 2", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.token)
			if ok != tt.wantOK {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.token, ok, tt.wantOK)
			}
			if ok && math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Parse(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "zero", value: 0, want: ""},
		{name: "nan", value: math.NaN(), want: ""},
		{name: "infinity", value: math.Inf(1), want: ""},
		{name: "integral", value: 2, want: "2"},
		{name: "large integral", value: 1200, want: "1200"},
		{name: "half with whole", value: 2.5, want: "2 ½"},
		{name: "third", value: 1.0 / 3, want: "⅓"},
		{name: "third within tolerance", value: 0.3335, want: "⅓"},
		{name: "two thirds", value: 1 + 2.0/3, want: "1 ⅔"},
		{name: "eighth", value: 0.125, want: "⅛"},
		{name: "seven eighths", value: 3.875, want: "3 ⅞"},
		{name: "fifth", value: 0.2, want: "⅕"},
		{name: "sixth", value: 5.0 / 6, want: "⅚"},
		{name: "unmatched rounds", value: 1.237, want: "1.24"},
		{name: "unmatched strips zeros", value: 0.9, want: "0.9"},
		{name: "negative", value: -1.5, want: "-1 ½"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.value); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatOptional(t *testing.T) {
	if got := FormatOptional(nil); got != "" {
		t.Errorf("FormatOptional(nil) = %q, want empty", got)
	}
	v := 0.75
	if got := FormatOptional(&v); got != "¾" {
		t.Errorf("FormatOptional(0.75) = %q, want ¾", got)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, g := range glyphTable {
		for _, whole := range []float64{0, 1, 3} {
			v := whole + g.value
			text := Format(v)
			got, ok := Parse(text)
			if !ok {
				t.Fatalf("Parse(Format(%v)) failed for %q", v, text)
			}
			if math.Abs(got-v) > 1e-9 {
				t.Errorf("Parse(%q) = %v, want %v", text, got, v)
			}
		}
	}
}
