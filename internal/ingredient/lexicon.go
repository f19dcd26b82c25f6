package ingredient

import (
	"sort"
	"strings"
)

// unitWords are stripped from descriptions during normalization. Each also
// matches with a trailing "s".
var unitWords = []string{
	"cup", "tablespoon", "tbsp", "tbs", "teaspoon", "tsp",
	"ounce", "oz", "fl", "pound", "lb",
	"gram", "g", "kilogram", "kg",
	"milliliter", "millilitre", "ml", "liter", "litre", "l",
	"pint", "pt", "quart", "qt", "gallon", "gal",
	"pinch", "pinches", "dash", "dashes",
	"can", "package", "pkg",
}

// lineDescriptors are words that look like units in "3 large eggs" but
// describe the ingredient instead.
var lineDescriptors = []string{
	"large", "medium", "small", "extra", "jumbo",
	"chopped", "diced", "minced", "sliced", "grated", "shredded", "crushed",
	"cubed", "halved", "quartered", "peeled", "seeded", "cored", "trimmed",
	"fresh", "freshly", "whole", "ripe", "dried", "frozen",
	"finely", "roughly", "coarsely", "thinly", "lightly",
	"heaping", "scant", "packed", "level", "about",
	"softened", "melted", "beaten", "room", "cold", "warm", "hot",
	"optional", "to", "taste", "for", "plus", "or", "and",
	"boneless", "skinless", "lean",
}

// prepDescriptors are phrases stripped from descriptions during
// normalization. "ground" and "dried" are absent on purpose: they change what
// is being bought.
var prepDescriptors = []string{
	"chopped", "finely chopped", "roughly chopped", "coarsely chopped",
	"diced", "finely diced", "minced", "sliced", "thinly sliced",
	"grated", "freshly grated", "shredded", "crushed", "cubed",
	"halved", "quartered", "julienned", "peeled", "seeded", "cored",
	"trimmed", "rinsed", "drained", "rinsed and drained", "drained and rinsed", "juiced", "zested",
	"melted", "softened", "beaten", "lightly beaten", "sifted", "divided",
	"packed", "firmly packed", "at room temperature", "room temperature",
	"fresh", "freshly", "large", "medium", "small", "extra large",
	"extra virgin", "whole", "boneless", "skinless",
	"optional", "to taste", "for garnish", "for serving", "plus more",
	"warm", "cold",
}

// invariantPlurals end in "s" (or look plural) but are already the canonical
// form.
var invariantPlurals = map[string]struct{}{
	"greens":    {},
	"oats":      {},
	"pasta":     {},
	"rice":      {},
	"hummus":    {},
	"molasses":  {},
	"asparagus": {},
	"citrus":    {},
	"couscous":  {},
}

var (
	unitSet           map[string]struct{}
	lineDescriptorSet map[string]struct{}
	descriptorPhrases [][]string
)

func init() {
	unitSet = make(map[string]struct{}, len(unitWords)*2)
	for _, w := range unitWords {
		unitSet[w] = struct{}{}
		unitSet[w+"s"] = struct{}{}
	}

	lineDescriptorSet = make(map[string]struct{}, len(lineDescriptors))
	for _, w := range lineDescriptors {
		lineDescriptorSet[w] = struct{}{}
	}

	descriptorPhrases = make([][]string, 0, len(prepDescriptors))
	for _, p := range prepDescriptors {
		descriptorPhrases = append(descriptorPhrases, strings.Fields(p))
	}
	// Longest phrases first so "finely chopped" wins over "chopped".
	sort.SliceStable(descriptorPhrases, func(i, j int) bool {
		return len(descriptorPhrases[i]) > len(descriptorPhrases[j])
	})
}

func isLineDescriptor(word string) bool {
	_, ok := lineDescriptorSet[strings.ToLower(word)]
	return ok
}
