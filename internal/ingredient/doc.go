// Package ingredient turns free-form ingredient lines into structured data.
//
// ParseLine splits a line such as "1 1/2 cups flour" into quantity, unit, and
// description. Normalize reduces a line to the canonical key used to match the
// same ingredient across recipes ("2 cups chopped Roma tomatoes" becomes
// "roma tomato"). Categorize assigns a shopping category from ordered keyword
// rules.
//
// Every function here is pure and safe for concurrent use. Malformed input is
// never an error: lines that cannot be split keep their full text as the
// description, and names without a matching rule default to Pantry. The word
// lists driving this behavior live in lexicon.go and category.go as ordered
// data so precedence stays explicit.
package ingredient
