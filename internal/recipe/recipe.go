// Package recipe stores recipes and renders their ingredient lines for
// display.
//
// Recipes live in the "recipes" collection of the keyed store. Scaling and
// unit conversion are display-only: ScaleLine and NewCard never change the
// stored lines.
package recipe

import (
	"strings"
	"time"
)

// Recipe is a stored recipe. Ingredients holds one free-form line per
// ingredient.
type Recipe struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Yield        string    `json:"yield,omitempty"`
	Ingredients  []string  `json:"ingredients"`
	Instructions []string  `json:"instructions,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func recipeID(r Recipe) string { return r.ID }

// clean trims text fields and drops blank list lines.
func (r Recipe) clean() Recipe {
	r.Name = strings.TrimSpace(r.Name)
	r.Yield = strings.TrimSpace(r.Yield)
	r.Notes = strings.TrimSpace(r.Notes)
	r.Ingredients = compactLines(r.Ingredients)
	r.Instructions = compactLines(r.Instructions)
	r.Tags = compactLines(r.Tags)
	return r
}

func compactLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
