package api

import (
	"time"

	"larder/internal/recipe"
)

// RecipeSummary describes a recipe in list output.
type RecipeSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Yield       string    `json:"yield,omitempty"`
	Ingredients int       `json:"ingredients"`
	Tags        []string  `json:"tags,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromRecipe converts a stored recipe into its summary.
func FromRecipe(r recipe.Recipe) RecipeSummary {
	return RecipeSummary{
		ID:          r.ID,
		Name:        r.Name,
		Yield:       r.Yield,
		Ingredients: len(r.Ingredients),
		Tags:        r.Tags,
		UpdatedAt:   r.UpdatedAt,
	}
}

// FromRecipes converts recipes preserving order.
func FromRecipes(recipes []recipe.Recipe) []RecipeSummary {
	out := make([]RecipeSummary, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, FromRecipe(r))
	}
	return out
}

// DeleteRecipeResult reports what a recipe deletion removed.
type DeleteRecipeResult struct {
	Recipe         RecipeSummary `json:"recipe"`
	RemovedEntries int           `json:"removedEntries"`
}

// SearchResult is one ranked recipe match.
type SearchResult struct {
	Recipe RecipeSummary `json:"recipe"`
	Score  float64       `json:"score"`
}
