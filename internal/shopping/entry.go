// Package shopping builds the shopping list from recipe ingredient lines.
//
// Entries are stored one per ingredient line per recipe addition. The views
// returned by CommonIngredients and ByRecipe are derived on every read and
// never persisted: entries sharing a normalized key across two or more
// recipes collapse into a common group, and everything else is listed under
// its recipe.
package shopping

import (
	"strings"
	"time"

	"larder/internal/ingredient"
)

// Entry is one line on the shopping list. RecipeID and RecipeName point back
// at the recipe the line came from and are only used for display.
type Entry struct {
	ID             string              `json:"id"`
	OriginalText   string              `json:"originalText"`
	Quantity       *float64            `json:"quantity,omitempty"`
	Unit           string              `json:"unit,omitempty"`
	Description    string              `json:"description"`
	RecipeID       string              `json:"recipeId,omitempty"`
	RecipeName     string              `json:"recipeName,omitempty"`
	Checked        bool                `json:"checked"`
	NormalizedText string              `json:"normalizedText"`
	Category       ingredient.Category `json:"category"`
	AddedAt        time.Time           `json:"addedAt"`
}

func entryID(e Entry) string { return e.ID }

// NewEntry parses line into an unchecked entry. keys may be nil.
func NewEntry(id, line, recipeID, recipeName string, keys *ingredient.KeyCache, addedAt time.Time) Entry {
	text := strings.TrimSpace(line)
	parsed := ingredient.ParseLine(text)
	key := keys.Key(text)
	return Entry{
		ID:             id,
		OriginalText:   text,
		Quantity:       parsed.Quantity,
		Unit:           parsed.Unit,
		Description:    parsed.Description,
		RecipeID:       recipeID,
		RecipeName:     recipeName,
		NormalizedText: key,
		Category:       ingredient.Categorize(categoryName(key, parsed.Description)),
		AddedAt:        addedAt,
	}
}

func categoryName(key, description string) string {
	if key != "" {
		return key
	}
	return description
}

func recipeLabel(e Entry, fallback string) string {
	if name := strings.TrimSpace(e.RecipeName); name != "" {
		return name
	}
	return fallback
}
