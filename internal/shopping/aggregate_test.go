package shopping

import (
	"fmt"
	"testing"
	"time"
)

func entryFor(id, line, recipeID, recipeName string) Entry {
	return NewEntry(id, line, recipeID, recipeName, nil, time.Unix(0, 0))
}

func TestNewEntryParsesLine(t *testing.T) {
	e := entryFor("e1", "  2 cups chopped Roma tomatoes ", "r1", "Salsa")
	if e.OriginalText != "2 cups chopped Roma tomatoes" {
		t.Fatalf("original text not trimmed: %q", e.OriginalText)
	}
	if e.Quantity == nil || *e.Quantity != 2 || e.Unit != "cups" {
		t.Fatalf("unexpected quantity/unit: %v %q", e.Quantity, e.Unit)
	}
	if e.NormalizedText != "roma tomato" {
		t.Fatalf("unexpected key %q", e.NormalizedText)
	}
	if e.Category != "Produce" {
		t.Fatalf("unexpected category %q", e.Category)
	}
	if e.Checked {
		t.Fatal("new entries must start unchecked")
	}
}

func TestCommonIngredientsSumsSharedKeys(t *testing.T) {
	entries := []Entry{
		entryFor("a1", "2 tbsp olive oil", "ra", "Pasta"),
		entryFor("a2", "3 carrots", "ra", "Pasta"),
		entryFor("b1", "2 tbsp extra virgin olive oil", "rb", "Salad"),
		entryFor("b2", "1 cup couscous", "rb", "Salad"),
	}

	groups := CommonIngredients(entries, DefaultFallbackLabel)
	if len(groups) != 1 {
		t.Fatalf("expected one common group, got %+v", groups)
	}
	g := groups[0]
	if g.Key != "olive oil" {
		t.Fatalf("unexpected key %q", g.Key)
	}
	if g.Quantity == nil || *g.Quantity != 4 || g.Unit != "tbsp" {
		t.Fatalf("expected 4 tbsp, got %v %q", g.Quantity, g.Unit)
	}
	if fmt.Sprint(g.RecipeSources) != "[Pasta Salad]" {
		t.Fatalf("unexpected sources %v", g.RecipeSources)
	}
	if g.InstanceCount != 2 || g.UncheckedCount != 2 || g.Checked {
		t.Fatalf("unexpected counts %+v", g)
	}
	if fmt.Sprint(g.EntryIDs) != "[a1 b1]" {
		t.Fatalf("unexpected entry ids %v", g.EntryIDs)
	}
	if g.Category != "Pantry" {
		t.Fatalf("unexpected category %q", g.Category)
	}
}

func TestCommonIngredientsRequiresTwoRecipes(t *testing.T) {
	entries := []Entry{
		entryFor("a1", "2 tbsp olive oil", "ra", "Pasta"),
		entryFor("a2", "1 tbsp olive oil", "ra", "Pasta"),
	}
	if groups := CommonIngredients(entries, DefaultFallbackLabel); len(groups) != 0 {
		t.Fatalf("one recipe must not form a common group: %+v", groups)
	}

	byRecipe := ByRecipe(entries, DefaultFallbackLabel)
	if len(byRecipe) != 1 || len(byRecipe[0].Entries) != 2 {
		t.Fatalf("expected both lines under Pasta, got %+v", byRecipe)
	}
}

func TestCommonIngredientsSkipsMismatchedUnits(t *testing.T) {
	entries := []Entry{
		entryFor("a1", "1 cup flour", "ra", "Bread"),
		entryFor("b1", "200 g flour", "rb", "Cake"),
		entryFor("c1", "2 Cup flour", "rc", "Pie"),
	}
	groups := CommonIngredients(entries, DefaultFallbackLabel)
	if len(groups) != 1 {
		t.Fatalf("expected one group, got %+v", groups)
	}
	g := groups[0]
	if g.Unit != "cup" || g.Quantity == nil || *g.Quantity != 3 {
		t.Fatalf("expected 3 cup with grams dropped, got %v %q", g.Quantity, g.Unit)
	}
	if g.InstanceCount != 3 || len(g.RecipeSources) != 3 {
		t.Fatalf("mismatched entries still count: %+v", g)
	}
}

func TestCommonIngredientsWithoutQuantities(t *testing.T) {
	entries := []Entry{
		entryFor("a1", "Salt and pepper to taste", "ra", "Soup"),
		entryFor("b1", "salt and pepper", "rb", "Stew"),
	}
	groups := CommonIngredients(entries, DefaultFallbackLabel)
	if len(groups) != 1 {
		t.Fatalf("expected one group, got %+v", groups)
	}
	if groups[0].Quantity != nil || groups[0].Unit != "" {
		t.Fatalf("expected no quantity, got %v %q", groups[0].Quantity, groups[0].Unit)
	}
}

func TestManualItemsUseFallbackLabel(t *testing.T) {
	entries := []Entry{
		entryFor("a1", "2 tbsp butter", "ra", "Toast"),
		entryFor("m1", "butter", "", ""),
		entryFor("m2", "paper towels", "", ""),
	}
	groups := CommonIngredients(entries, "Extras")
	if len(groups) != 1 || fmt.Sprint(groups[0].RecipeSources) != "[Extras Toast]" {
		t.Fatalf("manual entries should count as the fallback recipe: %+v", groups)
	}

	byRecipe := ByRecipe(entries, "Extras")
	if len(byRecipe) != 1 || byRecipe[0].Name != "Extras" {
		t.Fatalf("expected only the Extras group, got %+v", byRecipe)
	}
	if len(byRecipe[0].Entries) != 1 || byRecipe[0].Entries[0].ID != "m2" {
		t.Fatalf("unexpected Extras entries %+v", byRecipe[0].Entries)
	}
}

func TestByRecipeSortsGroupsAndEntries(t *testing.T) {
	entries := []Entry{
		entryFor("s1", "3 carrots", "rs", "soup"),
		entryFor("s2", "1 bay leaf", "rs", "soup"),
		entryFor("a1", "2 limes, juiced", "ra", "Agua Fresca"),
		entryFor("s3", "2 cloves garlic, minced", "rs", "soup"),
	}
	groups := ByRecipe(entries, DefaultFallbackLabel)
	if len(groups) != 2 {
		t.Fatalf("expected two groups, got %+v", groups)
	}
	if groups[0].Name != "Agua Fresca" || groups[1].Name != "soup" {
		t.Fatalf("groups not sorted case-insensitively: %q, %q", groups[0].Name, groups[1].Name)
	}
	if groups[1].RecipeID != "rs" {
		t.Fatalf("unexpected recipe id %q", groups[1].RecipeID)
	}
	var order []string
	for _, e := range groups[1].Entries {
		order = append(order, e.ID)
	}
	if fmt.Sprint(order) != "[s2 s3 s1]" {
		t.Fatalf("entries not sorted by text: %v", order)
	}
}

func TestEmptyKeysStayUnderTheirRecipe(t *testing.T) {
	entries := []Entry{
		entryFor("a1", "1 cup", "ra", "One"),
		entryFor("b1", "1 cup", "rb", "Two"),
	}
	if groups := CommonIngredients(entries, DefaultFallbackLabel); len(groups) != 0 {
		t.Fatalf("empty keys must not group: %+v", groups)
	}
	if groups := ByRecipe(entries, DefaultFallbackLabel); len(groups) != 2 {
		t.Fatalf("expected both recipes listed, got %+v", groups)
	}
}

func TestBuildViewsPartitionsEntries(t *testing.T) {
	entries := []Entry{
		entryFor("a1", "2 tbsp olive oil", "ra", "Pasta"),
		entryFor("a2", "3 carrots", "ra", "Pasta"),
		entryFor("b1", "1 tbsp olive oil", "rb", "Salad"),
	}
	views := BuildViews(entries, DefaultFallbackLabel)

	seen := map[string]int{}
	for _, g := range views.Common {
		for _, id := range g.EntryIDs {
			seen[id]++
		}
	}
	for _, g := range views.ByRecipe {
		for _, e := range g.Entries {
			seen[e.ID]++
		}
	}
	for _, e := range entries {
		if seen[e.ID] != 1 {
			t.Fatalf("entry %s appears %d times across views", e.ID, seen[e.ID])
		}
	}
}

func TestViewsDoNotMutateInput(t *testing.T) {
	entries := []Entry{
		entryFor("b1", "2 tbsp olive oil", "rb", "Zeta"),
		entryFor("a1", "1 tbsp olive oil", "ra", "Alpha"),
		entryFor("a2", "3 carrots", "ra", "Alpha"),
	}
	before := fmt.Sprintf("%+v", entries)
	_ = BuildViews(entries, DefaultFallbackLabel)
	if after := fmt.Sprintf("%+v", entries); after != before {
		t.Fatalf("input mutated:\nbefore %s\nafter  %s", before, after)
	}
}

func TestToggleEntry(t *testing.T) {
	entries := []Entry{
		entryFor("a1", "2 tbsp olive oil", "ra", "Pasta"),
		entryFor("b1", "1 tbsp olive oil", "rb", "Salad"),
	}
	toggled, ok := ToggleEntry(entries, "b1")
	if !ok || !toggled.Checked || toggled.ID != "b1" {
		t.Fatalf("unexpected toggle result %+v ok=%v", toggled, ok)
	}
	if entries[1].Checked {
		t.Fatal("ToggleEntry must not modify its input")
	}
	if _, ok := ToggleEntry(entries, "missing"); ok {
		t.Fatal("expected missing id to report false")
	}
}

func TestToggleGroup(t *testing.T) {
	entries := []Entry{
		entryFor("a1", "2 tbsp olive oil", "ra", "Pasta"),
		entryFor("b1", "1 tbsp olive oil", "rb", "Salad"),
		entryFor("b2", "3 carrots", "rb", "Salad"),
	}
	entries[0].Checked = true

	changed := ToggleGroup(entries, "olive oil")
	if len(changed) != 1 || changed[0].ID != "b1" || !changed[0].Checked {
		t.Fatalf("partially checked group should check the rest: %+v", changed)
	}

	entries[1].Checked = true
	changed = ToggleGroup(entries, "olive oil")
	if len(changed) != 2 {
		t.Fatalf("fully checked group should uncheck all: %+v", changed)
	}
	for _, e := range changed {
		if e.Checked {
			t.Fatalf("entry %s still checked", e.ID)
		}
	}

	if changed := ToggleGroup(entries, ""); changed != nil {
		t.Fatalf("empty key must not match: %+v", changed)
	}
	if changed := ToggleGroup(entries, "saffron"); changed != nil {
		t.Fatalf("unknown key must not match: %+v", changed)
	}
}
