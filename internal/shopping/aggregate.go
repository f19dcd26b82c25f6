package shopping

import (
	"sort"
	"strings"

	"larder/internal/ingredient"
)

// IngredientGroup is the common-ingredient view of every entry sharing one
// normalized key. Quantity is nil when no member contributed an amount.
type IngredientGroup struct {
	Key            string              `json:"key"`
	Quantity       *float64            `json:"quantity,omitempty"`
	Unit           string              `json:"unit,omitempty"`
	RecipeSources  []string            `json:"recipeSources"`
	InstanceCount  int                 `json:"instanceCount"`
	UncheckedCount int                 `json:"uncheckedCount"`
	Checked        bool                `json:"checked"`
	Category       ingredient.Category `json:"category"`
	EntryIDs       []string            `json:"entryIds"`
}

// RecipeGroup lists the entries that came from one recipe.
type RecipeGroup struct {
	Name     string  `json:"name"`
	RecipeID string  `json:"recipeId,omitempty"`
	Entries  []Entry `json:"entries"`
}

// Views holds both derived views of one snapshot.
type Views struct {
	Common   []IngredientGroup `json:"common"`
	ByRecipe []RecipeGroup     `json:"byRecipe"`
}

// BuildViews derives both views from the same snapshot.
func BuildViews(entries []Entry, fallback string) Views {
	common := CommonIngredients(entries, fallback)
	return Views{
		Common:   common,
		ByRecipe: byRecipe(entries, fallback, commonKeys(common)),
	}
}

// CommonIngredients groups entries by normalized key and keeps the groups
// drawn from more than one recipe. Entries with an empty key are never
// grouped.
//
// The first non-empty unit seen becomes the group's unit. An entry's amount
// is added only while its unit matches that unit (case-insensitively); other
// entries still count as instances and sources but their amounts are left
// out of the total.
func CommonIngredients(entries []Entry, fallback string) []IngredientGroup {
	type accumulator struct {
		group   IngredientGroup
		sum     float64
		summed  bool
		sources map[string]struct{}
	}

	byKey := make(map[string]*accumulator)
	var order []string
	for _, e := range entries {
		key := e.NormalizedText
		if key == "" {
			continue
		}
		acc, ok := byKey[key]
		if !ok {
			acc = &accumulator{
				group:   IngredientGroup{Key: key, Category: e.Category},
				sources: make(map[string]struct{}),
			}
			byKey[key] = acc
			order = append(order, key)
		}

		g := &acc.group
		g.InstanceCount++
		g.EntryIDs = append(g.EntryIDs, e.ID)
		if !e.Checked {
			g.UncheckedCount++
		}
		acc.sources[recipeLabel(e, fallback)] = struct{}{}

		if g.Unit == "" && e.Unit != "" {
			g.Unit = e.Unit
		}
		if e.Quantity != nil && strings.EqualFold(e.Unit, g.Unit) {
			acc.sum += *e.Quantity
			acc.summed = true
		}
	}

	groups := make([]IngredientGroup, 0, len(order))
	for _, key := range order {
		acc := byKey[key]
		if len(acc.sources) < 2 {
			continue
		}
		g := acc.group
		for source := range acc.sources {
			g.RecipeSources = append(g.RecipeSources, source)
		}
		sort.Strings(g.RecipeSources)
		if acc.summed {
			sum := acc.sum
			g.Quantity = &sum
		}
		g.Checked = g.UncheckedCount == 0
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
	return groups
}

// ByRecipe partitions entries by recipe name, using fallback for entries
// without one. Entries already shown in a common group are left out, and
// recipes left with no entries are dropped.
func ByRecipe(entries []Entry, fallback string) []RecipeGroup {
	return byRecipe(entries, fallback, commonKeys(CommonIngredients(entries, fallback)))
}

func byRecipe(entries []Entry, fallback string, common map[string]struct{}) []RecipeGroup {
	byName := make(map[string]*RecipeGroup)
	for _, e := range entries {
		if _, shared := common[e.NormalizedText]; shared && e.NormalizedText != "" {
			continue
		}
		name := recipeLabel(e, fallback)
		g, ok := byName[name]
		if !ok {
			g = &RecipeGroup{Name: name, RecipeID: e.RecipeID}
			byName[name] = g
		}
		g.Entries = append(g.Entries, e)
	}

	groups := make([]RecipeGroup, 0, len(byName))
	for _, g := range byName {
		sort.SliceStable(g.Entries, func(i, j int) bool {
			return lessFold(g.Entries[i].OriginalText, g.Entries[j].OriginalText)
		})
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool { return lessFold(groups[i].Name, groups[j].Name) })
	return groups
}

func commonKeys(groups []IngredientGroup) map[string]struct{} {
	keys := make(map[string]struct{}, len(groups))
	for _, g := range groups {
		keys[g.Key] = struct{}{}
	}
	return keys
}

func lessFold(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}

// ToggleEntry returns a copy of the entry with id and its checked state
// flipped. ok is false when no entry has that id.
func ToggleEntry(entries []Entry, id string) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			e.Checked = !e.Checked
			return e, true
		}
	}
	return Entry{}, false
}

// ToggleGroup sets every entry with key to checked unless all of them already
// are, in which case it unchecks them all. It returns copies of the entries
// whose state changed.
func ToggleGroup(entries []Entry, key string) []Entry {
	if key == "" {
		return nil
	}
	var members []Entry
	allChecked := true
	for _, e := range entries {
		if e.NormalizedText != key {
			continue
		}
		members = append(members, e)
		if !e.Checked {
			allChecked = false
		}
	}
	if len(members) == 0 {
		return nil
	}

	target := !allChecked
	changed := make([]Entry, 0, len(members))
	for _, e := range members {
		if e.Checked == target {
			continue
		}
		e.Checked = target
		changed = append(changed, e)
	}
	return changed
}
