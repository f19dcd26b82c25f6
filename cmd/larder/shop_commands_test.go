package main

import (
	"strings"
	"testing"

	"larder/internal/shopping"
)

func TestShoppingListCommands(t *testing.T) {
	env := setupCLITestEnv(t)
	addTestRecipe(t, env, "Pasta", "", "2 tbsp olive oil", "8 oz pasta")
	addTestRecipe(t, env, "Salad", "", "2 tbsp extra virgin olive oil", "3 carrots")

	if out := env.mustRun(t, "shop", "add", "pasta"); out != "Added 2 items to the shopping list\n" {
		t.Fatalf("unexpected add output %q", out)
	}
	env.mustRun(t, "shop", "add", "Salad")
	env.mustRun(t, "shop", "item", "paper", "towels")

	var views shopping.Views
	env.mustRunJSON(t, &views, "shop", "list")
	if len(views.Common) != 1 {
		t.Fatalf("expected one common group, got %+v", views.Common)
	}
	oil := views.Common[0]
	if oil.Key != "olive oil" || oil.Quantity == nil || *oil.Quantity != 4 || oil.Unit != "tbsp" {
		t.Fatalf("unexpected olive oil group %+v", oil)
	}
	if len(views.ByRecipe) != 3 || views.ByRecipe[0].Name != "Other items" {
		t.Fatalf("unexpected recipe groups %+v", views.ByRecipe)
	}

	var common shopping.Views
	env.mustRunJSON(t, &common, "shop", "list", "--view", "common")
	if len(common.ByRecipe) != 0 || len(common.Common) != 1 {
		t.Fatalf("common view should omit recipe groups: %+v", common)
	}

	table := env.mustRun(t, "shop", "list")
	for _, want := range []string{"Common ingredients", "olive oil", "4 tbsp", "Pasta, Salad", "By recipe", "3 carrots"} {
		if !strings.Contains(table, want) {
			t.Fatalf("list output missing %q:\n%s", want, table)
		}
	}

	if out := env.mustRun(t, "shop", "toggle-group", "olive", "oil"); out != "Marked 2 entries checked\n" {
		t.Fatalf("unexpected toggle-group output %q", out)
	}
	carrots := views.ByRecipe[2].Entries[0]
	if carrots.OriginalText != "3 carrots" {
		t.Fatalf("unexpected entry order %+v", views.ByRecipe[2])
	}
	if out := env.mustRun(t, "shop", "toggle", carrots.ID); out != "[x] 3 carrots\n" {
		t.Fatalf("unexpected toggle output %q", out)
	}
	env.mustRunJSON(t, &views, "shop", "list")
	if !views.Common[0].Checked {
		t.Fatal("olive oil group should be checked")
	}

	if out := env.mustRun(t, "shop", "remove", "Salad"); out != "Removed 2 entries\n" {
		t.Fatalf("unexpected remove output %q", out)
	}
	env.mustRun(t, "shop", "clear")
	if out := env.mustRun(t, "shop", "list"); out != "Shopping list is empty\n" {
		t.Fatalf("expected empty list, got %q", out)
	}
}

func TestShopListRejectsUnknownView(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := env.run(t, "shop", "list", "--view", "aisle"); err == nil {
		t.Fatal("expected error for unknown view")
	}
}

func TestShopToggleUnknownEntry(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := env.run(t, "shop", "toggle", "nope"); err == nil {
		t.Fatal("expected error for unknown entry")
	}
}
