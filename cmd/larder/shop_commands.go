package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"larder/internal/api"
	"larder/internal/shopping"
)

const (
	viewCommon = "common"
	viewRecipe = "recipe"
	viewAll    = "all"
)

func newShopCommand(ctx *commandContext) *cobra.Command {
	shopCmd := &cobra.Command{
		Use:   "shop",
		Short: "Manage the shopping list",
	}

	shopCmd.AddCommand(newShopAddCommand(ctx))
	shopCmd.AddCommand(newShopItemCommand(ctx))
	shopCmd.AddCommand(newShopListCommand(ctx))
	shopCmd.AddCommand(newShopToggleCommand(ctx))
	shopCmd.AddCommand(newShopToggleGroupCommand(ctx))
	shopCmd.AddCommand(newShopRemoveCommand(ctx))
	shopCmd.AddCommand(newShopClearCommand(ctx))

	return shopCmd
}

func newShopAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <recipe-id|name>",
		Short: "Add a recipe's ingredients to the shopping list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(c context.Context, svc *api.Service) error {
				added, err := svc.AddRecipeToList(c, args[0])
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, added)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %d items to the shopping list\n", len(added))
				return nil
			})
		},
	}
}

func newShopItemCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "item <text>...",
		Short: "Add a manual item to the shopping list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(c context.Context, svc *api.Service) error {
				entry, err := svc.AddItemToList(c, strings.Join(args, " "))
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, entry)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %q (%s)\n", entry.OriginalText, entry.ID)
				return nil
			})
		},
	}
}

func newShopListCommand(ctx *commandContext) *cobra.Command {
	var view string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the shopping list",
		RunE: func(cmd *cobra.Command, args []string) error {
			view = strings.ToLower(strings.TrimSpace(view))
			switch view {
			case viewCommon, viewRecipe, viewAll:
			default:
				return fmt.Errorf("invalid --view %q (use common, recipe, or all)", view)
			}
			return ctx.withService(cmd, func(c context.Context, svc *api.Service) error {
				views, err := svc.ShoppingViews(c)
				if err != nil {
					return err
				}
				if view == viewCommon {
					views.ByRecipe = nil
				}
				if view == viewRecipe {
					views.Common = nil
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, views)
				}
				out := cmd.OutOrStdout()
				if len(views.Common) == 0 && len(views.ByRecipe) == 0 {
					fmt.Fprintln(out, "Shopping list is empty")
					return nil
				}
				colorize := ctx.colorize(out)
				printCommonGroups(out, views.Common, colorize)
				printRecipeGroups(out, views.ByRecipe, colorize)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&view, "view", viewAll, "Which view to show: common, recipe, or all")
	return cmd
}

func printCommonGroups(out io.Writer, groups []shopping.IngredientGroup, colorize bool) {
	if len(groups) == 0 {
		return
	}
	for _, line := range renderSectionHeader("Common ingredients", colorize) {
		fmt.Fprintln(out, line)
	}
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{
			checkbox(g.Checked, colorize),
			dimChecked(g.Key, g.Checked, colorize),
			amount(g.Quantity, g.Unit),
			strings.Join(g.RecipeSources, ", "),
			fmt.Sprintf("%d/%d", g.UncheckedCount, g.InstanceCount),
			string(g.Category),
		})
	}
	headers := []string{"", "Ingredient", "Amount", "Recipes", "Left", "Category"}
	fmt.Fprintln(out, renderTable(headers, rows, []columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignRight}))
}

func printRecipeGroups(out io.Writer, groups []shopping.RecipeGroup, colorize bool) {
	if len(groups) == 0 {
		return
	}
	for _, line := range renderSectionHeader("By recipe", colorize) {
		fmt.Fprintln(out, line)
	}
	for _, g := range groups {
		rows := make([][]string, 0, len(g.Entries))
		for _, e := range g.Entries {
			rows = append(rows, []string{
				checkbox(e.Checked, colorize),
				dimChecked(e.OriginalText, e.Checked, colorize),
				string(e.Category),
				e.ID,
			})
		}
		fmt.Fprintln(out, renderTitledTable(g.Name, []string{"", "Item", "Category", "ID"}, rows, nil))
	}
}

func newShopToggleCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <entry-id>...",
		Short: "Check or uncheck shopping list entries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(c context.Context, svc *api.Service) error {
				toggled := make([]shopping.Entry, 0, len(args))
				for _, id := range args {
					entry, err := svc.ToggleEntry(c, strings.TrimSpace(id))
					if err != nil {
						return err
					}
					toggled = append(toggled, entry)
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, toggled)
				}
				out := cmd.OutOrStdout()
				for _, e := range toggled {
					fmt.Fprintf(out, "%s %s\n", checkbox(e.Checked, false), e.OriginalText)
				}
				return nil
			})
		},
	}
}

func newShopToggleGroupCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle-group <ingredient>...",
		Short: "Check or uncheck every entry of a common ingredient",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(c context.Context, svc *api.Service) error {
				changed, err := svc.ToggleGroup(c, strings.Join(args, " "))
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, changed)
				}
				state := "unchecked"
				if len(changed) > 0 && changed[0].Checked {
					state = "checked"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Marked %d entries %s\n", len(changed), state)
				return nil
			})
		},
	}
}

func newShopRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <recipe-id|name>",
		Short: "Remove a recipe's entries from the shopping list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(c context.Context, svc *api.Service) error {
				removed, err := svc.RemoveRecipeFromList(c, args[0])
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, map[string]int{"removed": removed})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d entries\n", removed)
				return nil
			})
		},
	}
}

func newShopClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the shopping list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(c context.Context, svc *api.Service) error {
				if err := svc.ClearList(c); err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, map[string]bool{"cleared": true})
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Shopping list cleared")
				return nil
			})
		},
	}
}
