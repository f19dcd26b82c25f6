package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"larder/internal/api"
	"larder/internal/recipe"
)

func newRecipeCommand(ctx *commandContext) *cobra.Command {
	recipeCmd := &cobra.Command{
		Use:   "recipe",
		Short: "Manage stored recipes",
	}

	recipeCmd.AddCommand(newRecipeAddCommand(ctx))
	recipeCmd.AddCommand(newRecipeListCommand(ctx))
	recipeCmd.AddCommand(newRecipeShowCommand(ctx))
	recipeCmd.AddCommand(newRecipeSearchCommand(ctx))
	recipeCmd.AddCommand(newRecipeDeleteCommand(ctx))

	return recipeCmd
}

func newRecipeAddCommand(ctx *commandContext) *cobra.Command {
	var draft recipe.Recipe

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Store a new recipe",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(draft.Name) == "" {
				return errors.New("--name is required")
			}
			return ctx.withService(cmd, func(c context.Context, svc *api.Service) error {
				created, err := svc.CreateRecipe(c, draft)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, created)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added recipe %q (%s) with %d ingredients\n",
					created.Name, created.ID, len(created.Ingredients))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&draft.Name, "name", "n", "", "Recipe name")
	cmd.Flags().StringVarP(&draft.Yield, "yield", "y", "", "Yield, such as \"4 servings\"")
	cmd.Flags().StringArrayVarP(&draft.Ingredients, "ingredient", "i", nil, "Ingredient line (repeatable)")
	cmd.Flags().StringArrayVar(&draft.Instructions, "step", nil, "Instruction step (repeatable)")
	cmd.Flags().StringSliceVar(&draft.Tags, "tag", nil, "Tags (comma separated or repeatable)")
	cmd.Flags().StringVar(&draft.Notes, "notes", "", "Free-form notes")
	return cmd
}

func newRecipeListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(c context.Context, svc *api.Service) error {
				summaries, err := svc.ListRecipes(c)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, summaries)
				}
				out := cmd.OutOrStdout()
				if len(summaries) == 0 {
					fmt.Fprintln(out, "No recipes stored")
					return nil
				}
				rows := make([][]string, 0, len(summaries))
				for _, s := range summaries {
					rows = append(rows, []string{
						s.ID,
						s.Name,
						s.Yield,
						strconv.Itoa(s.Ingredients),
						strings.Join(s.Tags, ", "),
					})
				}
				headers := []string{"ID", "Name", "Yield", "Ingredients", "Tags"}
				fmt.Fprintln(out, renderTable(headers, rows, []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight}))
				return nil
			})
		},
	}
}

func newRecipeSearchCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>...",
		Short: "Find recipes by name, tag, or ingredient",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(c context.Context, svc *api.Service) error {
				results, err := svc.SearchRecipes(c, strings.Join(args, " "), limit)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, results)
				}
				out := cmd.OutOrStdout()
				if len(results) == 0 {
					fmt.Fprintln(out, "No matching recipes")
					return nil
				}
				rows := make([][]string, 0, len(results))
				for _, r := range results {
					rows = append(rows, []string{
						r.Recipe.ID,
						r.Recipe.Name,
						strconv.FormatFloat(r.Score, 'f', 2, 64),
					})
				}
				fmt.Fprintln(out, renderTable([]string{"ID", "Name", "Score"}, rows, []columnAlignment{alignLeft, alignLeft, alignRight}))
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of results (0 for all)")
	return cmd
}

func newRecipeShowCommand(ctx *commandContext) *cobra.Command {
	var scale float64
	var unitsFlag string

	cmd := &cobra.Command{
		Use:   "show <id|name>",
		Short: "Show a recipe, optionally scaled and converted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if scale <= 0 {
				return errors.New("--scale must be positive")
			}
			system, err := resolveSystem(ctx, unitsFlag)
			if err != nil {
				return err
			}
			return ctx.withService(cmd, func(c context.Context, svc *api.Service) error {
				card, err := svc.RecipeCard(c, args[0], scale, system)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, card)
				}
				printRecipeCard(cmd, card, ctx.colorize(cmd.OutOrStdout()))
				return nil
			})
		},
	}

	cmd.Flags().Float64Var(&scale, "scale", 1, "Multiplier applied to quantities and yield")
	cmd.Flags().StringVar(&unitsFlag, "units", "", "Unit system: imperial or metric (default from config)")
	return cmd
}

func printRecipeCard(cmd *cobra.Command, card recipe.Card, colorize bool) {
	out := cmd.OutOrStdout()
	for _, line := range renderSectionHeader(card.Name, colorize) {
		fmt.Fprintln(out, line)
	}
	if card.Yield != "" {
		fmt.Fprintf(out, "Yield: %s\n", card.Yield)
	}
	if card.Multiplier != 1 {
		fmt.Fprintf(out, "Scale: x%s\n", strconv.FormatFloat(card.Multiplier, 'f', -1, 64))
	}
	if len(card.Tags) > 0 {
		fmt.Fprintf(out, "Tags: %s\n", strings.Join(card.Tags, ", "))
	}

	if len(card.Ingredients) > 0 {
		rows := make([][]string, 0, len(card.Ingredients))
		for _, line := range card.Ingredients {
			rows = append(rows, []string{line.Display, string(line.Category)})
		}
		fmt.Fprintln(out, renderTable([]string{"Ingredient", "Category"}, rows, nil))
	}

	if len(card.Instructions) > 0 {
		fmt.Fprintln(out)
		for i, step := range card.Instructions {
			fmt.Fprintf(out, "%d. %s\n", i+1, step)
		}
	}
	if card.Notes != "" {
		fmt.Fprintf(out, "\nNotes: %s\n", card.Notes)
	}
}

func newRecipeDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id|name>",
		Short: "Delete a recipe and its shopping list entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(c context.Context, svc *api.Service) error {
				result, err := svc.DeleteRecipe(c, args[0])
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, result)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted recipe %q", result.Recipe.Name)
				if result.RemovedEntries > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), " and %d shopping list entries", result.RemovedEntries)
				}
				fmt.Fprintln(cmd.OutOrStdout())
				return nil
			})
		},
	}
}
