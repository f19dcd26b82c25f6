package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"larder/internal/ingredient"
	"larder/internal/quantity"
	"larder/internal/units"
	"larder/internal/yield"
)

func newPipelineCommands(ctx *commandContext) []*cobra.Command {
	return []*cobra.Command{
		newParseCommand(ctx),
		newNormalizeCommand(ctx),
		newCategorizeCommand(ctx),
		newConvertCommand(ctx),
		newYieldCommand(ctx),
	}
}

type parsedLine struct {
	Line        string              `json:"line"`
	Quantity    *float64            `json:"quantity,omitempty"`
	Unit        string              `json:"unit,omitempty"`
	Description string              `json:"description"`
	Key         string              `json:"key"`
	Category    ingredient.Category `json:"category"`
}

func newParseCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <line>...",
		Short: "Split ingredient lines into quantity, unit, and description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]parsedLine, 0, len(args))
			for _, line := range args {
				p := ingredient.ParseLine(line)
				key := ingredient.Normalize(line)
				results = append(results, parsedLine{
					Line:        strings.TrimSpace(line),
					Quantity:    p.Quantity,
					Unit:        p.Unit,
					Description: p.Description,
					Key:         key,
					Category:    ingredient.Categorize(key),
				})
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, results)
			}

			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{
					r.Line,
					quantity.FormatOptional(r.Quantity),
					r.Unit,
					r.Description,
					r.Key,
					string(r.Category),
				})
			}
			headers := []string{"Line", "Qty", "Unit", "Description", "Key", "Category"}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, []columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}
}

func newNormalizeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <line>...",
		Short: "Print the matching key for ingredient lines",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			type keyed struct {
				Line string `json:"line"`
				Key  string `json:"key"`
			}
			results := make([]keyed, 0, len(args))
			for _, line := range args {
				results = append(results, keyed{Line: strings.TrimSpace(line), Key: ingredient.Normalize(line)})
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, results)
			}
			out := cmd.OutOrStdout()
			for _, r := range results {
				fmt.Fprintln(out, r.Key)
			}
			return nil
		},
	}
}

func newCategorizeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "categorize <name>...",
		Short: "Show the store section for ingredient names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			type categorized struct {
				Name string `json:"name"`
				ingredient.Match
			}
			results := make([]categorized, 0, len(args))
			for _, name := range args {
				results = append(results, categorized{Name: strings.TrimSpace(name), Match: ingredient.Classify(name)})
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, results)
			}
			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{r.Name, string(r.Category), r.Rule, r.Keyword})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Name", "Category", "Rule", "Keyword"}, rows, nil))
			return nil
		},
	}
}

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "convert <quantity> <unit>...",
		Short: "Convert an amount to another unit system",
		Long:  "Convert an amount to another unit system. Quote mixed numbers (\"1 1/2\"); multi-word units such as fl oz may be given unquoted.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, ok := quantity.Parse(args[0])
			if !ok {
				return fmt.Errorf("invalid quantity %q", args[0])
			}
			unit := strings.Join(args[1:], " ")
			system, err := resolveSystem(ctx, target)
			if err != nil {
				return err
			}

			result := units.Convert(&value, unit, system)
			converted := result.Value != &value
			if ctx.jsonOutput() {
				return writeJSON(cmd, map[string]any{
					"quantity":  value,
					"unit":      unit,
					"system":    system.String(),
					"value":     result.Value,
					"result":    result.Unit,
					"converted": converted,
				})
			}
			out := cmd.OutOrStdout()
			if !converted {
				fmt.Fprintf(out, "%s (no %s conversion for %q)\n", amount(&value, unit), system, unit)
				return nil
			}
			fmt.Fprintf(out, "%s = %s\n", amount(&value, unit), amount(result.Value, result.Unit))
			return nil
		},
	}
	cmd.Flags().StringVar(&target, "to", "", "Target unit system: imperial or metric (default from config)")
	return cmd
}

func newYieldCommand(ctx *commandContext) *cobra.Command {
	var scale float64

	cmd := &cobra.Command{
		Use:   "yield <text>...",
		Short: "Scale a yield such as \"4 servings\"",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if scale <= 0 {
				return errors.New("--scale must be positive")
			}
			text := strings.Join(args, " ")
			parsed := yield.Parse(text)
			scaled := yield.FormatScaled(text, scale)
			if ctx.jsonOutput() {
				return writeJSON(cmd, map[string]any{
					"input":    text,
					"quantity": parsed.Quantity,
					"unit":     parsed.Unit,
					"scale":    scale,
					"output":   scaled,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), scaled)
			return nil
		},
	}
	cmd.Flags().Float64Var(&scale, "scale", 1, "Multiplier applied to the yield")
	return cmd
}

// resolveSystem picks the flag value when set and the configured system
// otherwise.
func resolveSystem(ctx *commandContext, flag string) (units.System, error) {
	if strings.TrimSpace(flag) != "" {
		return units.ParseSystem(flag)
	}
	if cfg := ctx.configValue(); cfg != nil {
		return cfg.UnitSystem(), nil
	}
	return units.Imperial, nil
}
