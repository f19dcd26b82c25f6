package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"larder/internal/config"
	"larder/internal/ingredient"
	"larder/internal/logging"
	"larder/internal/recipe"
	"larder/internal/shopping"
	"larder/internal/store"
	"larder/internal/textutil"
	"larder/internal/units"
)

// ErrRecipeNotFound is returned when a recipe reference matches nothing.
var ErrRecipeNotFound = errors.New("recipe not found")

// Options configures a Service.
type Options struct {
	Logger        *slog.Logger
	FallbackLabel string
	KeyCacheSize  int
}

// OptionsFromConfig derives service options from application config.
func OptionsFromConfig(cfg *config.Config, logger *slog.Logger) Options {
	if cfg == nil {
		return Options{Logger: logger}
	}
	return Options{
		Logger:        logger,
		FallbackLabel: cfg.Shopping.FallbackRecipeLabel,
		KeyCacheSize:  cfg.Shopping.KeyCacheSize,
	}
}

// Service exposes recipe and shopping list use cases.
type Service struct {
	recipes  *recipe.Repository
	shopping *shopping.Service
	keys     *ingredient.KeyCache
	logger   *slog.Logger
}

// NewService constructs a Service around st.
func NewService(st store.Store, opts Options) (*Service, error) {
	if st == nil {
		return nil, errors.New("api: store is required")
	}
	keys, err := ingredient.NewKeyCache(opts.KeyCacheSize)
	if err != nil {
		return nil, err
	}
	return &Service{
		recipes: recipe.NewRepository(st, opts.Logger),
		shopping: shopping.NewService(st,
			shopping.WithKeyCache(keys),
			shopping.WithFallbackLabel(opts.FallbackLabel),
			shopping.WithLogger(opts.Logger),
		),
		keys:   keys,
		logger: logging.NewComponentLogger(opts.Logger, "api"),
	}, nil
}

// CreateRecipe stores a new recipe.
func (s *Service) CreateRecipe(ctx context.Context, r recipe.Recipe) (recipe.Recipe, error) {
	return s.recipes.Create(ctx, r)
}

// ListRecipes returns recipe summaries sorted by name.
func (s *Service) ListRecipes(ctx context.Context) ([]RecipeSummary, error) {
	all, err := s.recipes.List(ctx)
	if err != nil {
		return nil, err
	}
	return FromRecipes(all), nil
}

// Resolve finds a recipe by id, then by name.
func (s *Service) Resolve(ctx context.Context, ref string) (recipe.Recipe, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return recipe.Recipe{}, fmt.Errorf("%w: empty reference", ErrRecipeNotFound)
	}
	found, err := s.recipes.Get(ctx, ref)
	if err != nil {
		return recipe.Recipe{}, err
	}
	if found == nil {
		if found, err = s.recipes.FindByName(ctx, ref); err != nil {
			return recipe.Recipe{}, err
		}
	}
	if found == nil {
		if suggestion := s.closestName(ctx, ref); suggestion != "" {
			return recipe.Recipe{}, fmt.Errorf("%w: %q (did you mean %q?)", ErrRecipeNotFound, ref, suggestion)
		}
		return recipe.Recipe{}, fmt.Errorf("%w: %q", ErrRecipeNotFound, ref)
	}
	return *found, nil
}

// SearchRecipes ranks recipes by how well their name and ingredient keys
// match query. limit <= 0 returns every match.
func (s *Service) SearchRecipes(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	all, err := s.recipes.List(ctx)
	if err != nil {
		return nil, err
	}
	docs := make([]string, len(all))
	for i, r := range all {
		docs[i] = s.searchDocument(r)
	}
	ranked := textutil.Rank(query, docs)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	results := make([]SearchResult, 0, len(ranked))
	for _, hit := range ranked {
		results = append(results, SearchResult{Recipe: FromRecipe(all[hit.Index]), Score: hit.Score})
	}
	return results, nil
}

func (s *Service) searchDocument(r recipe.Recipe) string {
	parts := make([]string, 0, len(r.Ingredients)+len(r.Tags)+1)
	parts = append(parts, r.Name)
	parts = append(parts, r.Tags...)
	for _, line := range r.Ingredients {
		parts = append(parts, s.keys.Key(line))
	}
	return strings.Join(parts, " ")
}

// closestName returns the stored name most similar to ref, or "" when no
// name shares a token with it.
func (s *Service) closestName(ctx context.Context, ref string) string {
	all, err := s.recipes.List(ctx)
	if err != nil || len(all) == 0 {
		return ""
	}
	names := make([]string, len(all))
	for i, r := range all {
		names[i] = r.Name
	}
	ranked := textutil.Rank(ref, names)
	if len(ranked) == 0 {
		return ""
	}
	return names[ranked[0].Index]
}

// DeleteRecipe removes a recipe and every shopping list entry added from it.
func (s *Service) DeleteRecipe(ctx context.Context, ref string) (DeleteRecipeResult, error) {
	r, err := s.Resolve(ctx, ref)
	if err != nil {
		return DeleteRecipeResult{}, err
	}
	removed, err := s.shopping.RemoveRecipe(ctx, r.ID)
	if err != nil {
		return DeleteRecipeResult{}, err
	}
	if err := s.recipes.Delete(ctx, r.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return DeleteRecipeResult{}, fmt.Errorf("%w: %q", ErrRecipeNotFound, ref)
		}
		return DeleteRecipeResult{}, err
	}
	return DeleteRecipeResult{Recipe: FromRecipe(r), RemovedEntries: removed}, nil
}

// AddRecipeToList adds every ingredient line of the referenced recipe to the
// shopping list.
func (s *Service) AddRecipeToList(ctx context.Context, ref string) ([]shopping.Entry, error) {
	r, err := s.Resolve(ctx, ref)
	if err != nil {
		return nil, err
	}
	if len(r.Ingredients) == 0 {
		logging.WarnWithContext(s.logger, "recipe has no ingredients", "empty_recipe",
			logging.String(logging.FieldRecipeID, r.ID),
			logging.String(logging.FieldImpact, "nothing was added to the shopping list"),
		)
	}
	return s.shopping.AddRecipe(ctx, r)
}

// AddItemToList adds a manual entry.
func (s *Service) AddItemToList(ctx context.Context, text string) (shopping.Entry, error) {
	return s.shopping.AddItem(ctx, text)
}

// RemoveRecipeFromList drops the referenced recipe's entries and keeps the
// recipe itself.
func (s *Service) RemoveRecipeFromList(ctx context.Context, ref string) (int, error) {
	r, err := s.Resolve(ctx, ref)
	if err != nil {
		return 0, err
	}
	return s.shopping.RemoveRecipe(ctx, r.ID)
}

// ShoppingViews returns the common and per-recipe views of the list.
func (s *Service) ShoppingViews(ctx context.Context) (shopping.Views, error) {
	return s.shopping.Views(ctx)
}

// ShoppingEntries returns the raw list in insertion order.
func (s *Service) ShoppingEntries(ctx context.Context) ([]shopping.Entry, error) {
	return s.shopping.Entries(ctx)
}

// ToggleEntry flips one entry.
func (s *Service) ToggleEntry(ctx context.Context, id string) (shopping.Entry, error) {
	return s.shopping.Toggle(ctx, id)
}

// ToggleGroup toggles every entry sharing the normalized key of text. text
// may be a key or any ingredient line that normalizes to one.
func (s *Service) ToggleGroup(ctx context.Context, text string) ([]shopping.Entry, error) {
	return s.shopping.ToggleGroup(ctx, s.keys.Key(text))
}

// ClearList empties the shopping list.
func (s *Service) ClearList(ctx context.Context) error {
	return s.shopping.Clear(ctx)
}

// RecipeCard renders the referenced recipe scaled by multiplier in system.
func (s *Service) RecipeCard(ctx context.Context, ref string, multiplier float64, system units.System) (recipe.Card, error) {
	r, err := s.Resolve(ctx, ref)
	if err != nil {
		return recipe.Card{}, err
	}
	return recipe.NewCard(r, multiplier, system, s.keys), nil
}
