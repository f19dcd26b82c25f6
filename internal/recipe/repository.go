package recipe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"larder/internal/logging"
	"larder/internal/store"
)

// ErrNameRequired is returned when saving a recipe without a name.
var ErrNameRequired = errors.New("recipe name is required")

// Repository persists recipes in the keyed store.
type Repository struct {
	recipes *store.Collection[Recipe]
	logger  *slog.Logger
	now     func() time.Time
	newID   func() string
}

// NewRepository binds a repository to st. logger may be nil.
func NewRepository(st store.Store, logger *slog.Logger) *Repository {
	return &Repository{
		recipes: store.NewCollection(st, store.CollectionRecipes, recipeID),
		logger:  logging.NewComponentLogger(logger, "recipe"),
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Create assigns an id and timestamps and stores r.
func (r *Repository) Create(ctx context.Context, rec Recipe) (Recipe, error) {
	rec = rec.clean()
	if rec.Name == "" {
		return Recipe{}, ErrNameRequired
	}
	now := r.now().UTC()
	rec.ID = r.newID()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	if err := r.recipes.Add(ctx, rec); err != nil {
		return Recipe{}, fmt.Errorf("create recipe: %w", err)
	}
	r.logger.Info("recipe created",
		logging.String(logging.FieldRecipeID, rec.ID),
		logging.String("name", rec.Name),
		logging.Int("ingredients", len(rec.Ingredients)),
	)
	return rec, nil
}

// Get returns the recipe with id, or nil when it does not exist.
func (r *Repository) Get(ctx context.Context, id string) (*Recipe, error) {
	rec, err := r.recipes.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	return rec, nil
}

// FindByName returns the first recipe whose name matches name ignoring case,
// or nil.
func (r *Repository) FindByName(ctx context.Context, name string) (*Recipe, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if strings.EqualFold(all[i].Name, name) {
			return &all[i], nil
		}
	}
	return nil, nil
}

// List returns every recipe sorted by name.
func (r *Repository) List(ctx context.Context) ([]Recipe, error) {
	all, err := r.recipes.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	sort.SliceStable(all, func(i, j int) bool {
		a, b := strings.ToLower(all[i].Name), strings.ToLower(all[j].Name)
		if a != b {
			return a < b
		}
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})
	return all, nil
}

// Update replaces a stored recipe, keeping its creation time.
func (r *Repository) Update(ctx context.Context, rec Recipe) (Recipe, error) {
	rec = rec.clean()
	if rec.Name == "" {
		return Recipe{}, ErrNameRequired
	}
	existing, err := r.Get(ctx, rec.ID)
	if err != nil {
		return Recipe{}, err
	}
	if existing == nil {
		return Recipe{}, fmt.Errorf("update recipe %s: %w", rec.ID, store.ErrNotFound)
	}
	rec.CreatedAt = existing.CreatedAt
	rec.UpdatedAt = r.now().UTC()
	if err := r.recipes.Update(ctx, rec); err != nil {
		return Recipe{}, fmt.Errorf("update recipe: %w", err)
	}
	r.logger.Info("recipe updated", logging.String(logging.FieldRecipeID, rec.ID))
	return rec, nil
}

// Delete removes the recipe with id. Shopping list entries are not touched.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.recipes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	r.logger.Info("recipe deleted", logging.String(logging.FieldRecipeID, id))
	return nil
}
