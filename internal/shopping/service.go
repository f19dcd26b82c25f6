package shopping

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"larder/internal/ingredient"
	"larder/internal/logging"
	"larder/internal/recipe"
	"larder/internal/store"
)

// DefaultFallbackLabel names the recipe group for entries without a recipe.
const DefaultFallbackLabel = "Other items"

var (
	// ErrEntryNotFound is returned when toggling or removing an unknown entry.
	ErrEntryNotFound = errors.New("shopping list entry not found")
	// ErrGroupNotFound is returned when no entry carries the requested key.
	ErrGroupNotFound = errors.New("no shopping list entries share that ingredient")
	// ErrEmptyItem is returned when a manual item has no text.
	ErrEmptyItem = errors.New("item text is required")
)

// Service manages the persisted shopping list.
type Service struct {
	store    store.Store
	entries  *store.Collection[Entry]
	keys     *ingredient.KeyCache
	fallback string
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string
}

// Option configures a Service.
type Option func(*Service)

// WithKeyCache shares a normalization cache with the service.
func WithKeyCache(keys *ingredient.KeyCache) Option {
	return func(s *Service) { s.keys = keys }
}

// WithFallbackLabel sets the group name used for entries without a recipe.
func WithFallbackLabel(label string) Option {
	return func(s *Service) {
		if label = strings.TrimSpace(label); label != "" {
			s.fallback = label
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logging.NewComponentLogger(logger, "shopping") }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService builds a shopping list service backed by st.
func NewService(st store.Store, opts ...Option) *Service {
	s := &Service{
		store:    st,
		entries:  store.NewCollection(st, store.CollectionShoppingList, entryID),
		fallback: DefaultFallbackLabel,
		logger:   logging.NewComponentLogger(nil, "shopping"),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Entries returns every entry in insertion order.
func (s *Service) Entries(ctx context.Context) ([]Entry, error) {
	entries, err := s.entries.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shopping entries: %w", err)
	}
	return entries, nil
}

// Views derives the common-ingredient and per-recipe views from the current
// list.
func (s *Service) Views(ctx context.Context) (Views, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return Views{}, err
	}
	return BuildViews(entries, s.fallback), nil
}

// AddLines adds one entry per non-blank line, attributed to the given recipe.
// Adding the same recipe twice adds its lines twice.
func (s *Service) AddLines(ctx context.Context, recipeID, recipeName string, lines []string) ([]Entry, error) {
	added := make([]Entry, 0, len(lines))
	err := store.WithLock(ctx, s.store, func(ctx context.Context) error {
		at := s.now().UTC()
		for _, line := range lines {
			if strings.TrimSpace(line) == "" {
				continue
			}
			entry := NewEntry(s.newID(), line, recipeID, recipeName, s.keys, at)
			if entry.NormalizedText == "" {
				logging.WarnWithContext(s.logger, "ingredient line has no grouping key",
					"empty_ingredient_key",
					logging.String(logging.FieldRecipeID, recipeID),
					logging.String("line", entry.OriginalText),
					logging.String(logging.FieldImpact, "line is listed under its recipe only"),
				)
			}
			if err := s.entries.Add(ctx, entry); err != nil {
				return fmt.Errorf("add shopping entry: %w", err)
			}
			added = append(added, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("added shopping entries",
		logging.String(logging.FieldRecipeID, recipeID),
		logging.Int("count", len(added)),
	)
	return added, nil
}

// AddRecipe adds every ingredient line of r.
func (s *Service) AddRecipe(ctx context.Context, r recipe.Recipe) ([]Entry, error) {
	return s.AddLines(ctx, r.ID, r.Name, r.Ingredients)
}

// AddItem adds a manual entry that belongs to no recipe.
func (s *Service) AddItem(ctx context.Context, text string) (Entry, error) {
	if strings.TrimSpace(text) == "" {
		return Entry{}, ErrEmptyItem
	}
	added, err := s.AddLines(ctx, "", "", []string{text})
	if err != nil {
		return Entry{}, err
	}
	return added[0], nil
}

// Toggle flips the checked state of one entry.
func (s *Service) Toggle(ctx context.Context, id string) (Entry, error) {
	var toggled Entry
	err := store.WithLock(ctx, s.store, func(ctx context.Context) error {
		entries, err := s.Entries(ctx)
		if err != nil {
			return err
		}
		entry, ok := ToggleEntry(entries, id)
		if !ok {
			return fmt.Errorf("%w: %s", ErrEntryNotFound, id)
		}
		if err := s.entries.Update(ctx, entry); err != nil {
			return fmt.Errorf("update shopping entry: %w", err)
		}
		toggled = entry
		return nil
	})
	if err != nil {
		return Entry{}, err
	}
	s.logger.Debug("toggled shopping entry",
		logging.String(logging.FieldEntryID, id),
		logging.Bool("checked", toggled.Checked),
	)
	return toggled, nil
}

// ToggleGroup checks every entry sharing key, or unchecks them all when they
// are already checked. It returns the entries whose state changed.
func (s *Service) ToggleGroup(ctx context.Context, key string) ([]Entry, error) {
	var changed []Entry
	err := store.WithLock(ctx, s.store, func(ctx context.Context) error {
		entries, err := s.Entries(ctx)
		if err != nil {
			return err
		}
		if !hasKey(entries, key) {
			return fmt.Errorf("%w: %q", ErrGroupNotFound, key)
		}
		changed = ToggleGroup(entries, key)
		for _, entry := range changed {
			if err := s.entries.Update(ctx, entry); err != nil {
				return fmt.Errorf("update shopping entry: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Debug("toggled ingredient group",
		logging.String("key", key),
		logging.Int("changed", len(changed)),
	)
	return changed, nil
}

// Remove deletes one entry.
func (s *Service) Remove(ctx context.Context, id string) error {
	err := s.entries.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	return err
}

// RemoveRecipe deletes every entry added from recipeID and reports how many
// were removed.
func (s *Service) RemoveRecipe(ctx context.Context, recipeID string) (int, error) {
	if recipeID == "" {
		return 0, nil
	}
	removed := 0
	err := store.WithLock(ctx, s.store, func(ctx context.Context) error {
		entries, err := s.Entries(ctx)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if entry.RecipeID != recipeID {
				continue
			}
			if err := s.entries.Delete(ctx, entry.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("remove shopping entry: %w", err)
			}
			removed++
		}
		return nil
	})
	if err != nil {
		return removed, err
	}
	if removed > 0 {
		s.logger.Info("removed recipe from shopping list",
			logging.String(logging.FieldRecipeID, recipeID),
			logging.Int("count", removed),
		)
	}
	return removed, nil
}

// Clear empties the list.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.entries.Clear(ctx); err != nil {
		return fmt.Errorf("clear shopping list: %w", err)
	}
	s.logger.Info("cleared shopping list")
	return nil
}

func hasKey(entries []Entry, key string) bool {
	if key == "" {
		return false
	}
	for _, e := range entries {
		if e.NormalizedText == key {
			return true
		}
	}
	return false
}
