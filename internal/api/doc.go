// Package api is the use-case layer between the CLI and the services. It
// joins the recipe repository, the shopping list service, and the store so
// that commands never reach into persistence directly.
//
// # Key Types
//
// Service: the facade. It owns one recipe.Repository, one shopping.Service,
// and the shared normalization cache.
//
// RecipeSummary: list-friendly view of a recipe with its ingredient count.
//
// # Lookup
//
// Commands refer to recipes by id or by name. Resolve tries the id first and
// then a case-insensitive name match, returning ErrRecipeNotFound when
// neither hits.
//
// # Design Notes
//
// Deleting a recipe removes its shopping list entries first, so the list never
// shows lines for a recipe that no longer exists. Scaling and unit conversion
// in RecipeCard are display-only.
package api
