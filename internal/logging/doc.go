// Package logging assembles structured slog loggers used across larder.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes attribute helpers plus field-name constants so
// services tag recipe and shopping-list events consistently. A no-op logger
// is provided for tests and wiring code that cannot fail.
package logging
