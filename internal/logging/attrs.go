package logging

import (
	"context"
	"log/slog"
	"time"
)

// Standard field names.
const (
	FieldComponent = "component"
	FieldRecipeID  = "recipe_id"
	FieldEntryID   = "entry_id"
	FieldEventType = "event_type"
	FieldErrorHint = "error_hint"
	FieldImpact    = "impact"
)

type Attr = slog.Attr

func Bool(key string, value bool) Attr { return slog.Bool(key, value) }

func Duration(key string, value time.Duration) Attr { return slog.Duration(key, value) }

func Int(key string, value int) Attr { return slog.Int(key, value) }

func String(key string, value string) Attr { return slog.String(key, value) }

func Error(err error) Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

func NewNop() *slog.Logger {
	return slog.New(NoopHandler{})
}

// NewComponentLogger creates a logger with a standardized component attribute.
// If logger is nil, a no-op logger is used as the base.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(String(FieldComponent, component))
}

// warnDefaults fill in the context fields a warning is expected to carry.
var warnDefaults = []Attr{
	slog.String(FieldErrorHint, "see larder.log for details"),
	slog.String(FieldImpact, "the command finished with warnings"),
}

// WarnWithContext logs a warning tagged with eventType. FieldErrorHint and
// FieldImpact get default values unless attrs already sets them.
func WarnWithContext(logger *slog.Logger, msg, eventType string, attrs ...Attr) {
	if logger == nil {
		return
	}
	set := make(map[string]bool, len(attrs))
	args := make([]any, 0, len(attrs)+len(warnDefaults)+1)
	for _, a := range attrs {
		set[a.Key] = true
		args = append(args, a)
	}
	if !set[FieldEventType] {
		args = append(args, slog.String(FieldEventType, eventType))
	}
	for _, d := range warnDefaults {
		if !set[d.Key] {
			args = append(args, d)
		}
	}
	logger.Warn(msg, args...)
}

// NoopHandler discards all log output.
type NoopHandler struct{}

func (NoopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (NoopHandler) Handle(context.Context, slog.Record) error { return nil }

func (NoopHandler) WithAttrs([]slog.Attr) slog.Handler { return NoopHandler{} }

func (NoopHandler) WithGroup(string) slog.Handler { return NoopHandler{} }
