package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"larder/internal/logging"
)

// DatabaseFile is the SQLite file name inside the data directory.
const DatabaseFile = "larder.db"

const lockRetryDelay = 25 * time.Millisecond

// SQLite is a Store backed by a single SQLite database. Exclusive also takes
// an advisory file lock so separate CLI processes serialize their
// read-modify-write cycles.
type SQLite struct {
	db     *sqlx.DB
	path   string
	lock   *flock.Flock
	mu     sync.Mutex
	logger *slog.Logger
}

// Option customizes an SQLite store.
type Option func(*SQLite)

// WithLogger attaches a logger for busy retries and lock contention.
func WithLogger(logger *slog.Logger) Option {
	return func(s *SQLite) {
		s.logger = logging.NewComponentLogger(logger, "store")
	}
}

// OpenDir opens the database inside dataDir, creating the directory first.
func OpenDir(dataDir string, opts ...Option) (*SQLite, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory %q: %w", dataDir, err)
	}
	return OpenSQLite(filepath.Join(dataDir, DatabaseFile), opts...)
}

// OpenSQLite initializes or connects to the database at path.
func OpenSQLite(path string, opts ...Option) (*SQLite, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	s := &SQLite{
		db:     db,
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Path returns the database file path.
func (s *SQLite) Path() string { return s.path }

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

type itemRow struct {
	ID   string `db:"id"`
	Data []byte `db:"data"`
}

// AddItem implements Store.
func (s *SQLite) AddItem(ctx context.Context, collection string, rec Record) error {
	if rec.ID == "" {
		return ErrInvalidRecord
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.execWithRetry(ctx,
		`INSERT INTO items (collection, id, data, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		collection, rec.ID, string(rec.Data), now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("add %s/%s: %w", collection, rec.ID, ErrDuplicate)
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetAllItems implements Store. Records come back in insertion order.
func (s *SQLite) GetAllItems(ctx context.Context, collection string) ([]Record, error) {
	ctx = ensureContext(ctx)
	var rows []itemRow
	err := retryOnBusy(ctx, s.logger, func() error {
		rows = rows[:0]
		return s.db.SelectContext(ctx, &rows,
			`SELECT id, data FROM items WHERE collection = ? ORDER BY rowid`, collection)
	})
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, Record{ID: row.ID, Data: row.Data})
	}
	return out, nil
}

// UpdateItem implements Store.
func (s *SQLite) UpdateItem(ctx context.Context, collection, id string, rec Record) error {
	res, err := s.execWithRetry(ctx,
		`UPDATE items SET data = ?, updated_at = ? WHERE collection = ? AND id = ?`,
		string(rec.Data), time.Now().UTC().Format(time.RFC3339Nano), collection, id,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return requireAffected(res, "update", collection, id)
}

// DeleteItem implements Store.
func (s *SQLite) DeleteItem(ctx context.Context, collection, id string) error {
	res, err := s.execWithRetry(ctx,
		`DELETE FROM items WHERE collection = ? AND id = ?`, collection, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return requireAffected(res, "delete", collection, id)
}

// ClearStore implements Store.
func (s *SQLite) ClearStore(ctx context.Context, collection string) error {
	if _, err := s.execWithRetry(ctx, `DELETE FROM items WHERE collection = ?`, collection); err != nil {
		return fmt.Errorf("clear collection %s: %w", collection, err)
	}
	return nil
}

// Exclusive implements Locker. It holds an in-process mutex and an advisory
// lock on the database's lock file while fn runs.
func (s *SQLite) Exclusive(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx = ensureContext(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	ok, err := s.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("acquire store lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("acquire store lock: %s is held by another process", s.lock.Path())
	}
	defer func() {
		if err := s.lock.Unlock(); err != nil {
			s.logger.Warn("failed to release store lock",
				logging.String("lock", s.lock.Path()),
				logging.Error(err),
			)
		}
	}()
	return fn(ctx)
}

func requireAffected(res interface{ RowsAffected() (int64, error) }, op, collection, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s/%s: %w", op, collection, id, ErrNotFound)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteConstraintPrimaryKey {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "PRIMARY KEY")
}
