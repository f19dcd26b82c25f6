package testsupport

import (
	"testing"

	"larder/internal/config"
	"larder/internal/store"
)

// MustOpenStore opens the SQLite store under cfg's data directory and
// registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.SQLite {
	t.Helper()

	st, err := store.OpenDir(cfg.Paths.DataDir)
	if err != nil {
		t.Fatalf("store.OpenDir: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}
