package impl

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"lineconnect/internal/infra/persistence/postgres"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func int64Ptr(v int64) *int64 {
	return &v
}

// newSQLiteDB opens a migrated database for tests that need real unique indexes.
func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := postgres.OpenSQLite(filepath.Join(t.TempDir(), "impl.db"))
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(context.Background(), db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
