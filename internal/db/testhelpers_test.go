package db

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/skirmish/internal/model"
	"github.com/udisondev/skirmish/internal/profile"
	"github.com/udisondev/skirmish/internal/testutil"
)

// profileStore is the subset both SQL repositories share.
type profileStore interface {
	profile.Repository
	LoadAll(ctx context.Context) (map[string]model.PlayerProfile, error)
}

// setupPostgres поднимает контейнер, применяет миграции и возвращает repository.
func setupPostgres(t *testing.T) *PostgresProfileRepository {
	t.Helper()
	dsn, pool := testutil.SetupTestDB(t)

	require.NoError(t, RunMigrations(context.Background(), dsn), "running migrations")
	return NewPostgresProfileRepository(pool, testutil.DiscardLogger())
}

// setupSQLite открывает временную SQLite базу с применёнными миграциями.
func setupSQLite(t *testing.T) *SQLiteProfileRepository {
	t.Helper()
	return setupSQLiteWithLogger(t, testutil.DiscardLogger())
}

func setupSQLiteWithLogger(t *testing.T, log *slog.Logger) *SQLiteProfileRepository {
	t.Helper()
	sqlDB, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "profiles.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return NewSQLiteProfileRepository(sqlDB, log)
}
