package db

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/skirmish/internal/model"
	"github.com/udisondev/skirmish/internal/profile"
	"github.com/udisondev/skirmish/internal/testutil"
)

const defaultTestTimeout = 2 * time.Minute

func backends(t *testing.T) map[string]func(*testing.T) profileStore {
	t.Helper()
	return map[string]func(*testing.T) profileStore{
		"sqlite":   func(t *testing.T) profileStore { return setupSQLite(t) },
		"postgres": func(t *testing.T) profileStore { return setupPostgres(t) },
	}
}

func TestProfileRepository_GetProfileCreates(t *testing.T) {
	for name, setup := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := testutil.ContextWithTimeout(t, defaultTestTimeout)
			repo := setup(t)

			p, err := repo.GetProfile(ctx, testutil.Fixtures.PlayerAlice)
			require.NoError(t, err)
			assert.Equal(t, model.PlayerProfile{Name: "Alice", Score: 0}, p)

			all, err := repo.LoadAll(ctx)
			require.NoError(t, err)
			assert.Equal(t, map[string]model.PlayerProfile{"Alice": {Name: "Alice"}}, all)

			// Second call must not create a duplicate or reset anything.
			_, err = repo.GetProfile(ctx, "Alice")
			require.NoError(t, err)
			all, err = repo.LoadAll(ctx)
			require.NoError(t, err)
			assert.Len(t, all, 1)
		})
	}
}

func TestProfileRepository_UpdateHighScore(t *testing.T) {
	for name, setup := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := testutil.ContextWithTimeout(t, defaultTestTimeout)
			repo := setup(t)

			require.NoError(t, repo.UpdateHighScore(ctx, testutil.Fixtures.PlayerBob, 50))
			p, err := repo.GetProfile(ctx, "Bob")
			require.NoError(t, err)
			assert.Equal(t, 50, p.Score)

			require.NoError(t, repo.UpdateHighScore(ctx, "Bob", 20))
			p, err = repo.GetProfile(ctx, "Bob")
			require.NoError(t, err)
			assert.Equal(t, 20, p.Score)

			assert.ErrorIs(t, repo.UpdateHighScore(ctx, "Bob", -1), profile.ErrNegativeScore)
			_, err = repo.GetProfile(ctx, "")
			assert.ErrorIs(t, err, profile.ErrInvalidName)
		})
	}
}

func TestProfileRepository_BehindCache(t *testing.T) {
	for name, setup := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := testutil.ContextWithTimeout(t, defaultTestTimeout)
			repo := setup(t)
			cache := profile.NewCache(repo, testutil.DiscardLogger())

			require.NoError(t, cache.UpdateHighScore(ctx, "Carol", 100))
			p, err := cache.GetProfile(ctx, "Carol")
			require.NoError(t, err)
			assert.Equal(t, 100, p.Score)

			all, err := repo.LoadAll(ctx)
			require.NoError(t, err)
			assert.Equal(t, 100, all["Carol"].Score)
		})
	}
}

func TestSQLiteProfileRepository_ClosedDBIsStorageError(t *testing.T) {
	repo := setupSQLite(t)
	require.NoError(t, repo.db.Close())

	_, err := repo.GetProfile(context.Background(), "Alice")
	require.Error(t, err)
	assert.ErrorIs(t, err, profile.ErrStorage)

	err = repo.UpdateHighScore(context.Background(), "Alice", 10)
	assert.ErrorIs(t, err, profile.ErrStorage)
}

func TestRunSQLiteMigrations_Idempotent(t *testing.T) {
	repo := setupSQLite(t)
	require.NoError(t, RunSQLiteMigrations(context.Background(), repo.db))
}

func TestSQLiteProfileRepository_LogsCreationToGivenLogger(t *testing.T) {
	ctx := testutil.ContextWithTimeout(t, defaultTestTimeout)

	var buf bytes.Buffer
	repo := setupSQLiteWithLogger(t, slog.New(slog.NewTextHandler(&buf, nil)))

	for range 2 {
		_, err := repo.GetProfile(ctx, testutil.Fixtures.PlayerAlice)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, strings.Count(buf.String(), "created player profile"))
	assert.Contains(t, buf.String(), "player=Alice")
}
