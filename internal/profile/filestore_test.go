package profile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/skirmish/internal/model"
	"github.com/udisondev/skirmish/internal/testutil"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(filepath.Join(t.TempDir(), "scores.yaml"), testutil.DiscardLogger())
	require.NoError(t, err)
	return s
}

func TestNewFileStore_InitializesEmptyFile(t *testing.T) {
	s := newTestFileStore(t)

	_, err := os.Stat(s.Path())
	require.NoError(t, err, "store file must exist after construction")

	all, err := s.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestFileStore_LoadMissingFileIsEmpty(t *testing.T) {
	s := newTestFileStore(t)
	require.NoError(t, os.Remove(s.Path()))

	all, err := s.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestFileStore_GetProfileCreatesAndPersists(t *testing.T) {
	ctx := context.Background()
	s := newTestFileStore(t)

	p, err := s.GetProfile(ctx, testutil.Fixtures.PlayerAlice)
	require.NoError(t, err)
	assert.Equal(t, model.PlayerProfile{Name: "Alice", Score: 0}, p)

	all, err := s.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]model.PlayerProfile{"Alice": {Name: "Alice", Score: 0}}, all)
}

func TestFileStore_UpdateHighScore(t *testing.T) {
	ctx := context.Background()
	s := newTestFileStore(t)

	require.NoError(t, s.UpdateHighScore(ctx, testutil.Fixtures.PlayerBob, 50))
	p, err := s.GetProfile(ctx, testutil.Fixtures.PlayerBob)
	require.NoError(t, err)
	assert.Equal(t, 50, p.Score)

	// Score is stored verbatim, even when lower.
	require.NoError(t, s.UpdateHighScore(ctx, testutil.Fixtures.PlayerBob, 10))
	p, err = s.GetProfile(ctx, testutil.Fixtures.PlayerBob)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Score)
}

func TestFileStore_RoundTrip(t *testing.T) {
	s := newTestFileStore(t)
	want := map[string]model.PlayerProfile{
		"Alice": {Name: "Alice", Score: 0},
		"Bob":   {Name: "Bob", Score: 50},
		"Carol": {Name: "Carol", Score: 200},
	}

	require.NoError(t, s.SaveAll(want))

	reopened, err := NewFileStore(s.Path(), testutil.DiscardLogger())
	require.NoError(t, err)
	got, err := reopened.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileStore_Validation(t *testing.T) {
	ctx := context.Background()
	s := newTestFileStore(t)

	_, err := s.GetProfile(ctx, " ")
	assert.ErrorIs(t, err, ErrInvalidName)

	err = s.UpdateHighScore(ctx, "Alice", -1)
	assert.ErrorIs(t, err, ErrNegativeScore)

	all, err := s.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, all, "rejected calls must not touch the file")
}

func TestFileStore_CorruptFileIsStorageError(t *testing.T) {
	ctx := context.Background()
	s := newTestFileStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not: [valid"), 0o644))

	_, err := s.GetProfile(ctx, "Alice")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStorage))

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "decode", storageErr.Op)
}

func TestFileStore_UnwritableDirIsStorageError(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	// Parent "directory" is a regular file, so nothing can be created under it.
	_, err := NewFileStore(filepath.Join(blocker, "scores.yaml"), testutil.DiscardLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorage)

	s := &FileStore{path: filepath.Join(blocker, "scores.yaml"), log: testutil.DiscardLogger()}
	err = s.UpdateHighScore(ctx, "Alice", 10)
	assert.ErrorIs(t, err, ErrStorage)
}

func TestFileStore_CancelledContext(t *testing.T) {
	s := newTestFileStore(t)

	_, err := s.GetProfile(testutil.CancelledContext(), "Alice")
	assert.ErrorIs(t, err, context.Canceled)
}
