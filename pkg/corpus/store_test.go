package corpus

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// setupTestStore creates a fresh on-disk SQLite database and a Store
// for testing. It uses t.Cleanup to ensure resources are released.
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	dbFile := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite", dbFile+"?_journal_mode=WAL&_busy_timeout=5000")
	require.NoError(t, err, "failed to open database")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, SetupSchema(db), "failed to set up schema")
	// Idempotency: a second call must not fail.
	require.NoError(t, SetupSchema(db))

	s, err := NewStore(db)
	require.NoError(t, err, "NewStore() failed")
	t.Cleanup(s.Close)
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	tokens := []string{"hello", "world", "hello", "kitty"}

	require.NoError(t, s.Insert(ctx, "greetings"))
	info, err := s.GetInfo(ctx, "greetings")
	require.NoError(t, err)
	assert.Equal(t, "greetings", info.Name)
	assert.Zero(t, info.TokenCount)

	require.NoError(t, s.AppendTokens(ctx, info, tokens))

	// Token order must survive the round trip exactly.
	got, err := s.LoadTokens(ctx, "greetings")
	require.NoError(t, err)
	assert.Equal(t, tokens, got)

	info, err = s.GetInfo(ctx, "greetings")
	require.NoError(t, err)
	assert.Equal(t, len(tokens), info.TokenCount)
}

func TestStoreAppendGrowsCorpus(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, "growing"))
	info, err := s.GetInfo(ctx, "growing")
	require.NoError(t, err)

	require.NoError(t, s.AppendTokens(ctx, info, []string{"one", "fish"}))
	info, err = s.GetInfo(ctx, "growing")
	require.NoError(t, err)
	require.NoError(t, s.AppendTokens(ctx, info, []string{"two", "fish"}))

	got, err := s.LoadTokens(ctx, "growing")
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "fish", "two", "fish"}, got)
}

func TestStoreNotFound(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	_, err := s.GetInfo(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.LoadTokens(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreDuplicateName(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, "dupe"))
	assert.Error(t, s.Insert(ctx, "dupe"), "corpus names must be unique")
}

func TestStoreRemove(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, "doomed"))
	info, err := s.GetInfo(ctx, "doomed")
	require.NoError(t, err)
	require.NoError(t, s.AppendTokens(ctx, info, []string{"so", "long"}))

	require.NoError(t, s.Remove(ctx, info))

	_, err = s.GetInfo(ctx, "doomed")
	assert.ErrorIs(t, err, ErrNotFound)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalTokens, "removing a corpus must remove its tokens")
}

func TestStoreStats(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, "b-side"))
	require.NoError(t, s.Insert(ctx, "a-side"))

	info, err := s.GetInfo(ctx, "a-side")
	require.NoError(t, err)
	require.NoError(t, s.AppendTokens(ctx, info, []string{"hello", "world", "hello"}))

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalTokens)
	assert.Equal(t, 2, stats.DistinctTokens)
	require.Len(t, stats.Corpora, 2)
	assert.Equal(t, "a-side", stats.Corpora[0].Name, "corpora are sorted by name")
	assert.Equal(t, 3, stats.Corpora[0].TokenCount)
}
