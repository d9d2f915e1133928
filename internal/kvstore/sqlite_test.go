package kvstore

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE appstate (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSQLite_SetAndGet(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "themeMode", []byte("dark")))

	v, err := r.Get(ctx, "themeMode")
	require.NoError(t, err)
	require.Equal(t, []byte("dark"), v)
}

func TestSQLite_GetAbsent_ReturnsNilNil(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	v, err := r.Get(ctx, "user")
	require.NoError(t, err)
	require.Nil(t, v) // contract: (nil, nil) when the key is absent
}

func TestSQLite_Set_UpsertOverwritesValue(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "themeMode", []byte("light")))
	require.NoError(t, r.Set(ctx, "themeMode", []byte("system")))

	v, err := r.Get(ctx, "themeMode")
	require.NoError(t, err)
	assert.Equal(t, []byte("system"), v)
}

func TestSQLite_Delete_RemovesKey_AndIsIdempotent(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "user", []byte(`{"id":"1"}`)))
	require.NoError(t, r.Delete(ctx, "user"))

	v, err := r.Get(ctx, "user")
	require.NoError(t, err)
	assert.Nil(t, v)

	// deleting an absent key is not an error
	require.NoError(t, r.Delete(ctx, "user"))
}

func TestInitSQLite_MigratesAndRoundTrips(t *testing.T) {
	ctx := context.Background()

	repo, db, err := InitSQLite(ctx, "file:initdb?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, repo.Set(ctx, "user", []byte(`{"id":"42"}`)))
	v, err := repo.Get(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":"42"}`), v)
}
