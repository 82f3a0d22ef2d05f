package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestInitDatabase_CreatesKVTable(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "postview.db")

	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, tableExists(t, db, "goose_db_version"))
	assert.True(t, tableExists(t, db, "kv"))
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "postview.db")

	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db), "second run must be a no-op")
	assert.True(t, tableExists(t, db, "kv"))
}

func TestOpen_SQLite_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "postview.db")

	s, err := Open(ctx, Options{Backend: BackendSQLite, SQLitePath: path})
	require.NoError(t, err)
	require.NoError(t, s.SetMany(ctx, map[string]string{"@auth_token": "t", "@auth_user": "u"}))
	require.NoError(t, s.Close())

	s, err = Open(ctx, Options{Backend: BackendSQLite, SQLitePath: path})
	require.NoError(t, err)
	defer s.Close()

	v, ok, err := s.Get(ctx, "@auth_user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "u", v)
}

func TestOpen_Memory(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, Options{Backend: BackendMemory})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set(ctx, "k", "v"))
	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), Options{Backend: "etcd"})
	require.ErrorIs(t, err, ErrUnknownBackend)
}

func TestOpen_SQLite_CreatesParentDir(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "postview.db")

	s, err := Open(ctx, Options{Backend: BackendSQLite, SQLitePath: path})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set(ctx, "@app_theme", "dark"))
	assert.FileExists(t, path)
}

func TestIsFilePath(t *testing.T) {
	assert.True(t, isFilePath("postview.db"))
	assert.True(t, isFilePath("/var/lib/postview/postview.db"))
	assert.False(t, isFilePath(""))
	assert.False(t, isFilePath(":memory:"))
	assert.False(t, isFilePath("file::memory:?cache=shared"))
}
