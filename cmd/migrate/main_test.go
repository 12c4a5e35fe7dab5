package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func sqliteEnv(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.db")
	t.Setenv("CATALOG_CONFIG", "")
	t.Setenv("APP_ENV", "test")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_NAME", path)
	return path
}

func tableExists(t *testing.T, path, table string) bool {
	t.Helper()
	conn, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer conn.Close()

	var n int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = $1`, table).Scan(&n))
	return n == 1
}

func TestRun_Embedded(t *testing.T) {
	path := sqliteEnv(t)
	ctx := context.Background()

	require.NoError(t, run(ctx, "up", ""))
	assert.True(t, tableExists(t, path, "catalog_snapshots"))
	assert.True(t, tableExists(t, path, "snapshot_products"))

	require.NoError(t, run(ctx, "down", ""))
	assert.False(t, tableExists(t, path, "catalog_snapshots"))
}

func TestRun_Dir(t *testing.T) {
	path := sqliteEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "20230101_init.sql"),
		[]byte("-- +migrate Up\nCREATE TABLE test (id int);\n-- +migrate Down\nDROP TABLE test;\n"), 0o644))

	require.NoError(t, run(context.Background(), "up", dir))
	assert.True(t, tableExists(t, path, "test"))
}

func TestRun_NoDatabase(t *testing.T) {
	t.Setenv("CATALOG_CONFIG", "")
	t.Setenv("DB_DRIVER", "")

	assert.ErrorContains(t, run(context.Background(), "up", ""), "DB_DRIVER")
}

func TestRun_BadMode(t *testing.T) {
	sqliteEnv(t)
	assert.ErrorContains(t, run(context.Background(), "sideways", ""), "unknown mode")
}
