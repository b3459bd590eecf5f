// Public domain.

package registry_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/necam-obs/ingest/registry"
)

func makeTestConfig() registry.Config {
	return registry.Config{
		Columns: map[string]string{
			"visit":   "text",
			"ccd":     "text",
			"filter":  "text",
			"expTime": "double",
			"dateObs": "text",
		},
		Unique: []string{"visit", "ccd", "filter"},
		Visit:  []string{"visit", "ccd", "filter", "dateObs"},
	}
}

func makeTestRow(visit string) map[string]interface{} {
	return map[string]interface{}{
		"visit":   visit,
		"ccd":     "NECAM",
		"filter":  "NE1",
		"expTime": 30.0,
		"dateObs": "2020-01-01",
	}
}

func openTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r, err := registry.Open(filepath.Join(t.TempDir(), "registry.sqlite3"), makeTestConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestAddAndCount(t *testing.T) {
	r := openTestRegistry(t)
	ctx := context.Background()

	require.NoError(t, r.Add(ctx, makeTestRow("000042")))
	require.NoError(t, r.Add(ctx, makeTestRow("000043")))

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestUniqueConstraint(t *testing.T) {
	r := openTestRegistry(t)
	ctx := context.Background()

	require.NoError(t, r.Add(ctx, makeTestRow("000042")))
	// same visit/ccd/filter key must be rejected
	err := r.Add(ctx, makeTestRow("000042"))
	assert.Error(t, err)

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestAddRejectsUnknownColumn(t *testing.T) {
	r := openTestRegistry(t)
	row := makeTestRow("000042")
	row["seeing"] = 1.2
	assert.Error(t, r.Add(context.Background(), row))
}

func TestVisits(t *testing.T) {
	r := openTestRegistry(t)
	ctx := context.Background()

	require.NoError(t, r.Add(ctx, makeTestRow("000043")))
	require.NoError(t, r.Add(ctx, makeTestRow("000042")))

	visits, err := r.Visits(ctx)
	require.NoError(t, err)
	require.Len(t, visits, 2)
	// ordered by visit key
	assert.Equal(t, "000042", visits[0]["visit"])
	assert.Equal(t, "000043", visits[1]["visit"])
	assert.Equal(t, "NECAM", visits[0]["ccd"])
	assert.Equal(t, "2020-01-01", visits[0]["dateObs"])
}

// Open must leave the database in WAL journal mode.  WAL is a persistent
// property of the database file, so a second plain connection sees it.
func TestOpenSetsWALJournalMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.sqlite3")
	r, err := registry.Open(path, makeTestConfig())
	require.NoError(t, err)
	require.NoError(t, r.Add(context.Background(), makeTestRow("000042")))
	require.NoError(t, r.Close())

	db, err := sql.Open("sqlite", "file:"+path)
	require.NoError(t, err)
	defer db.Close()

	var mode string
	require.NoError(t, db.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", strings.ToLower(mode))
}

func TestOpenRejectsBadColumnType(t *testing.T) {
	cfg := makeTestConfig()
	cfg.Columns["expTime"] = "decimal"
	_, err := registry.Open(filepath.Join(t.TempDir(), "registry.sqlite3"), cfg)
	assert.Error(t, err)
}
