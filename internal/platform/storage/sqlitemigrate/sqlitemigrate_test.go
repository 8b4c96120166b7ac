package sqlitemigrate

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

const createItems = "-- +migrate Up\nCREATE TABLE items(id TEXT PRIMARY KEY);\n-- +migrate Down\nDROP TABLE items;"

func TestApplyRecordsMigrations(t *testing.T) {
	db := openInMemoryDB(t)
	migrations := fstest.MapFS{
		"migrations/001_create.sql": {Data: []byte(createItems)},
		"migrations/002_index.sql":  {Data: []byte("CREATE INDEX items_id ON items(id);")},
		"migrations/README.md":      {Data: []byte("ignored")},
	}

	if err := Apply(context.Background(), db, migrations, "migrations"); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := queryInt64(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 2 {
		t.Fatalf("migration rows = %d, want 2", got)
	}
	if got := queryInt64(t, db, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'items'"); got != 1 {
		t.Fatal("expected items table")
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	db := openInMemoryDB(t)
	migrations := fstest.MapFS{"001_create.sql": {Data: []byte(createItems)}}

	for i := 0; i < 2; i++ {
		if err := Apply(context.Background(), db, migrations, ""); err != nil {
			t.Fatalf("apply pass %d: %v", i, err)
		}
	}
	if got := queryInt64(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 1 {
		t.Fatalf("migration rows = %d, want 1", got)
	}
}

func TestApplyDetectsEditedMigration(t *testing.T) {
	db := openInMemoryDB(t)
	if err := Apply(context.Background(), db, fstest.MapFS{"001_create.sql": {Data: []byte(createItems)}}, ""); err != nil {
		t.Fatalf("apply: %v", err)
	}

	edited := fstest.MapFS{"001_create.sql": {Data: []byte(createItems + "\n-- edited")}}
	err := Apply(context.Background(), db, edited, "")
	if !errors.Is(err, ErrChecksumMismatch) {
		t.Fatalf("err = %v, want checksum mismatch", err)
	}
}

func TestApplyRollsBackFailedMigration(t *testing.T) {
	db := openInMemoryDB(t)
	migrations := fstest.MapFS{"001_broken.sql": {Data: []byte("CREATE TABLE (")}}

	if err := Apply(context.Background(), db, migrations, ""); err == nil {
		t.Fatal("expected error")
	}
	if got := queryInt64(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 0 {
		t.Fatalf("migration rows = %d, want 0", got)
	}
}

func TestApplyRequiresDB(t *testing.T) {
	if err := Apply(context.Background(), nil, fstest.MapFS{}, ""); err == nil {
		t.Fatal("expected nil db error")
	}
}

func TestExtractUp(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "no markers", content: "SELECT 1;", want: "SELECT 1;"},
		{name: "up only", content: "-- +migrate Up\nSELECT 1;", want: "SELECT 1;"},
		{name: "up and down", content: createItems, want: "CREATE TABLE items(id TEXT PRIMARY KEY);"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := strings.TrimSpace(ExtractUp(tt.content)); got != tt.want {
				t.Fatalf("ExtractUp = %q, want %q", got, tt.want)
			}
		})
	}
}

func openInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func queryInt64(t *testing.T, db *sql.DB, query string) int64 {
	t.Helper()
	var n int64
	if err := db.QueryRow(query).Scan(&n); err != nil {
		t.Fatalf("query %q: %v", query, err)
	}
	return n
}
