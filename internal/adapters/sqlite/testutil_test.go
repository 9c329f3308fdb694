// Package sqlite_test contains integration tests for SQLite repositories.
//
// Tests load the authoritative schema via db.GetSchemaSQL() instead of
// hardcoding CREATE TABLE statements, so repository code referencing a
// missing column fails immediately with "no such column".
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/freshpos/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err = testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedProduct inserts a test product row.
func seedProduct(t *testing.T, db *sql.DB, name string, price float64) {
	t.Helper()
	if _, err := db.Exec("INSERT INTO products (item_name, price) VALUES (?, ?)", name, price); err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
}
