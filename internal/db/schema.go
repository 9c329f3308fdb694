package db

// SchemaSQL is the complete schema for a fresh pricebook.
//
// This is the single source of truth for the database schema. Tests
// load it via GetSchemaSQL() instead of hardcoding CREATE TABLE
// statements, so repository code referencing a missing column fails
// immediately with "no such column" at test time.
//
// The products table matches the original deployed pricebook: prices
// are keyed by exact, case-sensitive item name.
const SchemaSQL = `
-- Products (name-keyed pricebook)
CREATE TABLE IF NOT EXISTS products (
	item_name TEXT PRIMARY KEY,
	price REAL NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// GetSchemaSQL returns the authoritative schema for initialization and tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
