// +build ignore

package main

import (
	"database/sql"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Imports prices from a CSV file (name,price per line) into the
// freshpos pricebook. Existing rows are updated, new rows inserted.
//
// Usage: go run scripts/import_prices.go [-dry-run] prices.csv

func main() {
	dryRun := flag.Bool("dry-run", false, "Preview import without executing")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: import_prices.go [-dry-run] <csv-file>")
		os.Exit(1)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 2
	records, err := reader.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading CSV: %v\n", err)
		os.Exit(1)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting home dir: %v\n", err)
		os.Exit(1)
	}
	dbPath := filepath.Join(homeDir, ".freshpos", "prices.db")

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	imported := 0
	skipped := 0
	for i, rec := range records {
		name := strings.TrimSpace(rec[0])
		price, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil || name == "" || price < 0 {
			fmt.Printf("  skip line %d: %q,%q\n", i+1, rec[0], rec[1])
			skipped++
			continue
		}

		if *dryRun {
			fmt.Printf("  [dry-run] would set %s = %.2f\n", name, price)
			imported++
			continue
		}

		_, err = db.Exec(`
			INSERT INTO products (item_name, price, updated_at)
			VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(item_name) DO UPDATE SET
				price = excluded.price,
				updated_at = CURRENT_TIMESTAMP`,
			name, price)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error setting %s: %v\n", name, err)
			os.Exit(1)
		}
		fmt.Printf("  set %s = %.2f\n", name, price)
		imported++
	}

	fmt.Printf("\nDone: %d imported, %d skipped\n", imported, skipped)
}
