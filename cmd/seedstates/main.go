// Command seedstates converts the GST state master Excel file into a SQL
// seed file. The sheet lists the GSTIN state code and state name used to
// validate seller and buyer states.
// Usage: go run ./cmd/seedstates
// Output: db/seeds/states.sql
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

type stateEntry struct {
	code string
	name string
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	xlsxPath := "GST_State_Master.xlsx"
	outPath := "db/seeds/states.sql"

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	entries, err := parseStateSheet(f)
	if err != nil {
		return fmt.Errorf("parse state sheet: %w", err)
	}
	log.Printf("state sheet: %d entries", len(entries))

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	if _, err := fmt.Fprintln(out, "-- GST state master seed data generated from Excel."); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintln(out, "BEGIN;"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, e := range entries {
		stmt := fmt.Sprintf(
			"INSERT INTO states (code, name) VALUES ('%s', '%s') ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name;",
			e.code, strings.ReplaceAll(e.name, "'", "''"),
		)
		if _, err := fmt.Fprintln(out, stmt); err != nil {
			return fmt.Errorf("write entry %s: %w", e.code, err)
		}
	}

	if _, err := fmt.Fprintln(out, "COMMIT;"); err != nil {
		return fmt.Errorf("write footer: %w", err)
	}

	log.Printf("Generated %d entries in %s", len(entries), outPath)
	return nil
}

// parseStateSheet reads the first sheet. Columns: A(0)=state code,
// B(1)=state name. Data starts at row index 1 under the header row.
func parseStateSheet(f *excelize.File) ([]stateEntry, error) {
	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var entries []stateEntry
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 2 {
			continue
		}
		code := strings.TrimSpace(row[0])
		name := strings.TrimSpace(row[1])
		if code == "" || name == "" || seen[code] {
			continue
		}
		// GSTIN state codes are two digits, zero-padded.
		if len(code) == 1 {
			code = "0" + code
		}
		seen[code] = true
		entries = append(entries, stateEntry{code: code, name: name})
	}
	return entries, nil
}
