// Package peek implements the read-side commands: listing tables,
// peeking column names and dumping rows.
package peek

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/peekdb/peekdb/internal/datastore"
	"github.com/peekdb/peekdb/internal/fileutil"
	"github.com/peekdb/peekdb/internal/render"
)

// stdout is replaceable in tests
var stdout io.Writer = os.Stdout

var openStore = func(dbFile string) (*datastore.SQLiteStore, error) {
	return datastore.NewSQLiteStore(dbFile)
}

// ListTablesWithParams prints the names of all user tables, one per line.
func ListTablesWithParams(dbFile string) error {
	store, err := openStore(dbFile)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	names, err := store.TableNames()
	if err != nil {
		return err
	}

	if len(names) == 0 {
		slog.Info("Database contains no user tables", "database", dbFile)
		return nil
	}

	for _, name := range names {
		fmt.Fprintln(stdout, name)
	}
	return nil
}

// PeekColumnsWithParams prints the ordered column names of a table,
// one per line. A non-existent table prints nothing.
func PeekColumnsWithParams(dbFile, table string) error {
	store, err := openStore(dbFile)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	columns, err := store.PeekColumnNames(table)
	if err != nil {
		return err
	}

	if len(columns) == 0 {
		slog.Info("Table not found", "table", table)
		return nil
	}

	for _, column := range columns {
		fmt.Fprintln(stdout, column)
	}
	return nil
}

// GetRowsWithParams dumps a table in the requested format, header row
// first. With a non-empty outputFile the result is written to disk,
// respecting the overwrite flag; otherwise it goes to stdout.
func GetRowsWithParams(dbFile, table, format, outputFile string, overwrite bool) error {
	outputFormat, err := render.ParseFormat(format)
	if err != nil {
		return err
	}

	store, err := openStore(dbFile)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	rows, err := store.GetRows(table)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		slog.Info("Table not found", "table", table)
		return nil
	}

	var out string
	if outputFile != "" && outputFormat == render.FormatTable {
		// No terminal styling in files
		out = render.PlainRows(rows)
	} else {
		out, err = render.Rows(rows, outputFormat)
		if err != nil {
			return err
		}
	}

	if outputFile != "" {
		written, err := fileutil.WriteFileWithOverwrite(outputFile, []byte(out), 0o644, overwrite)
		if err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		if !written {
			slog.Info("Output file already exists, skipping", "filename", outputFile, "overwrite", overwrite)
			return nil
		}
		slog.Info("Wrote table dump", "filename", outputFile, "rows", len(rows)-1)
		return nil
	}

	fmt.Fprint(stdout, out)
	return nil
}
