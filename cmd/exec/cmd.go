// Package exec implements the raw statement execution command.
package exec

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/peekdb/peekdb/internal/datastore"
)

var openStore = func(dbFile string) (*datastore.SQLiteStore, error) {
	return datastore.NewSQLiteStore(dbFile)
}

// ExecWithParams runs one or more semicolon-separated SQL statements
// against the database. The statements come either directly from the
// command line or from a script file; exactly one source must be given.
func ExecWithParams(dbFile, statements, scriptFile string) error {
	if statements != "" && scriptFile != "" {
		return fmt.Errorf("provide SQL statements or a script file, not both")
	}

	if scriptFile != "" {
		data, err := os.ReadFile(scriptFile)
		if err != nil {
			return fmt.Errorf("failed to read script file: %w", err)
		}
		statements = string(data)
	}

	if strings.TrimSpace(statements) == "" {
		return fmt.Errorf("SQL statements are required (provide as an argument or via --file)")
	}

	store, err := openStore(dbFile)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if !store.ExecStatements(statements) {
		return fmt.Errorf("statement execution failed")
	}

	slog.Info("Statements executed", "database", dbFile)
	return nil
}
