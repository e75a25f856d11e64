// Package browse implements an interactive terminal browser for table rows.
package browse

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/peekdb/peekdb/internal/datastore"
)

var openStore = func(dbFile string) (*datastore.SQLiteStore, error) {
	return datastore.NewSQLiteStore(dbFile)
}

var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m).Run()
}

// BrowseWithParams loads all rows of the given table and presents them
// in a scrollable terminal table.
func BrowseWithParams(dbFile, table string) error {
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

	m := newModel(table, rows)
	finalModel, err := runProgram(m)
	if err != nil {
		return err
	}

	if _, ok := finalModel.(*model); !ok {
		return fmt.Errorf("unexpected program result")
	}
	return nil
}
