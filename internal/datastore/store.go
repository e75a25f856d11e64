package datastore

// Store defines the interface for CRUD-style access to a local SQLite database
type Store interface {
	// PeekColumnNames returns the ordered column names of the given table.
	// A non-existent table yields an empty list, not an error.
	PeekColumnNames(table string) ([]string, error)

	// GetRows returns all rows of the given table as text, with the
	// column names as the first row. A non-existent table yields an
	// empty result, not an error.
	GetRows(table string) ([][]string, error)

	// ExecStatements executes one or more semicolon-separated SQL
	// statements that produce no result set (CREATE, INSERT, DROP, ...)
	// and reports whether all of them succeeded.
	ExecStatements(statements string) bool

	// Close releases the underlying database handle
	Close() error
}
