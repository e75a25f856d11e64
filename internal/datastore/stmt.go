package datastore

import (
	"database/sql"
	"fmt"
)

// Stmt is a reusable prepared statement. Unlike the per-call statements
// the query methods create and finalize internally, a Stmt stays
// compiled across calls and rebinds its positional parameters on each
// run. It must be closed before its owning store.
type Stmt struct {
	stmt  *sql.Stmt
	query string
}

// Prepare compiles the given SQL into a reusable statement bound to
// this store's handle.
func (s *SQLiteStore) Prepare(query string) (*Stmt, error) {
	stmt, err := s.db.Prepare(query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare statement: %w", err)
	}
	return &Stmt{stmt: stmt, query: query}, nil
}

// Query runs the statement with the given positional parameters and
// returns the result in the header-plus-data shape of Store.GetRows.
func (st *Stmt) Query(args ...any) ([][]string, error) {
	rows, err := st.stmt.Query(args...)
	if err != nil {
		return nil, fmt.Errorf("failed to run statement: %w", err)
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read column metadata: %w", err)
	}

	result := [][]string{columns}
	for rows.Next() {
		row, err := scanTextRow(rows, len(columns))
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read statement rows: %w", err)
	}

	return result, nil
}

// Exec runs the statement with the given positional parameters,
// discarding any result set.
func (st *Stmt) Exec(args ...any) error {
	if _, err := st.stmt.Exec(args...); err != nil {
		return fmt.Errorf("failed to execute statement: %w", err)
	}
	return nil
}

// SQL returns the SQL text the statement was compiled from.
func (st *Stmt) SQL() string {
	return st.query
}

// Close finalizes the statement. Call before closing the owning store.
func (st *Stmt) Close() error {
	return st.stmt.Close()
}
