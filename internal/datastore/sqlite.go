package datastore

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	apperrors "github.com/peekdb/peekdb/internal/errors"
	"github.com/peekdb/peekdb/internal/fileutil"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements the Store interface on top of a file-backed
// SQLite database. The handle is owned by the store and is never nil
// after a successful NewSQLiteStore.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens the database at dbPath. The file must already
// exist: a missing path fails with a PathNotFoundError, while a file
// the engine rejects fails with an OpenError. Both are fatal to the
// instance; no store is returned on error.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if !fileutil.FileExists(dbPath) {
		return nil, apperrors.NewPathNotFoundError(dbPath)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, apperrors.NewOpenError(dbPath, err)
	}

	// Single-threaded, synchronous access; one connection keeps
	// prepared statements bound to the same engine handle.
	db.SetMaxOpenConns(1)

	// sql.Open is lazy, so force the engine to read the file header
	// here instead of failing on the first real query.
	var schemaVersion int
	if err := db.QueryRow("PRAGMA schema_version").Scan(&schemaVersion); err != nil {
		_ = db.Close()
		return nil, apperrors.NewOpenError(dbPath, err)
	}

	return &SQLiteStore{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// Path returns the filesystem path the store was opened with.
func (s *SQLiteStore) Path() string {
	return s.dbPath
}

// PeekColumnNames returns the ordered column names of the given table,
// derived from result-set metadata rather than data rows.
func (s *SQLiteStore) PeekColumnNames(table string) ([]string, error) {
	query := fmt.Sprintf("SELECT * FROM %s LIMIT 0", quoteIdentifier(table))
	rows, err := s.db.Query(query)
	if err != nil {
		if isNoSuchTable(err) {
			slog.Debug("Table does not exist", "table", table)
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to peek columns of %s: %w", table, err)
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read column metadata: %w", err)
	}
	return columns, nil
}

// GetRows reads every row of the given table, stringifying each column
// value. The first returned row is always the column-name header, so
// the actual data starts at index 1.
func (s *SQLiteStore) GetRows(table string) ([][]string, error) {
	query := fmt.Sprintf("SELECT * FROM %s", quoteIdentifier(table))
	rows, err := s.db.Query(query)
	if err != nil {
		if isNoSuchTable(err) {
			slog.Debug("Table does not exist", "table", table)
			return [][]string{}, nil
		}
		return nil, fmt.Errorf("failed to query rows of %s: %w", table, err)
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
		return nil, fmt.Errorf("failed to read rows of %s: %w", table, err)
	}

	return result, nil
}

// ExecStatements executes one or more semicolon-separated statements
// with no result-set expectations. Failures are logged rather than
// returned; the caller only learns whether the batch succeeded.
func (s *SQLiteStore) ExecStatements(statements string) bool {
	if _, err := s.db.Exec(statements); err != nil {
		slog.Warn("Statement execution failed", "error", err)
		return false
	}
	return true
}

// TableNames returns the names of all user tables in the database,
// in sqlite_master order.
func (s *SQLiteStore) TableNames() ([]string, error) {
	rows, err := s.db.Query(`
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query table names: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read table names: %w", err)
	}

	return names, nil
}

// Close closes the database handle. Safe to call more than once.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

// scanTextRow scans the current row into a slice of strings, converting
// every column through the engine's text representation. NULL becomes
// the empty string, matching sqlite3_column_text.
func scanTextRow(rows *sql.Rows, columnCount int) ([]string, error) {
	values := make([]sql.NullString, columnCount)
	scanArgs := make([]any, columnCount)
	for i := range values {
		scanArgs[i] = &values[i]
	}

	if err := rows.Scan(scanArgs...); err != nil {
		return nil, fmt.Errorf("failed to scan row: %w", err)
	}

	row := make([]string, columnCount)
	for i, v := range values {
		row[i] = v.String
	}
	return row, nil
}

// quoteIdentifier quotes a table name so lookups never interpret it as
// anything but an identifier.
func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func isNoSuchTable(err error) bool {
	return err != nil && strings.Contains(err.Error(), "no such table")
}
