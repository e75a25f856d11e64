package browse

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/peekdb/peekdb/internal/datastore"
	"github.com/peekdb/peekdb/internal/errors"
	"github.com/peekdb/peekdb/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDB(t *testing.T, env *testutil.TestEnv) string {
	t.Helper()

	dbPath := env.CreateDBFile("browse.db")
	store, err := datastore.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	ok := store.ExecStatements(`
		CREATE TABLE albums (id INTEGER PRIMARY KEY, title TEXT);
		INSERT INTO albums (id, title) VALUES (1, 'Kid A');
		INSERT INTO albums (id, title) VALUES (2, 'Amnesiac');
	`)
	require.True(t, ok)

	return dbPath
}

func TestBrowseRunsProgramWithRows(t *testing.T) {
	env := testutil.NewTestEnv(t)
	dbPath := seedDB(t, env)

	var captured tea.Model
	orig := runProgram
	runProgram = func(m tea.Model) (tea.Model, error) {
		captured = m
		return m, nil
	}
	t.Cleanup(func() { runProgram = orig })

	require.NoError(t, BrowseWithParams(dbPath, "albums"))

	m, ok := captured.(*model)
	require.True(t, ok, "expected browse model")
	assert.Equal(t, "albums", m.tableName)
	assert.Equal(t, 2, m.rowCount)
}

func TestBrowseMissingTableSkipsProgram(t *testing.T) {
	env := testutil.NewTestEnv(t)
	dbPath := seedDB(t, env)

	called := false
	orig := runProgram
	runProgram = func(m tea.Model) (tea.Model, error) {
		called = true
		return m, nil
	}
	t.Cleanup(func() { runProgram = orig })

	require.NoError(t, BrowseWithParams(dbPath, "nope"))
	assert.False(t, called, "TUI should not start for a missing table")
}

func TestBrowseMissingDatabase(t *testing.T) {
	err := BrowseWithParams("/non/existing/path.db", "albums")
	require.Error(t, err)
	assert.True(t, errors.IsPathNotFoundError(err))
}

func TestModelQuitKeys(t *testing.T) {
	m := newModel("albums", [][]string{
		{"id", "title"},
		{"1", "Kid A"},
	})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd, "expected quit command for q")

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd, "expected quit command for esc")

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd, "expected quit command for ctrl+c")
}

func TestModelViewContainsData(t *testing.T) {
	m := newModel("albums", [][]string{
		{"id", "title"},
		{"1", "Kid A"},
		{"2", "Amnesiac"},
	})

	view := m.View()
	assert.Contains(t, view, "albums (2 rows)")
	assert.Contains(t, view, "Kid A")
}
