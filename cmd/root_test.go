package cmd

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/peekdb/peekdb/internal/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetCmdState(t *testing.T) {
	origOverwrite := config.OverwriteFiles
	origDB := config.DatabaseFile

	t.Cleanup(func() {
		config.OverwriteFiles = origOverwrite
		config.DatabaseFile = origDB
		viper.Reset()
	})

	viper.Reset()
}

func parseCLI(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()

	originalArgs := os.Args
	os.Args = append([]string{"peekdb"}, args...)
	t.Cleanup(func() { os.Args = originalArgs })

	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("peekdb"),
		kong.Description("A convenience layer over SQLite for peeking columns, dumping rows and running statements."),
		kong.UsageOnError(),
		kong.Exit(func(code int) {
			t.Fatalf("unexpected Kong exit %d", code)
		}),
	)

	return cli, ctx
}

func TestUpdateGlobalConfig(t *testing.T) {
	resetCmdState(t)

	cli := &CLI{
		DB:        "/tmp/test.db",
		Overwrite: true,
	}

	updateGlobalConfig(cli)

	assert.True(t, config.OverwriteFiles)
	assert.Equal(t, "/tmp/test.db", config.DatabaseFile)
	assert.Equal(t, "/tmp/test.db", viper.GetString("database.file"))
}

func TestUpdateGlobalConfigKeepsConfigValueWithoutFlag(t *testing.T) {
	resetCmdState(t)

	viper.Set("database.file", "/from/config.db")

	updateGlobalConfig(&CLI{})

	assert.Equal(t, "/from/config.db", dbFile())
}

func TestColumnsCommandParsing(t *testing.T) {
	resetCmdState(t)

	cli, _ := parseCLI(t, "--db", "/tmp/albums.db", "columns", "albums")

	assert.Equal(t, "/tmp/albums.db", cli.DB)
	assert.Equal(t, "albums", cli.Columns.Table)
}

func TestRowsCommandParsing(t *testing.T) {
	resetCmdState(t)

	cli, _ := parseCLI(t, "rows", "tracks", "-t", "csv", "-o", "dump.csv")

	assert.Equal(t, "tracks", cli.Rows.Table)
	assert.Equal(t, "csv", cli.Rows.Format)
	assert.Equal(t, "dump.csv", cli.Rows.Output)
}

func TestRowsFormatFallsBackToConfig(t *testing.T) {
	resetCmdState(t)

	viper.Set("output.format", "json")
	viper.Set("database.file", "/tmp/test.db")

	var gotFormat string
	orig := getRows
	getRows = func(dbFile, table, format, output string, overwrite bool) error {
		gotFormat = format
		return nil
	}
	t.Cleanup(func() { getRows = orig })

	cmd := &RowsCmd{Table: "tracks"}
	require.NoError(t, cmd.Run())
	assert.Equal(t, "json", gotFormat)
}

func TestExecCommandParsing(t *testing.T) {
	resetCmdState(t)

	cli, _ := parseCLI(t, "exec", "CREATE TABLE t (a TEXT)")
	assert.Equal(t, "CREATE TABLE t (a TEXT)", cli.Exec.Statements)

	cli, _ = parseCLI(t, "exec", "-f", "schema.sql")
	assert.Empty(t, cli.Exec.Statements)
	assert.Equal(t, "schema.sql", cli.Exec.File)
}

func TestWatchCommandParsing(t *testing.T) {
	resetCmdState(t)

	cli, _ := parseCLI(t, "watch", "tracks", "--interval", "5s")

	assert.Equal(t, "tracks", cli.Watch.Table)
	assert.Equal(t, 5*time.Second, cli.Watch.Interval)
}

func TestWatchCommandDefaultInterval(t *testing.T) {
	resetCmdState(t)

	cli, _ := parseCLI(t, "watch", "tracks")
	assert.Equal(t, 2*time.Second, cli.Watch.Interval)
}

func TestCommandsDelegate(t *testing.T) {
	resetCmdState(t)

	viper.Set("database.file", "/tmp/test.db")

	var calls []string

	origTables := listTables
	listTables = func(dbFile string) error {
		calls = append(calls, "tables:"+dbFile)
		return nil
	}
	origColumns := peekColumns
	peekColumns = func(dbFile, table string) error {
		calls = append(calls, "columns:"+table)
		return nil
	}
	origExec := execStatements
	execStatements = func(dbFile, statements, file string) error {
		calls = append(calls, "exec:"+statements)
		return nil
	}
	origBrowse := browseTable
	browseTable = func(dbFile, table string) error {
		calls = append(calls, "browse:"+table)
		return nil
	}
	origWatch := watchRows
	watchRows = func(ctx context.Context, dbFile, table string, interval time.Duration) error {
		calls = append(calls, "watch:"+table)
		return nil
	}
	t.Cleanup(func() {
		listTables = origTables
		peekColumns = origColumns
		execStatements = origExec
		browseTable = origBrowse
		watchRows = origWatch
	})

	require.NoError(t, (&TablesCmd{}).Run())
	require.NoError(t, (&ColumnsCmd{Table: "albums"}).Run())
	require.NoError(t, (&ExecCmd{Statements: "SELECT 1"}).Run())
	require.NoError(t, (&BrowseCmd{Table: "albums"}).Run())
	require.NoError(t, (&WatchCmd{Table: "albums", Interval: time.Second}).Run())

	assert.Equal(t, []string{
		"tables:/tmp/test.db",
		"columns:albums",
		"exec:SELECT 1",
		"browse:albums",
		"watch:albums",
	}, calls)
}

func TestInitLogging(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
	}{
		{"default", ""},
		{"debug", "debug"},
		{"DEBUG", "DEBUG"},
		{"warn", "warn"},
		{"error", "error"},
		{"invalid", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv("PEEKDB_LOG_LEVEL", tt.envValue)
			}
			// Should not panic
			require.NotPanics(t, func() {
				initLogging()
			})
		})
	}
}
