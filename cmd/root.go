package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"github.com/peekdb/peekdb/cmd/browse"
	"github.com/peekdb/peekdb/cmd/exec"
	"github.com/peekdb/peekdb/cmd/peek"
	"github.com/peekdb/peekdb/internal/config"
)

var (
	listTables     = peek.ListTablesWithParams
	peekColumns    = peek.PeekColumnsWithParams
	getRows        = peek.GetRowsWithParams
	watchRows      = peek.WatchRowsWithParams
	execStatements = exec.ExecWithParams
	browseTable    = browse.BrowseWithParams
)

// CLI represents the complete command structure for the peekdb application
type CLI struct {
	// Global flags
	DB        string `help:"Path to SQLite database file (must exist)"`
	Overwrite bool   `help:"Overwrite existing output files"`

	Tables  TablesCmd  `cmd:"" help:"List user tables in the database"`
	Columns ColumnsCmd `cmd:"" help:"Print the column names of a table"`
	Rows    RowsCmd    `cmd:"" help:"Dump all rows of a table, column names first"`
	Exec    ExecCmd    `cmd:"" help:"Execute semicolon-separated SQL statements"`
	Browse  BrowseCmd  `cmd:"" help:"Browse table rows in an interactive terminal table"`
	Watch   WatchCmd   `cmd:"" help:"Re-render table rows on an interval"`
}

// TablesCmd represents the tables command
type TablesCmd struct{}

// ColumnsCmd represents the columns command
type ColumnsCmd struct {
	Table string `arg:"" help:"Name of the table to peek"`
}

// RowsCmd represents the rows command
type RowsCmd struct {
	Table  string `arg:"" help:"Name of the table to dump"`
	Format string `short:"t" help:"Output format: table, markdown, csv, json or yaml"`
	Output string `short:"o" help:"Write output to a file instead of stdout"`
}

// ExecCmd represents the exec command
type ExecCmd struct {
	Statements string `arg:"" optional:"" help:"SQL statements to execute"`
	File       string `short:"f" help:"Path to a SQL script file"`
}

// BrowseCmd represents the browse command
type BrowseCmd struct {
	Table string `arg:"" help:"Name of the table to browse"`
}

// WatchCmd represents the watch command
type WatchCmd struct {
	Table    string        `arg:"" help:"Name of the table to watch"`
	Interval time.Duration `help:"Refresh interval" default:"2s"`
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging()
	initConfig()

	// Create CLI instance
	var cli CLI

	// Parse command line with Kong
	ctx := kong.Parse(&cli,
		kong.Name("peekdb"),
		kong.Description("A convenience layer over SQLite for peeking columns, dumping rows and running statements."),
		kong.UsageOnError(),
	)

	// Update global config based on parsed flags
	updateGlobalConfig(&cli)

	// Execute the selected command
	err := ctx.Run()
	if err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetDefault("database.file", "./peek.db")
	viper.SetDefault("output.format", "table")
	viper.SetDefault("watch.interval", "2s")

	// Enable environment variable support
	viper.AutomaticEnv()
	if err := viper.BindEnv("database.file", "PEEKDB_DB"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Debug("Config file not found, using defaults")
		} else {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}

	// Initialize global config
	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	// Update config based on CLI flags
	config.SetOverwriteFiles(cli.Overwrite)
	if cli.DB != "" {
		viper.Set("database.file", cli.DB)
		config.SetDatabaseFile(cli.DB)
	}
}

// dbFile resolves the database path from the --db flag or config.
func dbFile() string {
	return viper.GetString("database.file")
}

// Run methods for each command

func (c *TablesCmd) Run() error {
	return listTables(dbFile())
}

func (c *ColumnsCmd) Run() error {
	return peekColumns(dbFile(), c.Table)
}

func (c *RowsCmd) Run() error {
	// Read from config if value not provided via flag
	format := c.Format
	if format == "" {
		format = viper.GetString("output.format")
	}

	return getRows(dbFile(), c.Table, format, c.Output, config.OverwriteFiles)
}

func (c *ExecCmd) Run() error {
	return execStatements(dbFile(), c.Statements, c.File)
}

func (c *BrowseCmd) Run() error {
	return browseTable(dbFile(), c.Table)
}

func (c *WatchCmd) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return watchRows(ctx, dbFile(), c.Table, c.Interval)
}

func initLogging() {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("PEEKDB_LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	// Create a human-readable handler for logging
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: level,
	})

	// Set the default logger
	slog.SetDefault(slog.New(handler))
}
