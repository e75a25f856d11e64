package config

import (
	"github.com/spf13/viper"
)

// Global configuration variables
var (
	// DatabaseFile is the path to the SQLite database file
	DatabaseFile string
	// OverwriteFiles controls whether existing output files should be overwritten
	OverwriteFiles bool
	// OutputFormat is the default row output format
	OutputFormat string
)

// InitConfig initializes the global configuration
func InitConfig() {
	// Set default values
	viper.SetDefault("database.file", "./peek.db")
	viper.SetDefault("output.format", "table")
	viper.SetDefault("OverwriteFiles", false)

	// Get values from viper
	DatabaseFile = viper.GetString("database.file")
	OutputFormat = viper.GetString("output.format")
	OverwriteFiles = viper.GetBool("OverwriteFiles")
}

// SetOverwriteFiles sets the OverwriteFiles flag
func SetOverwriteFiles(overwrite bool) {
	OverwriteFiles = overwrite
}

// SetDatabaseFile sets the database file path
func SetDatabaseFile(path string) {
	DatabaseFile = path
}
