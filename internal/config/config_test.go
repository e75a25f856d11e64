package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func resetConfig(t *testing.T) {
	t.Helper()

	origDB := DatabaseFile
	origOverwrite := OverwriteFiles
	origFormat := OutputFormat

	t.Cleanup(func() {
		DatabaseFile = origDB
		OverwriteFiles = origOverwrite
		OutputFormat = origFormat
		viper.Reset()
	})

	viper.Reset()
}

func TestInitConfigDefaults(t *testing.T) {
	resetConfig(t)

	InitConfig()

	assert.Equal(t, "./peek.db", DatabaseFile)
	assert.Equal(t, "table", OutputFormat)
	assert.False(t, OverwriteFiles)
}

func TestInitConfigReadsViper(t *testing.T) {
	resetConfig(t)

	viper.Set("database.file", "/data/albums.db")
	viper.Set("output.format", "json")
	viper.Set("OverwriteFiles", true)

	InitConfig()

	assert.Equal(t, "/data/albums.db", DatabaseFile)
	assert.Equal(t, "json", OutputFormat)
	assert.True(t, OverwriteFiles)
}

func TestSetters(t *testing.T) {
	resetConfig(t)

	SetOverwriteFiles(true)
	assert.True(t, OverwriteFiles)

	SetDatabaseFile("/tmp/other.db")
	assert.Equal(t, "/tmp/other.db", DatabaseFile)
}
