package testutil

import (
	"testing"

	"github.com/spf13/viper"
)

// CreateDBFile creates an empty database file within the test
// environment and returns its absolute path. SQLite treats a zero-byte
// file as a valid empty database, which is exactly what construction
// against a pre-existing path needs.
func (e *TestEnv) CreateDBFile(name string) string {
	e.t.Helper()
	e.WriteFile(name, nil)
	return e.Path(name)
}

// ResetConfig resets viper and schedules another reset when the test
// completes, so tests cannot leak configuration into each other.
func ResetConfig(t *testing.T) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
}

// SetViperValue sets a viper configuration value and schedules cleanup.
func SetViperValue(t *testing.T, key string, value any) {
	t.Helper()

	oldValue := viper.Get(key)
	hadValue := viper.IsSet(key)

	viper.Set(key, value)

	t.Cleanup(func() {
		if hadValue {
			viper.Set(key, oldValue)
		}
	})
}
