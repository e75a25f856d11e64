package fileutil

import (
	"os"
	"testing"

	"github.com/peekdb/peekdb/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	env := testutil.NewTestEnv(t)

	assert.False(t, FileExists(env.Path("missing.db")))

	env.WriteFileString("present.db", "")
	assert.True(t, FileExists(env.Path("present.db")))

	// Directories are not files
	env.MkdirAll("somedir")
	assert.False(t, FileExists(env.Path("somedir")))
}

func TestWriteFileWithOverwrite(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.Path("out/result.txt")

	written, err := WriteFileWithOverwrite(path, []byte("first"), os.FileMode(0o644), false)
	require.NoError(t, err)
	assert.True(t, written)
	assert.Equal(t, "first", env.ReadFileString("out/result.txt"))

	// Existing file, overwrite disabled: skipped
	written, err = WriteFileWithOverwrite(path, []byte("second"), os.FileMode(0o644), false)
	require.NoError(t, err)
	assert.False(t, written)
	assert.Equal(t, "first", env.ReadFileString("out/result.txt"))

	// Existing file, overwrite enabled: replaced
	written, err = WriteFileWithOverwrite(path, []byte("second"), os.FileMode(0o644), true)
	require.NoError(t, err)
	assert.True(t, written)
	assert.Equal(t, "second", env.ReadFileString("out/result.txt"))
}
