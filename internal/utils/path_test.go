package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// idempotent on an existing directory
	assert.NoError(t, EnsureDir(dir))
}

func TestEnsureParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "store.db")

	require.NoError(t, EnsureParent(path))

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// the file itself is not created
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
