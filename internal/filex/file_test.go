package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir_CreatesNested(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "a", "b")

	got, err := EnsureDir(target)
	require.NoError(t, err)

	info, err := os.Stat(got)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureDir_ExistingIsFine(t *testing.T) {
	base := t.TempDir()
	_, err := EnsureDir(base)
	require.NoError(t, err)
}

func TestDefaultDataDir_NotEmpty(t *testing.T) {
	assert.NotEmpty(t, DefaultDataDir())
}
