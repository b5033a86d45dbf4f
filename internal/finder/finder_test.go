package finder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindReadmeCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ReadMe.MD"), []byte("# hi"), 0o644))

	got, err := FindReadme(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ReadMe.MD"), got)
	assert.True(t, filepath.IsAbs(got))
}

func TestFindReadmeSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "README.md"), 0o755))

	_, err := FindReadme(dir)
	assert.Error(t, err)
}

func TestFindReadmeMissing(t *testing.T) {
	_, err := FindReadme(t.TempDir())
	assert.Error(t, err)
}
