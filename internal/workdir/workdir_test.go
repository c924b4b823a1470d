package workdir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogPath_Explicit(t *testing.T) {
	got, err := CatalogPath("/data/messages.csv")
	require.NoError(t, err)
	assert.Equal(t, "/data/messages.csv", got)
}

func TestCatalogPath_CurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, os.WriteFile(CatalogFile, []byte("x"), 0o600))

	got, err := CatalogPath("")
	require.NoError(t, err)
	assert.Equal(t, CatalogFile, got)
}

func TestCatalogPath_HomeDirectory(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, Prep())

	want, err := FilePath(CatalogFile)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(want, []byte("x"), 0o600))

	got, err := CatalogPath("")
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "Notices", filepath.Base(filepath.Dir(got)))
}

func TestCatalogPath_NotFound(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	_, err := CatalogPath("")
	assert.ErrorIs(t, err, ErrCatalogNotFound)
}
