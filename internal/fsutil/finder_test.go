package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("# empty"), 0o600))
}

func TestFindFilesByExtension(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.hcl"))
	writeFile(t, filepath.Join(root, "a.hcl"))
	writeFile(t, filepath.Join(root, "notes.txt"))
	writeFile(t, filepath.Join(root, "nested", "c.hcl"))

	files, err := FindFilesByExtension(root, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.hcl"),
		filepath.Join(root, "b.hcl"),
		filepath.Join(root, "nested", "c.hcl"),
	}, files)

	assert.Panics(t, func() { _, _ = FindFilesByExtension(root, "") })
}

func TestFindFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "scene", "meshes.hcl"))
	writeFile(t, filepath.Join(root, "scene", "shaders.hcl"))
	writeFile(t, filepath.Join(root, "extra.snapshot"))

	files, err := FindFiles([]string{
		filepath.Join(root, "scene"),
		filepath.Join(root, "extra.snapshot"),
		filepath.Join(root, "scene", "meshes.hcl"),
	}, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "scene", "meshes.hcl"),
		filepath.Join(root, "scene", "shaders.hcl"),
		filepath.Join(root, "extra.snapshot"),
	}, files)

	_, err = FindFiles([]string{filepath.Join(root, "missing")}, ".hcl")
	require.Error(t, err)
}
