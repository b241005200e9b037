package syncer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RustedBytes/file-syncer/models"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func walkPaths(t *testing.T, root string) []string {
	t.Helper()
	paths := []string{}
	err := Walk(root, func(rec models.FileRecord) error {
		paths = append(paths, rec.RelPath)
		return nil
	})
	require.NoError(t, err)
	return paths
}

func TestWalkYieldsDirectoriesBeforeDescendants(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "a")
	writeFile(t, filepath.Join(root, "sub", "b.txt"), "b")

	assert.Equal(t, []string{"a.txt", "sub", "sub/b.txt"}, walkPaths(t, root))
}

func TestWalkSkipsTopLevelGitDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".git", "config"), "cfg")
	writeFile(t, filepath.Join(root, ".git", "objects", "ab", "cdef"), "obj")
	writeFile(t, filepath.Join(root, "kept.txt"), "kept")

	assert.Equal(t, []string{"kept.txt"}, walkPaths(t, root))
}

func TestWalkKeepsNestedGitDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "vendor", ".git", "config"), "cfg")

	assert.Equal(t, []string{"vendor", "vendor/.git", "vendor/.git/config"}, walkPaths(t, root))
}

func TestWalkReportsEntryKindAndSize(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sub", "b.txt"), "hello")

	records := map[string]models.FileRecord{}
	err := Walk(root, func(rec models.FileRecord) error {
		records[rec.RelPath] = rec
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, models.EntryDir, records["sub"].Kind)
	assert.Equal(t, models.EntryFile, records["sub/b.txt"].Kind)
	assert.Equal(t, int64(5), records["sub/b.txt"].Size)
}

func TestWalkStopsOnCallbackError(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "a")
	writeFile(t, filepath.Join(root, "b.txt"), "b")

	seen := 0
	err := Walk(root, func(rec models.FileRecord) error {
		seen++
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, seen)
}
