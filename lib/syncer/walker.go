package syncer

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/RustedBytes/file-syncer/constants"
	"github.com/RustedBytes/file-syncer/models"
)

// Called once per entry, directories before their descendants.
// Returning an error stops the walk.
type WalkFunc func(rec models.FileRecord) error

// Walk the tree rooted at root depth-first and yield a FileRecord for every
// entry except the VCS metadata directory at the top level (and everything
// beneath it). A directory named like the metadata directory deeper in the
// tree is walked normally.
func Walk(root string, fn WalkFunc) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to walk %s: %w", p, err)
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return fmt.Errorf("failed to compute relative path for %s: %w", p, err)
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if isMetadataPath(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("failed to read metadata for %s: %w", p, err)
		}

		rec := models.FileRecord{
			RelPath: rel,
			Kind:    models.EntryFile,
			Perm:    info.Mode().Perm(),
			Size:    info.Size(),
		}
		if d.IsDir() {
			rec.Kind = models.EntryDir
			rec.Size = 0
		}

		return fn(rec)
	})
}

// The exclusion only applies when the metadata directory is the first path
// segment, matching how the VCS itself scopes its metadata.
func isMetadataPath(rel string) bool {
	first, _, _ := strings.Cut(rel, "/")
	return first == constants.GitDirName
}
