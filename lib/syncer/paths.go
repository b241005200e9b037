package syncer

import (
	"path"
	"strings"

	"github.com/RustedBytes/file-syncer/constants"
	"github.com/RustedBytes/file-syncer/models"
)

// Map a slash-relative file path to the path it is stored under for the
// given transform mode. Only the file name component is rewritten; under
// None and Decompress the target path is the input itself (name restoration
// for Decompress happens through OriginalPath).
func StoredPath(relPath string, mode models.TransformMode) string {
	if mode != models.TransformCompress {
		return relPath
	}

	// A name already carrying the marker is never suffixed twice
	if HasCompressedSuffix(relPath) {
		return relPath
	}

	dir, name := path.Split(relPath)
	return dir + name + constants.GzipSuffix
}

// Strip the compression marker from the file name component, if present.
func OriginalPath(relPath string) string {
	if !HasCompressedSuffix(relPath) {
		return relPath
	}

	dir, name := path.Split(relPath)
	return dir + strings.TrimSuffix(name, constants.GzipSuffix)
}

// Reports whether the file name component carries the compression marker.
func HasCompressedSuffix(relPath string) bool {
	_, name := path.Split(relPath)
	return strings.HasSuffix(name, constants.GzipSuffix)
}
