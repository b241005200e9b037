package models

import "io/fs"

type EntryKind int

const (
	EntryFile EntryKind = iota
	EntryDir
)

// A single entry yielded by the tree walker.
type FileRecord struct {
	// Slash-separated path relative to the sync root.
	RelPath string
	Kind    EntryKind
	// Permission bits of the source entry.
	Perm fs.FileMode
	// Size in bytes. Zero for directories.
	Size int64
}
