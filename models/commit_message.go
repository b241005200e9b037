package models

// Commit message derived from a ChangeSet.
type CommitMessage struct {
	// Single-line summary, e.g. "Sync 4 files (2 added, 1 modified, 1 deleted)".
	Subject string
	// Labeled per-file sections. Empty when there is nothing to list.
	Body string
}
