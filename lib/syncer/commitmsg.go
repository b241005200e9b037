package syncer

import (
	"fmt"
	"strings"

	"github.com/RustedBytes/file-syncer/models"
)

// Build a deterministic commit message from a classified change set.
// Subject: "Sync N file[s] (X added, Y modified, Z deleted)" with empty
// buckets omitted from the parenthetical. Body: one labeled section per
// non-empty bucket, in added/modified/deleted order.
func BuildCommitMessage(cs models.ChangeSet) models.CommitMessage {
	total := cs.Total()

	var subject strings.Builder
	fmt.Fprintf(&subject, "Sync %d file", total)
	if total != 1 {
		subject.WriteByte('s')
	}

	parts := []string{}
	if len(cs.Added) > 0 {
		parts = append(parts, fmt.Sprintf("%d added", len(cs.Added)))
	}
	if len(cs.Modified) > 0 {
		parts = append(parts, fmt.Sprintf("%d modified", len(cs.Modified)))
	}
	if len(cs.Deleted) > 0 {
		parts = append(parts, fmt.Sprintf("%d deleted", len(cs.Deleted)))
	}
	if len(parts) > 0 {
		fmt.Fprintf(&subject, " (%s)", strings.Join(parts, ", "))
	}

	var body strings.Builder
	writeSection(&body, "Added files:", "+", cs.Added)
	writeSection(&body, "Modified files:", "~", cs.Modified)
	writeSection(&body, "Deleted files:", "-", cs.Deleted)

	return models.CommitMessage{
		Subject: subject.String(),
		Body:    strings.TrimSpace(body.String()),
	}
}

func writeSection(body *strings.Builder, label string, marker string, files []string) {
	if len(files) == 0 {
		return
	}

	if body.Len() > 0 {
		body.WriteByte('\n')
	}
	body.WriteString(label + "\n")
	for _, file := range files {
		fmt.Fprintf(body, "  %s %s\n", marker, file)
	}
}
