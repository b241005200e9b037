package syncer

import (
	"strings"

	"github.com/RustedBytes/file-syncer/models"
)

// Separator git places between the old and new path of a renamed entry.
const renameSeparator = " -> "

// Classify a porcelain status report into added, modified and deleted path
// lists. Each line is a 2-character status code, a separator character and
// the path. Lines shorter than that and unknown codes are ignored.
func ClassifyStatus(statusOutput string) models.ChangeSet {
	var cs models.ChangeSet

	for _, line := range strings.Split(statusOutput, "\n") {
		if len(line) < 3 {
			continue
		}

		statusCode := line[0:2]
		filename := line[3:]

		switch statusCode {
		case "A ", "??":
			cs.Added = append(cs.Added, filename)
		case "M ", " M", "MM":
			cs.Modified = append(cs.Modified, filename)
		case "D ", " D":
			cs.Deleted = append(cs.Deleted, filename)
		default:
			if statusCode[0] == 'R' {
				// A renamed entry counts as a modification of the new path.
				// Splitting on the first separator mis-handles paths that
				// themselves contain " -> "; see the status grammar notes.
				if idx := strings.Index(filename, renameSeparator); idx >= 0 {
					filename = filename[idx+len(renameSeparator):]
				}
				cs.Modified = append(cs.Modified, filename)
			}
		}
	}

	return cs
}
