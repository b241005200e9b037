package models

// Classified working-tree changes from a single status snapshot.
// Each list keeps the order entries appeared in the status report.
type ChangeSet struct {
	Added    []string
	Modified []string
	Deleted  []string
}

// Total number of changed paths.
func (cs ChangeSet) Total() int {
	return len(cs.Added) + len(cs.Modified) + len(cs.Deleted)
}

func (cs ChangeSet) IsEmpty() bool {
	return cs.Total() == 0
}
