package gitw

import (
	"context"
	"errors"
)

// Returned by CloneBranch when the requested branch does not exist on the
// remote. Push falls back to cloning the default branch and creating the
// branch locally.
var ErrBranchNotFound = errors.New("branch not found on remote")

// Backend abstracts the version-control operations the sync engine needs,
// so it can run against a scripted fake in tests.
type Backend interface {
	// Clone the remote at its default branch into dir.
	Clone(ctx context.Context, url string, dir string) error
	// Clone the remote at the given branch into dir.
	// Returns ErrBranchNotFound if the branch does not exist on the remote.
	CloneBranch(ctx context.Context, url string, branch string, dir string) error
	// Create a local branch in dir and switch to it.
	CreateBranch(ctx context.Context, dir string, name string) error
	// Raw porcelain status report for the working tree at dir.
	Status(ctx context.Context, dir string) (string, error)
	// Stage all working-tree changes at dir.
	StageAll(ctx context.Context, dir string) error
	// Commit staged changes. Body may be empty.
	Commit(ctx context.Context, dir string, subject string, body string) error
	// Push the branch to the remote.
	Push(ctx context.Context, dir string, branch string) error
}
