package gitw

import (
	"context"
	"fmt"
	"strings"

	"github.com/input-output-hk/catalyst-forge-libs/executor"
)

// CLI is the production Backend. It shells out to the `git` binary with the
// working directory set to the repository in question and, when an SSH key is
// configured, routes transport through GIT_SSH_COMMAND.
type CLI struct {
	// SSH private key path. Empty means git's default transport.
	SSHKeyPath string
}

func NewCLI(sshKeyPath string) *CLI {
	return &CLI{SSHKeyPath: sshKeyPath}
}

// Run a git command in dir, capturing output.
func (g *CLI) run(ctx context.Context, dir string, args ...string) (*executor.Result, error) {
	opts := []executor.Option{
		executor.WithWorkingDir(dir),
		executor.SilentMode(),
	}
	if g.SSHKeyPath != "" {
		opts = append(opts, executor.WithEnvVar("GIT_SSH_COMMAND", BuildSSHCommand(g.SSHKeyPath)))
	}

	res, err := executor.New("git", args...).Execute(ctx, opts...)
	if err != nil {
		stderr := ""
		if res != nil {
			stderr = strings.TrimSpace(res.Stderr)
		}
		if stderr != "" {
			return res, fmt.Errorf("git %s: %s: %w", args[0], stderr, err)
		}
		return res, fmt.Errorf("git %s: %w", args[0], err)
	}

	return res, nil
}

func (g *CLI) Clone(ctx context.Context, url string, dir string) error {
	_, err := g.run(ctx, dir, "clone", url, ".")
	return err
}

func (g *CLI) CloneBranch(ctx context.Context, url string, branch string, dir string) error {
	res, err := g.run(ctx, dir, "clone", "--branch", branch, url, ".")
	if err != nil && res != nil && isMissingBranch(res.Stderr, branch) {
		return fmt.Errorf("%w: %s", ErrBranchNotFound, branch)
	}
	return err
}

// Matches the messages git emits when `clone --branch` names a branch the
// remote does not have.
func isMissingBranch(stderr string, branch string) bool {
	return strings.Contains(stderr, "Remote branch "+branch+" not found") ||
		strings.Contains(stderr, "Could not find remote branch "+branch)
}

func (g *CLI) CreateBranch(ctx context.Context, dir string, name string) error {
	_, err := g.run(ctx, dir, "checkout", "-b", name)
	return err
}

func (g *CLI) Status(ctx context.Context, dir string) (string, error) {
	res, err := g.run(ctx, dir, "status", "--porcelain")
	if err != nil {
		return "", err
	}
	return res.Stdout, nil
}

func (g *CLI) StageAll(ctx context.Context, dir string) error {
	_, err := g.run(ctx, dir, "add", "-A")
	return err
}

func (g *CLI) Commit(ctx context.Context, dir string, subject string, body string) error {
	args := []string{"commit", "-m", subject}
	if body != "" {
		args = append(args, "-m", body)
	}
	_, err := g.run(ctx, dir, args...)
	return err
}

func (g *CLI) Push(ctx context.Context, dir string, branch string) error {
	_, err := g.run(ctx, dir, "push", "origin", branch)
	return err
}
