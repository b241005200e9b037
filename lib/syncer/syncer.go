package syncer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/RustedBytes/file-syncer/config"
	"github.com/RustedBytes/file-syncer/lib/console"
	"github.com/RustedBytes/file-syncer/lib/gitw"
	"github.com/RustedBytes/file-syncer/models"
)

// Syncer runs one push or pull against a remote repository through a
// private scratch clone that is removed on every exit path.
type Syncer struct {
	Config  config.SyncConfig
	Backend gitw.Backend
}

func New(cfg config.SyncConfig, backend gitw.Backend) *Syncer {
	return &Syncer{Config: cfg, Backend: backend}
}

// Mirror the local folder into the remote branch, committing and pushing
// only when the working tree differs from the remote snapshot.
func (s *Syncer) Push(ctx context.Context) error {
	if err := s.Config.Validate(); err != nil {
		return err
	}

	absPath, err := filepath.Abs(s.Config.FolderPath)
	if err != nil {
		return fmt.Errorf("failed to resolve folder path %s: %w", s.Config.FolderPath, err)
	}
	if _, err := os.Stat(absPath); err != nil {
		return fmt.Errorf("failed to resolve folder path %s: %w", absPath, err)
	}

	scratch, cleanup, err := makeScratchDir()
	if err != nil {
		return err
	}
	defer cleanup()

	console.Info("Cloning repository: url=%s, branch=%s", s.Config.RepoURL, s.Config.Branch)
	if err := s.Backend.CloneBranch(ctx, s.Config.RepoURL, s.Config.Branch, scratch); err != nil {
		if !errors.Is(err, gitw.ErrBranchNotFound) {
			return fmt.Errorf("failed to clone repository: %w", err)
		}

		console.Info("Branch not found, cloning default branch: %v", err)
		if err := s.Backend.Clone(ctx, s.Config.RepoURL, scratch); err != nil {
			return fmt.Errorf("failed to clone repository: %w", err)
		}
		if err := s.Backend.CreateBranch(ctx, scratch, s.Config.Branch); err != nil {
			return fmt.Errorf("failed to create branch: %w", err)
		}
	}

	mode := models.TransformNone
	if s.Config.Compress {
		console.Info("Compression enabled; syncing files with gzip")
		mode = models.TransformCompress
	}

	console.Info("Syncing files from %s to %s", absPath, scratch)
	pipeline := Pipeline{
		Mode:     mode,
		Level:    s.Config.Level,
		Workers:  s.Config.Workers,
		Progress: true,
	}
	if err := pipeline.Run(ctx, absPath, scratch); err != nil {
		return fmt.Errorf("failed to sync files: %w", err)
	}

	statusOutput, err := s.Backend.Status(ctx, scratch)
	if err != nil {
		return fmt.Errorf("failed to check git status: %w", err)
	}

	if strings.TrimSpace(statusOutput) == "" {
		console.Info("No changes to push")
		return nil
	}

	console.Info("Adding changes")
	if err := s.Backend.StageAll(ctx, scratch); err != nil {
		return fmt.Errorf("failed to add changes: %w", err)
	}

	msg := BuildCommitMessage(ClassifyStatus(statusOutput))

	console.Info("Committing changes: %s", msg.Subject)
	if err := s.Backend.Commit(ctx, scratch, msg.Subject, msg.Body); err != nil {
		return fmt.Errorf("failed to commit changes: %w", err)
	}

	console.Info("Pushing to remote branch %s", s.Config.Branch)
	if err := s.Backend.Push(ctx, scratch, s.Config.Branch); err != nil {
		return fmt.Errorf("failed to push changes: %w", err)
	}

	console.Success("Push completed successfully")
	return nil
}

// Mirror the remote branch into the local folder, creating it if needed.
// No commit is made; local content is overwritten.
func (s *Syncer) Pull(ctx context.Context) error {
	if err := s.Config.Validate(); err != nil {
		return err
	}

	absPath, err := filepath.Abs(s.Config.FolderPath)
	if err != nil {
		return fmt.Errorf("failed to resolve folder path %s: %w", s.Config.FolderPath, err)
	}
	if err := os.MkdirAll(absPath, 0755); err != nil {
		return fmt.Errorf("failed to create folder %s: %w", absPath, err)
	}

	scratch, cleanup, err := makeScratchDir()
	if err != nil {
		return err
	}
	defer cleanup()

	console.Info("Cloning repository: url=%s, branch=%s", s.Config.RepoURL, s.Config.Branch)
	if err := s.Backend.CloneBranch(ctx, s.Config.RepoURL, s.Config.Branch, scratch); err != nil {
		return fmt.Errorf("failed to clone repository: %w", err)
	}

	mode := models.TransformNone
	if s.Config.Compress {
		console.Info("Compression enabled; decompressing files after pull")
		mode = models.TransformDecompress
	}

	console.Info("Syncing files from %s to %s", scratch, absPath)
	pipeline := Pipeline{
		Mode:     mode,
		Level:    s.Config.Level,
		Workers:  s.Config.Workers,
		Progress: true,
	}
	if err := pipeline.Run(ctx, scratch, absPath); err != nil {
		return fmt.Errorf("failed to sync files: %w", err)
	}

	console.Success("Pull completed successfully")
	return nil
}

// Create the private scratch clone directory for one invocation.
func makeScratchDir() (string, func(), error) {
	dir, err := os.MkdirTemp("", "file-syncer-*")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp directory: %w", err)
	}

	return dir, func() { os.RemoveAll(dir) }, nil
}
