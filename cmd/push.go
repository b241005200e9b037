package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/RustedBytes/file-syncer/lib/console"
	"github.com/RustedBytes/file-syncer/lib/gitw"
	"github.com/RustedBytes/file-syncer/lib/syncer"
)

// Push local files to the remote repository.
func Push(c *cli.Context) error {
	cfg, err := syncConfigFromFlags(c)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	console.Info("File Syncer started: mode=push, folder=%s, repository=%s, branch=%s, compress=%t",
		cfg.FolderPath, cfg.RepoURL, cfg.Branch, cfg.Compress)

	s := syncer.New(cfg, gitw.NewCLI(cfg.SSHKeyPath))
	return s.Push(c.Context)
}
