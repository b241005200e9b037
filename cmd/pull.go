package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/RustedBytes/file-syncer/lib/console"
	"github.com/RustedBytes/file-syncer/lib/gitw"
	"github.com/RustedBytes/file-syncer/lib/syncer"
)

// Pull remote files into the local folder, overwriting local content.
func Pull(c *cli.Context) error {
	cfg, err := syncConfigFromFlags(c)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	console.Info("File Syncer started: mode=pull, folder=%s, repository=%s, branch=%s, compress=%t",
		cfg.FolderPath, cfg.RepoURL, cfg.Branch, cfg.Compress)

	s := syncer.New(cfg, gitw.NewCLI(cfg.SSHKeyPath))
	return s.Pull(c.Context)
}
