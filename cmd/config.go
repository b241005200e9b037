package cmd

import (
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/RustedBytes/file-syncer/config"
	"github.com/RustedBytes/file-syncer/constants"
)

// Build a sync config from CLI flags, falling back to global config defaults
// for the knobs the user didn't set.
func syncConfigFromFlags(c *cli.Context) (config.SyncConfig, error) {
	if c.Bool("fast") && c.Bool("max") {
		return config.SyncConfig{}, errors.New(constants.ErrMsgLevelConflict)
	}

	level := config.I.CompressionLevel
	if c.Bool("fast") {
		level = config.LevelFast
	}
	if c.Bool("max") {
		level = config.LevelMax
	}

	workers := config.I.Workers
	if c.IsSet("workers") {
		workers = c.Int("workers")
	}

	return config.SyncConfig{
		FolderPath: c.String("folder"),
		RepoURL:    c.String("repo"),
		Branch:     c.String("branch"),
		SSHKeyPath: c.String("ssh-key"),
		Compress:   c.Bool("compress"),
		Level:      level,
		Workers:    workers,
	}, nil
}
