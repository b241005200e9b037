package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/RustedBytes/file-syncer/cmd"
	"github.com/RustedBytes/file-syncer/config"
	"github.com/RustedBytes/file-syncer/constants"
	"github.com/RustedBytes/file-syncer/lib/console"
)

func syncFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "folder",
			Usage:    "Path to the folder to sync",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "repo",
			Usage:    "Git repository URL",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "branch",
			Usage: "Git branch to use",
			Value: constants.DefaultBranch,
		},
		&cli.StringFlag{
			Name:  "ssh-key",
			Usage: "SSH private key for git operations",
		},
		&cli.BoolFlag{
			Name:  "compress",
			Usage: "Compress files on push, decompress on pull",
		},
		&cli.BoolFlag{
			Name:  "fast",
			Usage: "Use the fastest compression level",
		},
		&cli.BoolFlag{
			Name:  "max",
			Usage: "Use the maximum compression level",
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "Worker pool size for file transfers",
		},
	}
}

func main() {
	// Initialize config
	config.InitConfig()

	// Initialize CLI app
	app := &cli.App{
		Name:    "file-syncer",
		Usage:   "Sync a local folder with a git repository using push or pull operations",
		Version: "1.0.0",
		Commands: []*cli.Command{
			{
				Name:   "push",
				Usage:  "Push local files to the remote repository",
				Action: cmd.Push,
				Flags:  syncFlags(),
			},
			{
				Name:   "pull",
				Usage:  "Pull remote files into the local folder",
				Action: cmd.Pull,
				Flags:  syncFlags(),
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		console.ErrorPrint("Error: %v", err)
		os.Exit(1)
	}
}
