package main

import (
	"ocreader/internal/config"

	"github.com/urfave/cli/v2"
)

func rootApp() *cli.App {
	return &cli.App{
		Name:    "ocreader",
		Usage:   "A reader for the Nextcloud and ownCloud News app",
		Version: config.AppVersion,
		Description: `OCReader keeps a local copy of the folders, feeds and items of a
		News server account. Read and starred flags can be changed offline and
		are uploaded on the next sync.

		Settings come from an optional TOML file and OCREADER_* variables, e.g.:

		--config => OCREADER_CONFIG=ocreader.toml
		--log-level => OCREADER_LOG_LEVEL=debug
		`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the TOML config file",
				EnvVars: []string{"OCREADER_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"OCREADER_LOG_LEVEL"},
			},
		},
		Commands: []*cli.Command{
			serveCmd(),
			loginCmd(),
			logoutCmd(),
			accountCmd(),
			syncCmd(),
			statusCmd(),
			migrateCmd(),
			treeCmd(),
			itemsCmd(),
			readCmd(),
			starCmd(),
		},
		Action: func(ctx *cli.Context) error {
			return cli.ShowAppHelp(ctx)
		},
	}
}
