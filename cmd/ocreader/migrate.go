package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"ocreader/internal/db"

	"github.com/urfave/cli/v2"
)

func migrateCmd() *cli.Command {
	return &cli.Command{
		Name:        "migrate",
		Usage:       "Run database migrations",
		Description: `Brings the local database up to date, or to the version given with --to.`,
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  "to",
				Usage: "Target schema version, never below the current one",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "Database configured: %s\n", cfg.DBPath)

			if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
				return fmt.Errorf("create db dir: %w", err)
			}
			dbConn, err := sql.Open("sqlite", db.BuildDSN(cfg.DBPath))
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer dbConn.Close()

			if c.IsSet("to") {
				err = db.MigrateTo(dbConn, c.Uint("to"))
			} else {
				err = db.Migrate(dbConn)
			}
			if err != nil {
				return err
			}

			version, err := db.SchemaVersion(dbConn)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "schema version %d\n", version)
			return nil
		},
	}
}
