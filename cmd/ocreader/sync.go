package main

import (
	"fmt"
	"text/tabwriter"

	"ocreader/internal/model"

	"github.com/urfave/cli/v2"
)

const timeLayout = "2006-01-02 15:04:05"

func syncCmd() *cli.Command {
	return &cli.Command{
		Name:  "sync",
		Usage: "Upload pending changes and download new items",
		Action: withApp(func(c *cli.Context, a *app) error {
			run, err := a.sync.Sync(c.Context)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "sync %s: %d items received, %d changes sent\n", run.Result, run.ItemsReceived, run.ChangesSent)
			return nil
		}),
	}
}

func statusCmd() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show recent sync runs and pending changes",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Number of runs to show",
				Value: 10,
			},
		},
		Action: withApp(func(c *cli.Context, a *app) error {
			pending, err := a.items.PendingChanges(c.Context)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "pending changes: %d\n\n", len(pending))

			runs, err := a.sync.Runs(c.Context, c.Int("limit"))
			if err != nil {
				return err
			}
			printRuns(c, runs)
			return nil
		}),
	}
}

func printRuns(c *cli.Context, runs []model.SyncRun) {
	tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STARTED\tRESULT\tRECEIVED\tSENT\tERROR")
	for _, run := range runs {
		errText := ""
		if run.Error != nil {
			errText = *run.Error
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", run.StartedAt.Local().Format(timeLayout), run.Result, run.ItemsReceived, run.ChangesSent, errText)
	}
	tw.Flush()
}
