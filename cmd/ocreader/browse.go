package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"ocreader/internal/model"
	"ocreader/internal/service"

	"github.com/urfave/cli/v2"
)

func treeCmd() *cli.Command {
	return &cli.Command{
		Name:  "tree",
		Usage: "Show folders and feeds with unread counts",
		Action: withApp(func(c *cli.Context, a *app) error {
			tree, err := a.tree.Tree(c.Context)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KIND\tID\tNAME\tUNREAD")
			for _, node := range tree {
				name := node.Name
				if node.Failed {
					name += " (failing)"
				}
				fmt.Fprintf(tw, "%s\t%d\t%s\t%d\n", node.Kind, node.ID, name, node.UnreadCount)
				for _, feed := range node.Feeds {
					fmt.Fprintf(tw, "  %s\t%d\t%s\t%d\n", service.KindFeed, feed.ID, feed.Title(), feed.UnreadCount)
				}
			}
			return tw.Flush()
		}),
	}
}

func itemsCmd() *cli.Command {
	return &cli.Command{
		Name:      "items",
		Usage:     "List items of a tree entry",
		ArgsUsage: "[kind] [id]",
		Description: `Lists the items of a tree entry. Kind is one of all, starred, fresh,
		folder or feed and defaults to all. Folders and feeds need an id.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "read",
				Usage: "Include read items",
			},
			&cli.BoolFlag{
				Name:  "oldest-first",
				Usage: "Sort oldest items first",
			},
			&cli.IntFlag{
				Name:  "limit",
				Value: 50,
			},
			&cli.IntFlag{
				Name: "offset",
			},
		},
		Action: withApp(func(c *cli.Context, a *app) error {
			kind := service.KindAllUnread
			if c.Args().Present() {
				kind = c.Args().First()
			}
			var id int64
			if raw := c.Args().Get(1); raw != "" {
				parsed, err := strconv.ParseInt(raw, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid id %q", raw)
				}
				id = parsed
			}
			ref, err := service.ParseTreeItemRef(kind, id)
			if err != nil {
				return err
			}

			items, err := a.tree.Items(c.Context, ref, service.ListOptions{
				OnlyUnread:  !c.Bool("read"),
				OldestFirst: c.Bool("oldest-first"),
				Limit:       c.Int("limit"),
				Offset:      c.Int("offset"),
			})
			if err != nil {
				return err
			}
			printItems(c, items)
			return nil
		}),
	}
}

func readCmd() *cli.Command {
	return &cli.Command{
		Name:      "read",
		Usage:     "Mark items as read",
		ArgsUsage: "<id>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "undo",
				Usage: "Mark as unread instead",
			},
		},
		Action: withApp(func(c *cli.Context, a *app) error {
			ids, err := parseIDs(c)
			if err != nil {
				return err
			}
			for _, id := range ids {
				if _, err := a.items.SetRead(c.Context, id, !c.Bool("undo")); err != nil {
					return fmt.Errorf("item %d: %w", id, err)
				}
			}
			fmt.Fprintf(c.App.Writer, "%d items changed, run sync to upload\n", len(ids))
			return nil
		}),
	}
}

func starCmd() *cli.Command {
	return &cli.Command{
		Name:      "star",
		Usage:     "Star items",
		ArgsUsage: "<id>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "undo",
				Usage: "Unstar instead",
			},
		},
		Action: withApp(func(c *cli.Context, a *app) error {
			ids, err := parseIDs(c)
			if err != nil {
				return err
			}
			for _, id := range ids {
				if _, err := a.items.SetStarred(c.Context, id, !c.Bool("undo")); err != nil {
					return fmt.Errorf("item %d: %w", id, err)
				}
			}
			fmt.Fprintf(c.App.Writer, "%d items changed, run sync to upload\n", len(ids))
			return nil
		}),
	}
}

func parseIDs(c *cli.Context) ([]int64, error) {
	if !c.Args().Present() {
		return nil, fmt.Errorf("at least one item id is required")
	}
	ids := make([]int64, 0, c.NArg())
	for _, raw := range c.Args().Slice() {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", raw)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func printItems(c *cli.Context, items []model.Item) {
	tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFLAGS\tDATE\tTITLE")
	for _, item := range items {
		flags := []byte("--")
		if item.Unread {
			flags[0] = 'U'
		}
		if item.Starred {
			flags[1] = '*'
		}
		date := ""
		if item.PubDate != nil {
			date = item.PubDate.Local().Format(timeLayout)
		}
		title := ""
		if item.Title != nil {
			title = *item.Title
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", item.ID, flags, date, title)
	}
	tw.Flush()
}
