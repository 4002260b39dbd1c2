package main

import (
	"fmt"

	"ocreader/internal/service"

	"github.com/urfave/cli/v2"
)

func loginCmd() *cli.Command {
	return &cli.Command{
		Name:        "login",
		Usage:       "Log in to a News server",
		Description: `Checks the server version and the credentials and stores them. Local data is dropped when the account changes.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "url",
				Usage:    "Server address, e.g. https://cloud.example.com",
				EnvVars:  []string{"OCREADER_URL"},
				Required: true,
			},
			&cli.StringFlag{
				Name:     "username",
				Aliases:  []string{"u"},
				EnvVars:  []string{"OCREADER_USERNAME"},
				Required: true,
			},
			&cli.StringFlag{
				Name:     "password",
				Aliases:  []string{"p"},
				Usage:    "Password or app token",
				EnvVars:  []string{"OCREADER_PASSWORD"},
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "insecure",
				Usage: "Allow plain http",
			},
		},
		Action: withApp(func(c *cli.Context, a *app) error {
			account, err := a.account.Login(c.Context, service.LoginRequest{
				URL:           c.String("url"),
				Username:      c.String("username"),
				Password:      c.String("password"),
				AllowInsecure: c.Bool("insecure") || a.cfg.AllowInsecure,
			})
			if err != nil {
				return err
			}
			printAccount(c, account)
			return nil
		}),
	}
}

func logoutCmd() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "Forget the account and drop local data",
		Action: withApp(func(c *cli.Context, a *app) error {
			if err := a.account.Logout(c.Context); err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, "logged out")
			return nil
		}),
	}
}

func accountCmd() *cli.Command {
	return &cli.Command{
		Name:  "account",
		Usage: "Show the stored account",
		Action: withApp(func(c *cli.Context, a *app) error {
			account, err := a.account.Account(c.Context)
			if err != nil {
				return err
			}
			printAccount(c, account)
			return nil
		}),
	}
}

func printAccount(c *cli.Context, account service.Account) {
	w := c.App.Writer
	fmt.Fprintf(w, "url:       %s\n", account.URL)
	fmt.Fprintf(w, "username:  %s\n", account.Username)
	if account.DisplayName != "" {
		fmt.Fprintf(w, "name:      %s\n", account.DisplayName)
	}
	fmt.Fprintf(w, "version:   %s\n", account.ServerVersion)
	if account.LastSyncAt != nil {
		fmt.Fprintf(w, "last sync: %s\n", account.LastSyncAt.Format(timeLayout))
	}
	if account.ImproperlyConfiguredCron {
		fmt.Fprintln(w, "warning:   the server cron job is not configured, feeds may not update")
	}
	if account.IncorrectDBCharset {
		fmt.Fprintln(w, "warning:   the server database charset is not utf8mb4")
	}
}
