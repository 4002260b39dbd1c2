package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ocreader/internal/logger"
	"ocreader/internal/scheduler"

	"github.com/urfave/cli/v2"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Usage:       "Serve the HTTP API",
		Description: `Serves the HTTP API and syncs the stored account in the background.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Usage:   "Address to listen on, overrides the config file",
				EnvVars: []string{"OCREADER_ADDR"},
			},
			&cli.BoolFlag{
				Name:  "no-sync",
				Usage: "Disable background sync",
			},
		},
		Action: withApp(func(c *cli.Context, a *app) error {
			addr := a.cfg.Addr
			if v := c.String("addr"); v != "" {
				addr = v
			}

			e := a.router()

			var sched *scheduler.Scheduler
			if !c.Bool("no-sync") {
				sched = scheduler.New(a.sync, a.cfg.SyncInterval)
				sched.Start()
			}

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("server listening", "module", "cmd", "action", "serve", "resource", "http", "result", "ok", "addr", addr)
				if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err, ok := <-errCh:
				if sched != nil {
					sched.Stop()
				}
				if ok {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			logger.Info("shutting down", "module", "cmd", "action", "serve", "resource", "http", "result", "ok")
			if sched != nil {
				sched.Stop()
			}
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		}),
	}
}
