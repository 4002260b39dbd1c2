package main

import (
	"context"
	"database/sql"
	"fmt"

	"ocreader/internal/config"
	"ocreader/internal/db"
	"ocreader/internal/handler"
	apphttp "ocreader/internal/http"
	"ocreader/internal/logger"
	"ocreader/internal/network"
	"ocreader/internal/newsapi"
	"ocreader/internal/repository"
	"ocreader/internal/service"
	"ocreader/internal/snowflake"

	"github.com/labstack/echo/v4"
	"github.com/urfave/cli/v2"
)

// app holds the wired services of one process.
type app struct {
	cfg config.Config
	db  *sql.DB

	account     service.AccountService
	sync        service.SyncService
	tree        service.TreeService
	items       service.ItemService
	feeds       service.FeedService
	folders     service.FolderService
	settings    service.SettingsService
	readability service.ReadabilityService
}

// loadConfig reads the configuration and sets up logging and id generation.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return config.Config{}, err
	}
	if level := c.String("log-level"); level != "" {
		cfg.LogLevel = level
	}
	logger.Init(logger.ParseLevel(cfg.LogLevel))
	if err := snowflake.Init(cfg.NodeID); err != nil {
		return config.Config{}, fmt.Errorf("init id generator: %w", err)
	}
	return cfg, nil
}

func newApp(c *cli.Context) (*app, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	clientFactory, err := network.NewClientFactory(network.Options{ProxyURL: cfg.ProxyURL, UserAgent: config.UserAgent})
	if err != nil {
		return nil, err
	}

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	folderRepo := repository.NewFolderRepository(dbConn)
	feedRepo := repository.NewFeedRepository(dbConn)
	itemRepo := repository.NewItemRepository(dbConn)
	settingsRepo := repository.NewSettingsRepository(dbConn)
	temporaryRepo := repository.NewTemporaryFeedRepository(dbConn)
	syncRunRepo := repository.NewSyncRunRepository(dbConn)
	localDataRepo := repository.NewLocalDataRepository(dbConn)

	limiter := newsapi.NewRateLimiter(cfg.RateLimit)
	newClient := func(_ context.Context, creds newsapi.Credentials, allowInsecure bool) (service.NewsAPI, error) {
		client, err := newsapi.NewClient(creds, newsapi.Options{
			HTTPClient:    clientFactory.NewHTTPClient(cfg.RequestTimeout),
			AllowInsecure: allowInsecure,
			RateLimiter:   limiter,
			UserAgent:     config.UserAgent,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	account := service.NewAccountService(settingsRepo, localDataRepo, newClient)

	logger.Debug("app wired", "module", "cmd", "action", "start", "resource", "app", "result", "ok", "db", cfg.DBPath)
	return &app{
		cfg:         cfg,
		db:          dbConn,
		account:     account,
		sync:        service.NewSyncService(account, folderRepo, feedRepo, itemRepo, settingsRepo, syncRunRepo),
		tree:        service.NewTreeService(folderRepo, feedRepo, itemRepo, temporaryRepo),
		items:       service.NewItemService(itemRepo),
		feeds:       service.NewFeedService(account, feedRepo, folderRepo, clientFactory),
		folders:     service.NewFolderService(account, folderRepo),
		settings:    service.NewSettingsService(settingsRepo),
		readability: service.NewReadabilityService(itemRepo, clientFactory),
	}, nil
}

func (a *app) router() *echo.Echo {
	return apphttp.NewRouter(apphttp.Handlers{
		Account:  handler.NewAccountHandler(a.account),
		Tree:     handler.NewTreeHandler(a.tree, a.settings),
		Folder:   handler.NewFolderHandler(a.folders, a.tree),
		Feed:     handler.NewFeedHandler(a.feeds),
		Item:     handler.NewItemHandler(a.items, a.readability),
		Sync:     handler.NewSyncHandler(a.sync),
		Settings: handler.NewSettingsHandler(a.settings),
	})
}

func (a *app) Close() error {
	return a.db.Close()
}

// withApp runs fn with a wired app and closes it afterwards.
func withApp(fn func(c *cli.Context, a *app) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		a, err := newApp(c)
		if err != nil {
			return err
		}
		defer a.Close()
		return fn(c, a)
	}
}
