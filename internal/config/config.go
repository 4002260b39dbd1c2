package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	AppName    = "OCReader"
	AppVersion = "1.0.0"
	AppRepo    = "https://github.com/schaal/ocreader"
)

// UserAgent identifies the client to the News server and to feed hosts.
var UserAgent = "Mozilla/5.0 (compatible; " + AppName + "/" + AppVersion + "; +" + AppRepo + ")"

type Config struct {
	Addr           string
	DataDir        string
	DBPath         string
	LogLevel       string
	SyncInterval   time.Duration
	RequestTimeout time.Duration
	RateLimit      int
	ProxyURL       string
	AllowInsecure  bool
	NodeID         int64
}

// fileConfig mirrors Config for the optional TOML file.
type fileConfig struct {
	Addr           string `toml:"addr"`
	DataDir        string `toml:"data_dir"`
	DBPath         string `toml:"db_path"`
	LogLevel       string `toml:"log_level"`
	SyncInterval   string `toml:"sync_interval"`
	RequestTimeout string `toml:"request_timeout"`
	RateLimit      int    `toml:"rate_limit"`
	Proxy          string `toml:"proxy"`
	AllowInsecure  *bool  `toml:"allow_insecure"`
	NodeID         *int64 `toml:"node_id"`
}

func defaults() Config {
	return Config{
		Addr:           "127.0.0.1:8080",
		DataDir:        "./data",
		LogLevel:       "info",
		SyncInterval:   15 * time.Minute,
		RequestTimeout: 30 * time.Second,
		RateLimit:      5,
		NodeID:         1,
	}
}

// Load builds the configuration from defaults, then the TOML file at path
// (skipped when path is empty or missing), then OCREADER_* variables.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path == "" {
		path = os.Getenv("OCREADER_CONFIG")
	}
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := loadEnv(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "ocreader.db")
	}
	cfg.DataDir = filepath.Clean(cfg.DataDir)
	cfg.DBPath = filepath.Clean(cfg.DBPath)

	if cfg.SyncInterval <= 0 {
		return Config{}, fmt.Errorf("sync interval must be positive, got %s", cfg.SyncInterval)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if fc.Addr != "" {
		cfg.Addr = fc.Addr
	}
	if fc.DataDir != "" {
		cfg.DataDir = fc.DataDir
	}
	if fc.DBPath != "" {
		cfg.DBPath = fc.DBPath
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.SyncInterval != "" {
		d, err := time.ParseDuration(fc.SyncInterval)
		if err != nil {
			return fmt.Errorf("parse sync_interval: %w", err)
		}
		cfg.SyncInterval = d
	}
	if fc.RequestTimeout != "" {
		d, err := time.ParseDuration(fc.RequestTimeout)
		if err != nil {
			return fmt.Errorf("parse request_timeout: %w", err)
		}
		cfg.RequestTimeout = d
	}
	if fc.RateLimit > 0 {
		cfg.RateLimit = fc.RateLimit
	}
	if fc.Proxy != "" {
		cfg.ProxyURL = fc.Proxy
	}
	if fc.AllowInsecure != nil {
		cfg.AllowInsecure = *fc.AllowInsecure
	}
	if fc.NodeID != nil {
		cfg.NodeID = *fc.NodeID
	}
	return nil
}

func loadEnv(cfg *Config) error {
	if v := os.Getenv("OCREADER_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("OCREADER_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("OCREADER_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("OCREADER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("OCREADER_SYNC_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse OCREADER_SYNC_INTERVAL: %w", err)
		}
		cfg.SyncInterval = d
	}
	if v := os.Getenv("OCREADER_REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse OCREADER_REQUEST_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = d
	}
	if v := os.Getenv("OCREADER_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse OCREADER_RATE_LIMIT: %w", err)
		}
		cfg.RateLimit = n
	}
	if v := os.Getenv("OCREADER_PROXY"); v != "" {
		cfg.ProxyURL = v
	}
	if v := os.Getenv("OCREADER_ALLOW_INSECURE"); v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("parse OCREADER_ALLOW_INSECURE: %w", err)
		}
		cfg.AllowInsecure = b
	}
	if v := os.Getenv("OCREADER_NODE_ID"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse OCREADER_NODE_ID: %w", err)
		}
		cfg.NodeID = n
	}
	return nil
}
