package service

import (
	"context"
	"fmt"
	"strconv"

	"ocreader/internal/repository"
)

// Preferences are the list defaults of the client.
type Preferences struct {
	OnlyUnread  bool `json:"onlyUnread"`
	OldestFirst bool `json:"oldestFirst"`
}

// Setting keys
const (
	keyAccountURL           = "account.url"
	keyAccountUsername      = "account.username"
	keyAccountPassword      = "account.password"
	keyAccountAllowInsecure = "account.allow_insecure"
	keyServerVersion        = "server.version"
	keyServerCron           = "server.improperly_configured_cron"
	keyServerDBCharset      = "server.incorrect_db_charset"
	keyUserID               = "user.id"
	keyUserDisplayName      = "user.display_name"
	keySyncLastModified     = "sync.last_modified"
	keySyncLastSyncAt       = "sync.last_sync_at"
	keyPrefsOnlyUnread      = "prefs.only_unread"
	keyPrefsOldestFirst     = "prefs.oldest_first"
)

// SettingsService manages the client preferences.
type SettingsService interface {
	GetPreferences(ctx context.Context) (Preferences, error)
	SetPreferences(ctx context.Context, prefs Preferences) error
}

type settingsService struct {
	store settingsStore
}

func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{store: settingsStore{repo: repo}}
}

func (s *settingsService) GetPreferences(ctx context.Context) (Preferences, error) {
	onlyUnread, err := s.store.getBool(ctx, keyPrefsOnlyUnread, true)
	if err != nil {
		return Preferences{}, fmt.Errorf("get only unread: %w", err)
	}
	oldestFirst, err := s.store.getBool(ctx, keyPrefsOldestFirst, false)
	if err != nil {
		return Preferences{}, fmt.Errorf("get oldest first: %w", err)
	}
	return Preferences{OnlyUnread: onlyUnread, OldestFirst: oldestFirst}, nil
}

func (s *settingsService) SetPreferences(ctx context.Context, prefs Preferences) error {
	if err := s.store.repo.Set(ctx, keyPrefsOnlyUnread, strconv.FormatBool(prefs.OnlyUnread)); err != nil {
		return fmt.Errorf("set only unread: %w", err)
	}
	if err := s.store.repo.Set(ctx, keyPrefsOldestFirst, strconv.FormatBool(prefs.OldestFirst)); err != nil {
		return fmt.Errorf("set oldest first: %w", err)
	}
	return nil
}

// settingsStore reads typed values from the settings table.
type settingsStore struct {
	repo repository.SettingsRepository
}

func (s settingsStore) getString(ctx context.Context, key string) (string, error) {
	setting, err := s.repo.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if setting == nil {
		return "", nil
	}
	return setting.Value, nil
}

func (s settingsStore) getInt64(ctx context.Context, key string) (int64, error) {
	val, err := s.getString(ctx, key)
	if err != nil || val == "" {
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}

func (s settingsStore) getBool(ctx context.Context, key string, def bool) (bool, error) {
	val, err := s.getString(ctx, key)
	if err != nil {
		return def, err
	}
	if val == "" {
		return def, nil
	}
	return strconv.ParseBool(val)
}

// maskSecret returns a display form of a password.
func maskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 8 {
		return "***"
	}
	return secret[:2] + "***" + secret[len(secret)-2:]
}
