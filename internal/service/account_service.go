package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"ocreader/internal/logger"
	"ocreader/internal/newsapi"
	"ocreader/internal/repository"
)

type LoginRequest struct {
	URL           string
	Username      string
	Password      string
	AllowInsecure bool
}

// Account describes the stored login and what the server reported at
// login time.
type Account struct {
	URL                      string
	Username                 string
	PasswordMask             string
	AllowInsecure            bool
	ServerVersion            string
	ImproperlyConfiguredCron bool
	IncorrectDBCharset       bool
	UserID                   string
	DisplayName              string
	LastModified             int64
	LastSyncAt               *time.Time
}

type AccountService interface {
	APIProvider
	Login(ctx context.Context, req LoginRequest) (Account, error)
	Logout(ctx context.Context) error
	Account(ctx context.Context) (Account, error)
}

type accountService struct {
	settings  repository.SettingsRepository
	store     settingsStore
	localData repository.LocalDataRepository
	newClient ClientFactory

	mu     sync.Mutex
	client NewsAPI
}

func NewAccountService(settings repository.SettingsRepository, localData repository.LocalDataRepository, newClient ClientFactory) AccountService {
	return &accountService{
		settings:  settings,
		store:     settingsStore{repo: settings},
		localData: localData,
		newClient: newClient,
	}
}

// Login checks the server and the credentials, then stores them. Local
// data is dropped when the account differs from the stored one.
func (s *accountService) Login(ctx context.Context, req LoginRequest) (Account, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return Account{}, ErrInvalid
	}
	base, err := newsapi.NormalizeURL(req.URL, req.AllowInsecure)
	if err != nil {
		return Account{}, err
	}
	baseURL := base.String()

	client, err := s.newClient(ctx, newsapi.Credentials{BaseURL: baseURL, Username: username, Password: req.Password}, req.AllowInsecure)
	if err != nil {
		return Account{}, err
	}

	status, err := client.Status(ctx)
	if err != nil {
		logger.Warn("login failed", "module", "service", "action", "login", "resource", "account", "result", "failed", "host", base.Host, "error", err)
		return Account{}, err
	}
	if err := newsapi.CheckVersion(status.Version); err != nil {
		logger.Warn("login rejected", "module", "service", "action", "login", "resource", "account", "result", "failed", "host", base.Host, "version", status.Version)
		return Account{}, err
	}

	user := status.User
	if user == nil {
		user, err = client.User(ctx)
		if err != nil && !errors.Is(err, newsapi.ErrNotFound) {
			return Account{}, err
		}
	}

	previousURL, err := s.store.getString(ctx, keyAccountURL)
	if err != nil {
		return Account{}, fmt.Errorf("get account url: %w", err)
	}
	previousUser, err := s.store.getString(ctx, keyAccountUsername)
	if err != nil {
		return Account{}, fmt.Errorf("get account username: %w", err)
	}
	if previousURL != baseURL || previousUser != username {
		if err := s.resetLocalData(ctx); err != nil {
			return Account{}, err
		}
	}

	values := map[string]string{
		keyAccountURL:           baseURL,
		keyAccountUsername:      username,
		keyAccountPassword:      req.Password,
		keyAccountAllowInsecure: strconv.FormatBool(req.AllowInsecure),
		keyServerVersion:        status.Version,
		keyServerCron:           strconv.FormatBool(status.ImproperlyConfiguredCron),
		keyServerDBCharset:      strconv.FormatBool(status.IncorrectDBCharset),
	}
	if user != nil {
		values[keyUserID] = user.UserID
		values[keyUserDisplayName] = user.DisplayName
	}
	for key, value := range values {
		if err := s.settings.Set(ctx, key, value); err != nil {
			return Account{}, fmt.Errorf("store %s: %w", key, err)
		}
	}

	s.mu.Lock()
	s.client = client
	s.mu.Unlock()

	logger.Info("logged in", "module", "service", "action", "login", "resource", "account", "result", "ok", "host", base.Host, "version", status.Version)
	return s.Account(ctx)
}

func (s *accountService) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.client = nil
	s.mu.Unlock()

	for _, prefix := range []string{"account.", "server.", "user."} {
		if err := s.settings.DeleteByPrefix(ctx, prefix); err != nil {
			return fmt.Errorf("delete %s settings: %w", strings.TrimSuffix(prefix, "."), err)
		}
	}
	if err := s.resetLocalData(ctx); err != nil {
		return err
	}
	logger.Info("logged out", "module", "service", "action", "logout", "resource", "account", "result", "ok")
	return nil
}

func (s *accountService) Account(ctx context.Context) (Account, error) {
	settings, err := s.settings.GetByPrefix(ctx, "")
	if err != nil {
		return Account{}, fmt.Errorf("load settings: %w", err)
	}
	values := make(map[string]string, len(settings))
	for _, setting := range settings {
		values[setting.Key] = setting.Value
	}
	if values[keyAccountURL] == "" || values[keyAccountUsername] == "" {
		return Account{}, ErrNotLoggedIn
	}

	account := Account{
		URL:                      values[keyAccountURL],
		Username:                 values[keyAccountUsername],
		PasswordMask:             maskSecret(values[keyAccountPassword]),
		AllowInsecure:            values[keyAccountAllowInsecure] == "true",
		ServerVersion:            values[keyServerVersion],
		ImproperlyConfiguredCron: values[keyServerCron] == "true",
		IncorrectDBCharset:       values[keyServerDBCharset] == "true",
		UserID:                   values[keyUserID],
		DisplayName:              values[keyUserDisplayName],
	}
	if raw := values[keySyncLastModified]; raw != "" {
		if account.LastModified, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return Account{}, fmt.Errorf("parse %s: %w", keySyncLastModified, err)
		}
	}
	if raw := values[keySyncLastSyncAt]; raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return Account{}, fmt.Errorf("parse %s: %w", keySyncLastSyncAt, err)
		}
		account.LastSyncAt = &t
	}
	return account, nil
}

// Client returns the client for the stored account, building it on first
// use.
func (s *accountService) Client(ctx context.Context) (NewsAPI, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil {
		return s.client, nil
	}

	baseURL, err := s.store.getString(ctx, keyAccountURL)
	if err != nil {
		return nil, fmt.Errorf("get account url: %w", err)
	}
	username, err := s.store.getString(ctx, keyAccountUsername)
	if err != nil {
		return nil, fmt.Errorf("get account username: %w", err)
	}
	if baseURL == "" || username == "" {
		return nil, ErrNotLoggedIn
	}
	password, err := s.store.getString(ctx, keyAccountPassword)
	if err != nil {
		return nil, fmt.Errorf("get account password: %w", err)
	}
	allowInsecure, err := s.store.getBool(ctx, keyAccountAllowInsecure, false)
	if err != nil {
		return nil, fmt.Errorf("get account allow insecure: %w", err)
	}

	client, err := s.newClient(ctx, newsapi.Credentials{BaseURL: baseURL, Username: username, Password: password}, allowInsecure)
	if err != nil {
		return nil, err
	}
	s.client = client
	return client, nil
}

func (s *accountService) resetLocalData(ctx context.Context) error {
	if err := s.localData.Clear(ctx); err != nil {
		return err
	}
	for _, key := range []string{keySyncLastModified, keySyncLastSyncAt} {
		if err := s.settings.Delete(ctx, key); err != nil {
			return fmt.Errorf("delete %s: %w", key, err)
		}
	}
	return nil
}
