package service_test

import (
	"context"
	"database/sql"
	"testing"

	"ocreader/internal/model"
	"ocreader/internal/newsapi"
	"ocreader/internal/repository"
	"ocreader/internal/repository/testutil"
	"ocreader/internal/service"
	servicemock "ocreader/internal/service/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type accountFixture struct {
	db    *sql.DB
	api   *servicemock.MockNewsAPI
	creds []newsapi.Credentials
	svc   service.AccountService
}

func newAccountFixture(t *testing.T) *accountFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &accountFixture{
		db:  testutil.NewTestDB(t),
		api: servicemock.NewMockNewsAPI(ctrl),
	}
	factory := func(ctx context.Context, creds newsapi.Credentials, allowInsecure bool) (service.NewsAPI, error) {
		f.creds = append(f.creds, creds)
		return f.api, nil
	}
	f.svc = service.NewAccountService(repository.NewSettingsRepository(f.db), repository.NewLocalDataRepository(f.db), factory)
	return f
}

func TestAccountService_Login_Success(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	f.api.EXPECT().Status(gomock.Any()).Return(&model.Status{
		Version:            "18.1.0",
		IncorrectDBCharset: true,
		User:               &model.User{UserID: "alice", DisplayName: "Alice"},
	}, nil)

	account, err := f.svc.Login(ctx, service.LoginRequest{
		URL:      "https://cloud.example.com/nextcloud/",
		Username: " alice ",
		Password: "secret-password",
	})
	require.NoError(t, err)
	require.Equal(t, "https://cloud.example.com/nextcloud", account.URL)
	require.Equal(t, "alice", account.Username)
	require.Equal(t, "se***rd", account.PasswordMask)
	require.Equal(t, "18.1.0", account.ServerVersion)
	require.True(t, account.IncorrectDBCharset)
	require.False(t, account.ImproperlyConfiguredCron)
	require.Equal(t, "Alice", account.DisplayName)

	require.Len(t, f.creds, 1)
	require.Equal(t, "https://cloud.example.com/nextcloud", f.creds[0].BaseURL)

	client, err := f.svc.Client(ctx)
	require.NoError(t, err)
	require.Same(t, f.api, client)
	require.Len(t, f.creds, 1)
}

func TestAccountService_Login_FetchesUserWhenStatusHasNone(t *testing.T) {
	f := newAccountFixture(t)

	f.api.EXPECT().Status(gomock.Any()).Return(&model.Status{Version: "9.0.0"}, nil)
	f.api.EXPECT().User(gomock.Any()).Return(&model.User{UserID: "bob", DisplayName: "Bob"}, nil)

	account, err := f.svc.Login(context.Background(), service.LoginRequest{URL: "https://example.com", Username: "bob", Password: "pw"})
	require.NoError(t, err)
	require.Equal(t, "bob", account.UserID)
	require.Equal(t, "***", account.PasswordMask)
}

func TestAccountService_Login_VersionTooOld(t *testing.T) {
	f := newAccountFixture(t)

	f.api.EXPECT().Status(gomock.Any()).Return(&model.Status{Version: "8.7.1"}, nil)

	_, err := f.svc.Login(context.Background(), service.LoginRequest{URL: "https://example.com", Username: "bob", Password: "pw"})
	require.ErrorIs(t, err, newsapi.ErrVersionTooOld)

	_, err = f.svc.Account(context.Background())
	require.ErrorIs(t, err, service.ErrNotLoggedIn)
}

func TestAccountService_Login_InvalidInput(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	_, err := f.svc.Login(ctx, service.LoginRequest{URL: "https://example.com", Username: "", Password: "pw"})
	require.ErrorIs(t, err, service.ErrInvalid)

	_, err = f.svc.Login(ctx, service.LoginRequest{URL: "http://example.com", Username: "bob", Password: "pw"})
	require.ErrorIs(t, err, newsapi.ErrInsecureConnection)

	_, err = f.svc.Login(ctx, service.LoginRequest{URL: "example.com", Username: "bob", Password: "pw"})
	require.ErrorIs(t, err, newsapi.ErrInvalidURL)
	require.Empty(t, f.creds)
}

func TestAccountService_Login_OtherAccountClearsLocalData(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()
	settings := repository.NewSettingsRepository(f.db)

	require.NoError(t, settings.Set(ctx, "account.url", "https://old.example.com"))
	require.NoError(t, settings.Set(ctx, "account.username", "bob"))
	require.NoError(t, settings.Set(ctx, "sync.last_modified", "42"))
	testutil.SeedFeed(t, f.db, model.Feed{ID: 10, URL: "u10", Name: testutil.StringPtr("Feed")})
	testutil.SeedItem(t, f.db, model.Item{ID: 1, FeedID: 10, Title: testutil.StringPtr("one"), Unread: true})

	f.api.EXPECT().Status(gomock.Any()).Return(&model.Status{Version: "20.0.0", User: &model.User{UserID: "bob"}}, nil)

	account, err := f.svc.Login(ctx, service.LoginRequest{URL: "https://new.example.com", Username: "bob", Password: "pw"})
	require.NoError(t, err)
	require.Zero(t, account.LastModified)

	feeds, err := repository.NewFeedRepository(f.db).List(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, feeds)
}

func TestAccountService_Login_SameAccountKeepsLocalData(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()
	settings := repository.NewSettingsRepository(f.db)

	require.NoError(t, settings.Set(ctx, "account.url", "https://example.com"))
	require.NoError(t, settings.Set(ctx, "account.username", "bob"))
	require.NoError(t, settings.Set(ctx, "sync.last_modified", "42"))
	testutil.SeedFeed(t, f.db, model.Feed{ID: 10, URL: "u10", Name: testutil.StringPtr("Feed")})

	f.api.EXPECT().Status(gomock.Any()).Return(&model.Status{Version: "20.0.0", User: &model.User{UserID: "bob"}}, nil)

	account, err := f.svc.Login(ctx, service.LoginRequest{URL: "https://example.com/", Username: "bob", Password: "new-pw"})
	require.NoError(t, err)
	require.Equal(t, int64(42), account.LastModified)

	feeds, err := repository.NewFeedRepository(f.db).List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, feeds, 1)
}

func TestAccountService_Logout(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	f.api.EXPECT().Status(gomock.Any()).Return(&model.Status{Version: "20.0.0", User: &model.User{UserID: "bob"}}, nil)
	_, err := f.svc.Login(ctx, service.LoginRequest{URL: "https://example.com", Username: "bob", Password: "pw"})
	require.NoError(t, err)
	testutil.SeedFeed(t, f.db, model.Feed{ID: 10, URL: "u10", Name: testutil.StringPtr("Feed")})

	require.NoError(t, f.svc.Logout(ctx))

	_, err = f.svc.Account(ctx)
	require.ErrorIs(t, err, service.ErrNotLoggedIn)
	_, err = f.svc.Client(ctx)
	require.ErrorIs(t, err, service.ErrNotLoggedIn)

	feeds, err := repository.NewFeedRepository(f.db).List(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, feeds)
}

func TestAccountService_ClientFromStoredSettings(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()
	settings := repository.NewSettingsRepository(f.db)

	require.NoError(t, settings.Set(ctx, "account.url", "http://localhost:8080"))
	require.NoError(t, settings.Set(ctx, "account.username", "bob"))
	require.NoError(t, settings.Set(ctx, "account.password", "pw"))
	require.NoError(t, settings.Set(ctx, "account.allow_insecure", "true"))

	client, err := f.svc.Client(ctx)
	require.NoError(t, err)
	require.NotNil(t, client)
	require.Equal(t, []newsapi.Credentials{{BaseURL: "http://localhost:8080", Username: "bob", Password: "pw"}}, f.creds)
}
