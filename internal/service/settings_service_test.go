package service_test

import (
	"context"
	"testing"

	"ocreader/internal/model"
	"ocreader/internal/repository/mock"
	"ocreader/internal/service"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSettingsService_GetPreferences_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockSettingsRepository(ctrl)
	svc := service.NewSettingsService(repo)

	repo.EXPECT().Get(gomock.Any(), "prefs.only_unread").Return(nil, nil)
	repo.EXPECT().Get(gomock.Any(), "prefs.oldest_first").Return(nil, nil)

	prefs, err := svc.GetPreferences(context.Background())
	require.NoError(t, err)
	require.Equal(t, service.Preferences{OnlyUnread: true, OldestFirst: false}, prefs)
}

func TestSettingsService_GetPreferences_Stored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockSettingsRepository(ctrl)
	svc := service.NewSettingsService(repo)

	repo.EXPECT().Get(gomock.Any(), "prefs.only_unread").Return(&model.Setting{Key: "prefs.only_unread", Value: "false"}, nil)
	repo.EXPECT().Get(gomock.Any(), "prefs.oldest_first").Return(&model.Setting{Key: "prefs.oldest_first", Value: "true"}, nil)

	prefs, err := svc.GetPreferences(context.Background())
	require.NoError(t, err)
	require.Equal(t, service.Preferences{OnlyUnread: false, OldestFirst: true}, prefs)
}

func TestSettingsService_SetPreferences(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockSettingsRepository(ctrl)
	svc := service.NewSettingsService(repo)

	repo.EXPECT().Set(gomock.Any(), "prefs.only_unread", "false").Return(nil)
	repo.EXPECT().Set(gomock.Any(), "prefs.oldest_first", "true").Return(nil)

	require.NoError(t, svc.SetPreferences(context.Background(), service.Preferences{OnlyUnread: false, OldestFirst: true}))
}
