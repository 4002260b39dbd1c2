package model_test

import (
	"testing"
	"time"

	"ocreader/internal/model"

	"github.com/stretchr/testify/require"
)

func TestFeed_IsConsideredFailed(t *testing.T) {
	require.False(t, model.Feed{UpdateErrorCount: 0}.IsConsideredFailed())
	require.False(t, model.Feed{UpdateErrorCount: 49}.IsConsideredFailed())
	require.True(t, model.Feed{UpdateErrorCount: 50}.IsConsideredFailed())
	require.True(t, model.Feed{UpdateErrorCount: 120}.IsConsideredFailed())
}

func TestFeed_Title(t *testing.T) {
	name := "Planet Go"
	require.Equal(t, "Planet Go", model.Feed{URL: "https://planet.example/rss", Name: &name}.Title())
	require.Equal(t, "https://planet.example/rss", model.Feed{URL: "https://planet.example/rss"}.Title())
}

func TestItem_IsReduced(t *testing.T) {
	title := "Hello"
	require.True(t, model.Item{ID: 1}.IsReduced())
	require.False(t, model.Item{ID: 1, Title: &title}.IsReduced())
}

func TestItem_HasChanges(t *testing.T) {
	require.False(t, model.Item{}.HasChanges())
	require.True(t, model.Item{UnreadChanged: true}.HasChanges())
	require.True(t, model.Item{StarredChanged: true}.HasChanges())
}

func TestItem_EffectiveUpdatedAt(t *testing.T) {
	pub := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	upd := pub.Add(time.Hour)

	require.Nil(t, model.Item{}.EffectiveUpdatedAt())
	require.Equal(t, pub, *model.Item{PubDate: &pub}.EffectiveUpdatedAt())
	require.Equal(t, upd, *model.Item{PubDate: &pub, UpdatedAt: &upd}.EffectiveUpdatedAt())
}
