package newsapi_test

import (
	"testing"

	"ocreader/internal/newsapi"

	"github.com/stretchr/testify/require"
)

func TestCheckVersion(t *testing.T) {
	require.NoError(t, newsapi.CheckVersion("8.8.2"))
	require.NoError(t, newsapi.CheckVersion("8.9"))
	require.NoError(t, newsapi.CheckVersion("25.0.0-alpha.1"))
	require.NoError(t, newsapi.CheckVersion("v18.1.1"))

	require.ErrorIs(t, newsapi.CheckVersion("8.8.0"), newsapi.ErrVersionTooOld)
	require.ErrorIs(t, newsapi.CheckVersion("7"), newsapi.ErrVersionTooOld)
	require.ErrorIs(t, newsapi.CheckVersion("latest"), newsapi.ErrInvalidVersion)
	require.ErrorIs(t, newsapi.CheckVersion(""), newsapi.ErrInvalidVersion)
}
