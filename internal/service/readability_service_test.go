package service_test

import (
	"context"
	"net/http"
	"testing"

	"ocreader/internal/model"
	"ocreader/internal/repository/mock"
	"ocreader/internal/repository/testutil"
	"ocreader/internal/service"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const articlePage = `<!DOCTYPE html>
<html>
<head><title>Story</title><script>alert(1)</script></head>
<body>
<nav>menu</nav>
<article>
<h1>Story</h1>
<p>The first paragraph of the story is long enough to look like real content for the parser to keep it around, and it goes on for a while, describing the harbour, the boats, the fishermen, and the weather that kept everyone inside for most of the winter that year.</p>
<p>The second paragraph adds more text so that the article clearly outweighs the navigation and other chrome, with commas, clauses, and enough sentences that any scoring of paragraphs, by length or by punctuation, ends up in favour of this block.</p>
<p>The third paragraph closes the story with a few more sentences about nothing in particular at all, except that spring eventually came, the ice broke up in the bay, and the boats went out again as they always had, early in the morning.</p>
</article>
</body>
</html>`

func TestReadabilityService_FetchAndCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	items := mock.NewMockItemRepository(ctrl)
	svc := service.NewReadabilityService(items, staticClientFactory(http.StatusOK, articlePage))

	items.EXPECT().GetByID(gomock.Any(), int64(1)).Return(model.Item{ID: 1, URL: testutil.StringPtr("https://example.com/story")}, nil)
	var stored string
	items.EXPECT().UpdateReadableContent(gomock.Any(), int64(1), gomock.Any()).DoAndReturn(func(_ context.Context, _ int64, content string) error {
		stored = content
		return nil
	})

	content, err := svc.FetchReadableContent(context.Background(), 1)
	require.NoError(t, err)
	require.Contains(t, content, "first paragraph")
	require.NotContains(t, content, "alert(1)")
	require.Equal(t, stored, content)
}

func TestReadabilityService_ReturnsCachedContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	items := mock.NewMockItemRepository(ctrl)
	svc := service.NewReadabilityService(items, staticClientFactory(http.StatusInternalServerError, ""))

	items.EXPECT().GetByID(gomock.Any(), int64(1)).Return(model.Item{ID: 1, ReadableContent: testutil.StringPtr("<p>cached</p>")}, nil)

	content, err := svc.FetchReadableContent(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "<p>cached</p>", content)
}

func TestReadabilityService_MissingURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	items := mock.NewMockItemRepository(ctrl)
	svc := service.NewReadabilityService(items, nil)

	items.EXPECT().GetByID(gomock.Any(), int64(1)).Return(model.Item{ID: 1}, nil)

	_, err := svc.FetchReadableContent(context.Background(), 1)
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestReadabilityService_HTTPError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	items := mock.NewMockItemRepository(ctrl)
	svc := service.NewReadabilityService(items, staticClientFactory(http.StatusBadGateway, ""))

	items.EXPECT().GetByID(gomock.Any(), int64(1)).Return(model.Item{ID: 1, URL: testutil.StringPtr("https://example.com/story")}, nil)

	_, err := svc.FetchReadableContent(context.Background(), 1)
	require.Error(t, err)
}
