package newsapi_test

import (
	"testing"

	"ocreader/internal/model"
	"ocreader/internal/newsapi"

	"github.com/stretchr/testify/require"
)

func TestEncodeItemChange(t *testing.T) {
	hash := "abc"

	out, err := newsapi.EncodeItemChange(model.Item{ID: 1, ContentHash: &hash, Unread: false, UnreadChanged: true, Starred: true})
	require.NoError(t, err)
	require.JSONEq(t, `{"id": 1, "contentHash": "abc", "isUnread": false}`, string(out))

	out, err = newsapi.EncodeItemChange(model.Item{ID: 2, Starred: true, StarredChanged: true})
	require.NoError(t, err)
	require.JSONEq(t, `{"id": 2, "contentHash": null, "isStarred": true}`, string(out))
}

func TestEncodeItemChanges(t *testing.T) {
	out, err := newsapi.EncodeItemChanges(nil)
	require.NoError(t, err)
	require.JSONEq(t, `{"items": []}`, string(out))

	out, err = newsapi.EncodeItemChanges([]model.Item{
		{ID: 1, UnreadChanged: true, Unread: true},
		{ID: 2, StarredChanged: true},
	})
	require.NoError(t, err)
	require.JSONEq(t, `{"items": [
	  {"id": 1, "contentHash": null, "isUnread": true},
	  {"id": 2, "contentHash": null, "isStarred": false}
	]}`, string(out))
}
