package newsapi_test

import (
	"testing"
	"time"

	"ocreader/internal/newsapi"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const v12Item = `{
  "id": 3443,
  "guid": "http://grulja.wordpress.com/?p=76",
  "guidHash": "3059047a572cd9cd5d0bf645faffd077",
  "url": "http://grulja.wordpress.com/2013/04/29/plasma-nm-after-the-solid-sprint/",
  "title": "  Plasma-nm: After the &amp; <b>solid</b>\n sprint ",
  "author": "",
  "pubDate": 1367270544,
  "body": "<p>At first I have to say...</p>",
  "enclosureMime": null,
  "enclosureLink": "",
  "feedId": 67,
  "unread": true,
  "starred": false,
  "rtl": false,
  "lastModified": 1367273003,
  "fingerprint": "aeaae2123",
  "contentHash": "ignored",
  "updatedDate": 1367270600
}`

func TestDecodeItem_V12(t *testing.T) {
	item, err := newsapi.DecodeItem(gjson.Parse(v12Item))
	require.NoError(t, err)
	require.NotNil(t, item)

	require.Equal(t, int64(3443), item.ID)
	require.Equal(t, "3059047a572cd9cd5d0bf645faffd077", item.GUIDHash)
	require.Equal(t, "Plasma-nm: After the & solid sprint", *item.Title)
	require.Nil(t, item.Author)
	require.Nil(t, item.EnclosureMime)
	require.Nil(t, item.EnclosureLink)
	require.Nil(t, item.ContentHash)
	require.Equal(t, time.Unix(1367270544, 0).UTC(), *item.PubDate)
	require.Equal(t, time.Unix(1367270600, 0).UTC(), *item.UpdatedAt)
	require.Equal(t, int64(67), item.FeedID)
	require.True(t, item.Unread)
	require.False(t, item.Starred)
	require.False(t, item.UnreadChanged)
	require.Equal(t, int64(1367273003), item.LastModified)
	require.Equal(t, "aeaae2123", *item.Fingerprint)
}

func TestDecodeItem_V2(t *testing.T) {
	raw := `{
	  "id": 5,
	  "title": "v2",
	  "publishedAt": "2017-11-09T12:30:00+01:00",
	  "updatedAt": "2017-11-09T13:30:00+0100",
	  "enclosure": {"mimeType": "audio/mpeg", "url": "https://cdn.example/ep.mp3"},
	  "isUnread": false,
	  "isStarred": true,
	  "someNewField": 1
	}`
	item, err := newsapi.DecodeItem(gjson.Parse(raw))
	require.NoError(t, err)

	require.Equal(t, time.Date(2017, 11, 9, 11, 30, 0, 0, time.UTC), *item.PubDate)
	require.Equal(t, time.Date(2017, 11, 9, 12, 30, 0, 0, time.UTC), *item.UpdatedAt)
	require.Equal(t, "audio/mpeg", *item.EnclosureMime)
	require.Equal(t, "https://cdn.example/ep.mp3", *item.EnclosureLink)
	require.False(t, item.Unread)
	require.True(t, item.Starred)
}

func TestDecodeItem_Edges(t *testing.T) {
	item, err := newsapi.DecodeItem(gjson.Parse(`null`))
	require.NoError(t, err)
	require.Nil(t, item)

	item, err = newsapi.DecodeItem(gjson.Parse(`{"title": "x", "publishedAt": "yesterday", "updatedDate": "n/a"}`))
	require.NoError(t, err)
	require.Equal(t, int64(-1), item.ID)
	require.Nil(t, item.PubDate)
	require.Nil(t, item.UpdatedAt)

	item, err = newsapi.DecodeItem(gjson.Parse(`{"pubDate": 100}`))
	require.NoError(t, err)
	require.True(t, item.IsReduced())
	require.Equal(t, *item.PubDate, *item.UpdatedAt)

	_, err = newsapi.DecodeItem(gjson.Parse(`[1,2]`))
	require.ErrorIs(t, err, newsapi.ErrInvalidResponse)
}

func TestDecodeItems_DropsNull(t *testing.T) {
	items, err := newsapi.DecodeItems([]byte(`{"items": [` + v12Item + `, null]}`))
	require.NoError(t, err)
	require.Len(t, items, 1)

	_, err = newsapi.DecodeItems([]byte(`{"items": [`))
	require.ErrorIs(t, err, newsapi.ErrInvalidResponse)
}

func TestDecodeFeeds(t *testing.T) {
	raw := `{
	  "feeds": [
	    {"id": 39, "url": "http://feeds.feedburner.com/oatmealfeed", "title": "The Oatmeal", "faviconLink": "",
	     "added": 1367063790, "folderId": null, "unreadCount": 9, "ordering": 0, "link": "http://theoatmeal.com/",
	     "pinned": true, "updateErrorCount": 51, "lastUpdateError": "timeout"},
	    {"id": 40, "url": "u", "title": null, "folderId": 4}
	  ],
	  "starredCount": 2,
	  "newestItemId": 3443
	}`
	list, err := newsapi.DecodeFeeds([]byte(raw))
	require.NoError(t, err)
	require.Len(t, list.Feeds, 2)
	require.Equal(t, 2, list.StarredCount)
	require.Equal(t, int64(3443), *list.NewestItemID)

	oatmeal := list.Feeds[0]
	require.Equal(t, "The Oatmeal", *oatmeal.Name)
	require.Nil(t, oatmeal.FaviconLink)
	require.Equal(t, int64(0), oatmeal.FolderID)
	require.Equal(t, 9, oatmeal.UnreadCount)
	require.True(t, oatmeal.Pinned)
	require.True(t, oatmeal.IsConsideredFailed())
	require.Equal(t, time.Unix(1367063790, 0).UTC(), *oatmeal.Added)

	require.Nil(t, list.Feeds[1].Name)
	require.Equal(t, int64(4), list.Feeds[1].FolderID)
}

func TestDecodeFolders(t *testing.T) {
	folders, err := newsapi.DecodeFolders([]byte(`{"folders": [{"id": 4, "name": "Media"}, {"id": 5, "name": "Tech", "opened": true}]}`))
	require.NoError(t, err)
	require.Len(t, folders, 2)
	require.Equal(t, "Media", folders[0].Name)
	require.Equal(t, int64(5), folders[1].ID)
}

func TestDecodeStatus(t *testing.T) {
	status, err := newsapi.DecodeStatus([]byte(`{
	  "version": "18.1.1",
	  "warnings": {"improperlyConfiguredCron": true, "incorrectDbCharset": false},
	  "user": {"userId": "alice", "displayName": "Alice", "lastLoginTimestamp": 1241231, "avatar": {"data": "abc", "mime": "image/png"}}
	}`))
	require.NoError(t, err)
	require.Equal(t, "18.1.1", status.Version)
	require.True(t, status.ImproperlyConfiguredCron)
	require.False(t, status.IncorrectDBCharset)
	require.Equal(t, "alice", status.User.UserID)
	require.Equal(t, "image/png", *status.User.AvatarMime)

	status, err = newsapi.DecodeStatus([]byte(`{"version": "9.0.0", "issues": {"incorrectDbCharset": true}, "user": null}`))
	require.NoError(t, err)
	require.True(t, status.IncorrectDBCharset)
	require.Nil(t, status.User)

	status, err = newsapi.DecodeStatus([]byte(`null`))
	require.NoError(t, err)
	require.Nil(t, status)
}
