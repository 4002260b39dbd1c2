package newsapi

import (
	"fmt"
	"time"

	"ocreader/internal/logger"
	"ocreader/internal/model"

	"github.com/tidwall/gjson"
)

// isoLayouts are the date formats the v2 API sends for publishedAt and
// updatedAt.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
}

// DecodeItem reads one item object. A JSON null yields nil. Unknown fields
// are logged and skipped.
func DecodeItem(raw gjson.Result) (*model.Item, error) {
	if raw.Type == gjson.Null || !raw.Exists() {
		return nil, nil
	}
	if !raw.IsObject() {
		return nil, fmt.Errorf("%w: item is not an object", ErrInvalidResponse)
	}

	item := model.Item{ID: -1}
	raw.ForEach(func(key, value gjson.Result) bool {
		switch key.String() {
		case "id":
			item.ID = value.Int()
		case "guid":
			item.GUID = value.String()
		case "guidHash":
			item.GUIDHash = value.String()
		case "url":
			item.URL = nullableString(value)
		case "title":
			title := cleanString(value.String())
			item.Title = &title
		case "author":
			item.Author = emptyToNil(value.String())
		case "pubDate":
			item.PubDate = unixTime(value)
		case "body":
			item.Body = nullableString(value)
		case "enclosureMime":
			if value.Type != gjson.Null {
				item.EnclosureMime = emptyToNil(value.String())
			}
		case "enclosureLink":
			if value.Type != gjson.Null {
				item.EnclosureLink = emptyToNil(value.String())
			}
		case "publishedAt":
			item.PubDate = parseISODate(value.String())
		case "updatedAt":
			item.UpdatedAt = parseISODate(value.String())
		case "enclosure":
			if value.IsObject() {
				item.EnclosureMime = nullableString(value.Get("mimeType"))
				item.EnclosureLink = nullableString(value.Get("url"))
			}
		case "feedId":
			item.FeedID = value.Int()
		case "unread", "isUnread":
			item.Unread = nullSafeBool(value, false)
		case "starred", "isStarred":
			item.Starred = nullSafeBool(value, false)
		case "lastModified":
			item.LastModified = value.Int()
		case "fingerprint":
			item.Fingerprint = nullableString(value)
		case "rtl", "contentHash":
			// not stored
		case "updatedDate":
			if value.Type == gjson.Number {
				item.UpdatedAt = unixTime(value)
			}
		default:
			logger.Warn("unknown value in item json", "module", "newsapi", "action", "decode", "resource", "item", "result", "skipped", "field", key.String())
		}
		return true
	})

	if item.UpdatedAt == nil {
		item.UpdatedAt = item.PubDate
	}
	return &item, nil
}

// DecodeItems reads the items array of an items response. Null entries
// are dropped.
func DecodeItems(data []byte) ([]model.Item, error) {
	root, err := parseObject(data)
	if err != nil {
		return nil, err
	}

	var items []model.Item
	var decodeErr error
	root.Get("items").ForEach(func(_, value gjson.Result) bool {
		item, err := DecodeItem(value)
		if err != nil {
			decodeErr = err
			return false
		}
		if item != nil {
			items = append(items, *item)
		}
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	return items, nil
}

func DecodeFeed(raw gjson.Result) (model.Feed, error) {
	if !raw.IsObject() {
		return model.Feed{}, fmt.Errorf("%w: feed is not an object", ErrInvalidResponse)
	}

	var feed model.Feed
	raw.ForEach(func(key, value gjson.Result) bool {
		switch key.String() {
		case "id":
			feed.ID = value.Int()
		case "url":
			feed.URL = value.String()
		case "title":
			if value.Type != gjson.Null {
				title := cleanString(value.String())
				feed.Name = &title
			}
		case "faviconLink":
			feed.FaviconLink = emptyToNilResult(value)
		case "added":
			feed.Added = unixTime(value)
		case "folderId":
			feed.FolderID = int64(nullSafeInt(value, 0))
		case "unreadCount":
			feed.UnreadCount = nullSafeInt(value, 0)
		case "ordering":
			feed.Ordering = nullSafeInt(value, 0)
		case "link":
			feed.Link = emptyToNilResult(value)
		case "pinned":
			feed.Pinned = nullSafeBool(value, false)
		case "updateErrorCount":
			feed.UpdateErrorCount = nullSafeInt(value, 0)
		case "lastUpdateError":
			feed.LastUpdateError = emptyToNilResult(value)
		case "isPinned":
			feed.Pinned = nullSafeBool(value, false)
		default:
			logger.Warn("unknown value in feed json", "module", "newsapi", "action", "decode", "resource", "feed", "result", "skipped", "field", key.String())
		}
		return true
	})
	return feed, nil
}

// FeedList is the answer of the feeds call.
type FeedList struct {
	Feeds        []model.Feed
	StarredCount int
	NewestItemID *int64
}

func DecodeFeeds(data []byte) (FeedList, error) {
	root, err := parseObject(data)
	if err != nil {
		return FeedList{}, err
	}

	var list FeedList
	var decodeErr error
	root.Get("feeds").ForEach(func(_, value gjson.Result) bool {
		feed, err := DecodeFeed(value)
		if err != nil {
			decodeErr = err
			return false
		}
		list.Feeds = append(list.Feeds, feed)
		return true
	})
	if decodeErr != nil {
		return FeedList{}, decodeErr
	}

	list.StarredCount = nullSafeInt(root.Get("starredCount"), 0)
	if newest := root.Get("newestItemId"); newest.Type == gjson.Number {
		id := newest.Int()
		list.NewestItemID = &id
	}
	return list, nil
}

func DecodeFolder(raw gjson.Result) (model.Folder, error) {
	if !raw.IsObject() {
		return model.Folder{}, fmt.Errorf("%w: folder is not an object", ErrInvalidResponse)
	}

	var folder model.Folder
	raw.ForEach(func(key, value gjson.Result) bool {
		switch key.String() {
		case "id":
			folder.ID = value.Int()
		case "name":
			folder.Name = value.String()
		case "opened", "feeds":
			// v1-3 extras
		default:
			logger.Warn("unknown value in folder json", "module", "newsapi", "action", "decode", "resource", "folder", "result", "skipped", "field", key.String())
		}
		return true
	})
	return folder, nil
}

func DecodeFolders(data []byte) ([]model.Folder, error) {
	root, err := parseObject(data)
	if err != nil {
		return nil, err
	}

	var folders []model.Folder
	var decodeErr error
	root.Get("folders").ForEach(func(_, value gjson.Result) bool {
		folder, err := DecodeFolder(value)
		if err != nil {
			decodeErr = err
			return false
		}
		folders = append(folders, folder)
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	return folders, nil
}

// DecodeStatus reads the status call. The v1-2 API names the warnings
// object "warnings", v2 calls it "issues".
func DecodeStatus(data []byte) (*model.Status, error) {
	if len(data) == 0 || gjson.ParseBytes(data).Type == gjson.Null {
		return nil, nil
	}
	root, err := parseObject(data)
	if err != nil {
		return nil, err
	}

	var status model.Status
	root.ForEach(func(key, value gjson.Result) bool {
		switch key.String() {
		case "version":
			status.Version = value.String()
		case "warnings", "issues":
			decodeWarnings(value, &status)
		case "user":
			status.User = DecodeUser(value)
		default:
			logger.Warn("unknown value in status json", "module", "newsapi", "action", "decode", "resource", "status", "result", "skipped", "field", key.String())
		}
		return true
	})
	return &status, nil
}

func decodeWarnings(raw gjson.Result, status *model.Status) {
	raw.ForEach(func(key, value gjson.Result) bool {
		switch key.String() {
		case "improperlyConfiguredCron":
			status.ImproperlyConfiguredCron = nullSafeBool(value, false)
		case "incorrectDbCharset":
			status.IncorrectDBCharset = nullSafeBool(value, false)
		default:
			logger.Warn("unknown value in status warnings json", "module", "newsapi", "action", "decode", "resource", "status", "result", "skipped", "field", key.String())
		}
		return true
	})
}

// DecodeUser reads a user object, returning nil for JSON null.
func DecodeUser(raw gjson.Result) *model.User {
	if !raw.IsObject() {
		return nil
	}

	var user model.User
	raw.ForEach(func(key, value gjson.Result) bool {
		switch key.String() {
		case "userId":
			user.UserID = value.String()
		case "displayName":
			user.DisplayName = value.String()
		case "lastLoginTimestamp":
			user.LastLogin = unixTime(value)
		case "avatar":
			if value.IsObject() {
				user.AvatarData = nullableString(value.Get("data"))
				user.AvatarMime = nullableString(value.Get("mime"))
			}
		default:
			logger.Warn("unknown value in user json", "module", "newsapi", "action", "decode", "resource", "user", "result", "skipped", "field", key.String())
		}
		return true
	})
	return &user
}

func parseObject(data []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, fmt.Errorf("%w: malformed json", ErrInvalidResponse)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return gjson.Result{}, fmt.Errorf("%w: expected an object", ErrInvalidResponse)
	}
	return root, nil
}

func parseISODate(s string) *time.Time {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	logger.Error("failed to parse date", "module", "newsapi", "action", "decode", "resource", "item", "result", "failed", "value", s)
	return nil
}

func unixTime(value gjson.Result) *time.Time {
	if value.Type != gjson.Number {
		return nil
	}
	t := time.Unix(value.Int(), 0).UTC()
	return &t
}

func nullableString(value gjson.Result) *string {
	if value.Type == gjson.Null || !value.Exists() {
		return nil
	}
	s := value.String()
	return &s
}

func emptyToNilResult(value gjson.Result) *string {
	if value.Type == gjson.Null {
		return nil
	}
	return emptyToNil(value.String())
}

func nullSafeInt(value gjson.Result, def int) int {
	if value.Type == gjson.Null || !value.Exists() {
		return def
	}
	return int(value.Int())
}

func nullSafeBool(value gjson.Result, def bool) bool {
	if value.Type == gjson.Null || !value.Exists() {
		return def
	}
	return value.Bool()
}
