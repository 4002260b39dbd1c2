package newsapi

import (
	"fmt"

	"ocreader/internal/model"

	"github.com/tidwall/sjson"
)

// EncodeItemChange writes the pending state of an item: its id and
// content hash, plus isUnread and isStarred only for flags whose dirty bit
// is set.
func EncodeItemChange(item model.Item) ([]byte, error) {
	out := []byte(`{}`)
	var err error
	if out, err = sjson.SetBytes(out, "id", item.ID); err != nil {
		return nil, fmt.Errorf("encode item id: %w", err)
	}
	var contentHash interface{}
	if item.ContentHash != nil {
		contentHash = *item.ContentHash
	}
	if out, err = sjson.SetBytes(out, "contentHash", contentHash); err != nil {
		return nil, fmt.Errorf("encode item content hash: %w", err)
	}
	if item.UnreadChanged {
		if out, err = sjson.SetBytes(out, "isUnread", item.Unread); err != nil {
			return nil, fmt.Errorf("encode item unread: %w", err)
		}
	}
	if item.StarredChanged {
		if out, err = sjson.SetBytes(out, "isStarred", item.Starred); err != nil {
			return nil, fmt.Errorf("encode item starred: %w", err)
		}
	}
	return out, nil
}

// EncodeItemChanges wraps the encoded changes in {"items": [...]}.
func EncodeItemChanges(items []model.Item) ([]byte, error) {
	out := []byte(`{"items":[]}`)
	for _, item := range items {
		change, err := EncodeItemChange(item)
		if err != nil {
			return nil, err
		}
		if out, err = sjson.SetRawBytes(out, "items.-1", change); err != nil {
			return nil, fmt.Errorf("encode item changes: %w", err)
		}
	}
	return out, nil
}

func encodeItemIDs(ids []int64) ([]byte, error) {
	out := []byte(`{"items":[]}`)
	var err error
	for _, id := range ids {
		if out, err = sjson.SetBytes(out, "items.-1", id); err != nil {
			return nil, fmt.Errorf("encode item ids: %w", err)
		}
	}
	return out, nil
}

// StarRef addresses an item the way the star endpoints expect it.
type StarRef struct {
	FeedID   int64
	GUIDHash string
}

func encodeStarRefs(refs []StarRef) ([]byte, error) {
	out := []byte(`{"items":[]}`)
	for _, ref := range refs {
		entry, err := encodeFields("feedId", ref.FeedID, "guidHash", ref.GUIDHash)
		if err != nil {
			return nil, err
		}
		if out, err = sjson.SetRawBytes(out, "items.-1", entry); err != nil {
			return nil, fmt.Errorf("encode star refs: %w", err)
		}
	}
	return out, nil
}

// encodeFields builds a flat object from key/value pairs.
func encodeFields(kv ...interface{}) ([]byte, error) {
	out := []byte(`{}`)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("encode body: key %v is not a string", kv[i])
		}
		var err error
		if out, err = sjson.SetBytes(out, key, kv[i+1]); err != nil {
			return nil, fmt.Errorf("encode body %s: %w", key, err)
		}
	}
	return out, nil
}
