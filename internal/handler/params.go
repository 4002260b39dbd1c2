package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"ocreader/internal/service"
)

const (
	defaultItemLimit = 50
	maxItemLimit     = 200
)

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// parseTreeItemRef reads the kind and id query parameters. Virtual tree
// items need no id.
func parseTreeItemRef(kind, rawID string) (service.TreeItemRef, error) {
	var id int64
	if rawID != "" {
		parsed, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			return service.TreeItemRef{}, service.ErrInvalid
		}
		id = parsed
	}
	return service.ParseTreeItemRef(kind, id)
}

// parseListOptions applies the query parameters over the stored
// preferences.
func parseListOptions(c echo.Context, prefs service.Preferences) service.ListOptions {
	opts := service.ListOptions{
		OnlyUnread:  prefs.OnlyUnread,
		OldestFirst: prefs.OldestFirst,
		Limit:       defaultItemLimit,
	}
	if raw := c.QueryParam("onlyUnread"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			opts.OnlyUnread = v
		}
	}
	if raw := c.QueryParam("oldestFirst"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			opts.OldestFirst = v
		}
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err == nil && limit > 0 && limit <= maxItemLimit {
			opts.Limit = limit
		}
	}
	if raw := c.QueryParam("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err == nil && offset >= 0 {
			opts.Offset = offset
		}
	}
	return opts
}
