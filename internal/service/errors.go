package service

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
	ErrInvalid        = errors.New("invalid")
	ErrFeedFetch      = errors.New("feed fetch failed")
	ErrNotLoggedIn    = errors.New("not logged in")
	ErrAlreadySyncing = errors.New("sync already in progress")
)
