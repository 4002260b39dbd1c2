package newsapi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInsecureConnection = errors.New("refusing to send credentials over an insecure connection")
	ErrInvalidURL         = errors.New("invalid server url")
	ErrUnknownHost        = errors.New("unknown host")
	ErrUnauthorized       = errors.New("wrong username or password")
	ErrNotFound           = errors.New("not found on server")
	ErrConflict           = errors.New("already exists on server")
	ErrUnprocessable      = errors.New("rejected by server")
	ErrVersionTooOld      = errors.New("news app version is too old")
	ErrInvalidVersion     = errors.New("invalid news app version")
	ErrInvalidResponse    = errors.New("invalid response from server")
)

// HTTPError is a non-2xx answer of the News API. It matches the sentinel
// errors above with errors.Is where the status code has a fixed meaning.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("news api: %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
	}
	return fmt.Sprintf("news api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *HTTPError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrConflict:
		return e.StatusCode == http.StatusConflict
	case ErrUnprocessable:
		return e.StatusCode == http.StatusUnprocessableEntity
	}
	return false
}

// Temporary reports whether retrying the request may succeed.
func (e *HTTPError) Temporary() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}
