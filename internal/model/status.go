package model

import "time"

// Status is the server's answer to the status call.
type Status struct {
	Version                  string
	ImproperlyConfiguredCron bool
	IncorrectDBCharset       bool
	User                     *User
}

type User struct {
	UserID      string
	DisplayName string
	LastLogin   *time.Time
	AvatarMime  *string
	AvatarData  *string
}
