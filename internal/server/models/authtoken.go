package models

import "time"

// AuthToken binds an opaque bearer value to exactly one account.
type AuthToken struct {
	Key       string
	AccountID string
	CreatedAt time.Time
}
