package domain

import "time"

// APIKey is a user-supplied credential for the translation backend.
// At most one key per user is active at any time.
type APIKey struct {
	ID        string
	UserID    string
	Key       string
	IsActive  bool
	CreatedAt time.Time
}
