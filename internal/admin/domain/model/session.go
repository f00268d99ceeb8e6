package model

import "time"

// Session is a staff admin session. Sessions live in the Redis store under
// their ID and expire with the configured TTL; logging out deletes the entry,
// which revokes the cookie token even before it expires.
type Session struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
