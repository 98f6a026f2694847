package model

import "time"

// Session is the per-browser credential record sealed into the session cookie.
// All three fields travel together: a write replaces the whole record.
type Session struct {
	AccessToken string `json:"accessToken,omitempty"`
	UserID      int64  `json:"userId,omitempty"`
	// ExpiresAt is epoch milliseconds. Zero means the backend did not
	// communicate a lifetime; the backend stays authoritative either way.
	ExpiresAt int64 `json:"expiresAt,omitempty"`
}

// Anonymous reports whether the session carries no credential.
func (s Session) Anonymous() bool {
	return s.AccessToken == ""
}

// Expired reports whether the locally stored expiry has passed. The check is
// advisory: the backend can revoke a token before this timestamp.
func (s Session) Expired(now time.Time) bool {
	return s.ExpiresAt != 0 && now.UnixMilli() > s.ExpiresAt
}
