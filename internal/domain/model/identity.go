package model

import "time"

// Identity is the user record as asserted by the backend on the current
// response. The gateway never persists it beyond the request except for the
// user id inside Session.
type Identity struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	IsModerator bool      `json:"isModerator"`
	IsAdmin     bool      `json:"isAdmin"`
	CreatedAt   time.Time `json:"createdAt"`
}
