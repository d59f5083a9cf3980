// file: model/session.go

package model

import "time"

// Session records a token issued at login. Rows are removed on logout only;
// expiry is enforced by the token itself.
type Session struct {
	ID        string    `json:"id"`
	UserID    int       `json:"user_id"`
	Token     string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
