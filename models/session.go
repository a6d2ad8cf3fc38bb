package models

import "time"

// Session links an opaque bearer token to a user account, representing
// "logged in" state. Sessions are created on login, deleted on logout,
// and never expire on their own.
//
// At most one session exists per user; the constraint is enforced by a
// unique index on the user_id column rather than an application-level
// check, so concurrent logins cannot race past it.
type Session struct {
	// Token is the opaque random string presented by clients in the
	// Authorization header. It is the primary key of the session record.
	Token string `json:"token"`

	// UserID references the owning user account. A session holds a weak
	// reference: deleting the session never touches the user.
	UserID int64 `json:"-"`

	// CreatedAt is the timestamp when the session was issued.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
