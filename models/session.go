package models

import "time"

// LocalSession is the authenticated client state persisted between runs of
// the terminal client, so a still-valid token skips the login screen.
type LocalSession struct {
	UserID   int64
	Username string
	Email    string
	Token    string
	SavedAt  time.Time
}
