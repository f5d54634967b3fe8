// Package utils holds small helpers shared by the server and the client:
// request-context keys, JWT issuing and parsing, bcrypt password hashing,
// JSON response writing, the resty client constructor and key generation.
package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the authenticated user's id (int64) in a request context.
// It is set by the auth middleware once the bearer token has been verified.
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying userID under UserIDCtxKey.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext returns the user id set by WithUserID. ok is false when
// the value is missing or not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
