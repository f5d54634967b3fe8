package models

import "time"

// User is a registered account. The email is unique across all users.
type User struct {
	// ID is the server-assigned identifier, also carried in the token's userId claim.
	ID int64 `json:"id"`

	// Username is the display name shown in the client.
	Username string `json:"username"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It never leaves the server.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserUpdateRequest is the body of PUT /api/auth/me.
// Absent fields are left untouched.
type UserUpdateRequest struct {
	Username Optional[string] `json:"username,omitzero"`
	Email    Optional[string] `json:"email,omitzero"`
}

// IsEmpty reports whether the request carries no field to update.
func (r UserUpdateRequest) IsEmpty() bool {
	return !r.Username.Set && !r.Email.Set
}
