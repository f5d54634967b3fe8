package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT payload issued on login and registration.
//
// UserID is serialized as "userId" so that tokens stay readable by any client
// that decodes the payload without verifying it.
type Claims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers
// or stored on the client side.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the userId claim.
	UserID int64 `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
