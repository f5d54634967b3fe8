package adapter

import "errors"

// Transport errors. mapHTTPError wraps one of them together with the
// server's "error" message, e.g. "not found: Deck not found".
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrInternalServerError = errors.New("internal server error")

	// ErrNoToken is returned by authenticated calls made before Login,
	// Register or SetToken.
	ErrNoToken = errors.New("no token set")
)
