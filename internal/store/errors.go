package store

import "errors"

// Sentinel errors returned by repositories. Match them with [errors.Is].
var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when a create or update would
	// duplicate another user's email (unique_violation on users.email).
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrFolderNotFound is returned when the folder does not exist or is not
	// owned by the caller. The two cases are deliberately indistinguishable.
	ErrFolderNotFound = errors.New("folder not found")

	// ErrDeckNotFound is returned when the deck does not exist or, in a
	// restricted scope, is not reachable through the caller's folders.
	ErrDeckNotFound = errors.New("deck not found")

	// ErrCardNotFound is returned when the card does not exist in the given deck.
	ErrCardNotFound = errors.New("card not found")

	// ErrImageNotFound is returned by image storages for an unknown key.
	ErrImageNotFound = errors.New("image not found")

	// ErrLocalSessionNotFound is returned by the client session storage when
	// nobody is logged in on this machine.
	ErrLocalSessionNotFound = errors.New("local session not found")
)

// Low-level errors wrapped around driver failures.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")

	ErrExecutingQuery = errors.New("error executing sql query")

	ErrExecutingStatement = errors.New("failed to execute statement")

	ErrScanningRow = errors.New("failed to scan row")

	ErrScanningRows = errors.New("failed to scan rows")

	ErrStoringImage = errors.New("failed to store image")
)
