package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrNothingUpdated is returned for a profile update without fields.
	ErrNothingUpdated = errors.New("nothing updated")
	// ErrNothingToUpdate is returned for folder, deck and card updates
	// without fields.
	ErrNothingToUpdate = errors.New("nothing to update")

	// ErrFolderIDRequired is returned under strict ownership when a deck is
	// created outside any folder.
	ErrFolderIDRequired = errors.New("folder_id is required")

	ErrImageTooLarge        = errors.New("image too large")
	ErrUnsupportedImageType = errors.New("unsupported image type")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)

// Client-side errors.
var (
	ErrNotLoggedIn      = errors.New("not logged in")
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
)
