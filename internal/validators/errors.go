package validators

import (
	"errors"
	"fmt"
)

// ErrValidation is the root of every validation failure.
var ErrValidation = errors.New("validation failed")

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUsernameRequired   = fmt.Errorf("%w: username is required", ErrValidation)
	ErrEmailRequired      = fmt.Errorf("%w: email is required", ErrValidation)
	ErrInvalidEmail       = fmt.Errorf("%w: invalid email", ErrValidation)
	ErrPasswordRequired   = fmt.Errorf("%w: password is required", ErrValidation)
	ErrPasswordTooShort   = fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLength)
	ErrTitleRequired      = fmt.Errorf("%w: title is required", ErrValidation)
	ErrTermRequired       = fmt.Errorf("%w: term is required", ErrValidation)
	ErrDefinitionRequired = fmt.Errorf("%w: definition is required", ErrValidation)
	ErrInvalidFolderID    = fmt.Errorf("%w: invalid folder_id", ErrValidation)
)
