package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-flashcards/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUsername   = "username"
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldTitle      = "title"
	FieldFolderID   = "folder_id"
	FieldTerm       = "term"
	FieldDefinition = "definition"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

// RequestValidator checks API request bodies before they reach a repository.
type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.UserUpdateRequest:
		return v.validateUserUpdate(value, fields...)

	case models.FolderCreateRequest:
		return v.validateTitled(value.Title, fields...)
	case models.FolderUpdateRequest:
		return v.validateTitleUpdate(value.Title, fields...)

	case models.DeckCreateRequest:
		return v.validateDeckCreate(value, fields...)
	case models.DeckUpdateRequest:
		return v.validateTitleUpdate(value.Title, fields...)

	case models.CardCreateRequest:
		return v.validateCardCreate(value, fields...)
	case models.CardUpdateRequest:
		return v.validateCardUpdate(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if blank(req.Username) {
				return ErrUsernameRequired
			}
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrPasswordRequired
			}
			if len([]rune(req.Password)) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLogin only checks presence. A malformed email simply fails to
// match any user.
func (v *RequestValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if blank(req.Email) {
				return ErrEmailRequired
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrPasswordRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateUserUpdate(req models.UserUpdateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if req.Username.Set && (req.Username.Null || blank(req.Username.Value)) {
				return ErrUsernameRequired
			}
		case FieldEmail:
			if !req.Email.Set {
				continue
			}
			if req.Email.Null {
				return ErrEmailRequired
			}
			if err := validateEmail(req.Email.Value); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateTitled(title string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if blank(title) {
				return ErrTitleRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateTitleUpdate rejects a title that is sent but null or blank.
// Descriptions may be cleared, so they are not checked.
func (v *RequestValidator) validateTitleUpdate(title models.Optional[string], fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if title.Set && (title.Null || blank(title.Value)) {
				return ErrTitleRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateDeckCreate(req models.DeckCreateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldFolderID}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if blank(req.Title) {
				return ErrTitleRequired
			}
		case FieldFolderID:
			if req.FolderID != nil && *req.FolderID <= 0 {
				return ErrInvalidFolderID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCardCreate(req models.CardCreateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTerm, FieldDefinition}
	}

	for _, f := range fields {
		switch f {
		case FieldTerm:
			if blank(req.Term) {
				return ErrTermRequired
			}
		case FieldDefinition:
			if blank(req.Definition) {
				return ErrDefinitionRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCardUpdate(req models.CardUpdateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTerm, FieldDefinition}
	}

	for _, f := range fields {
		switch f {
		case FieldTerm:
			if req.Term.Set && (req.Term.Null || blank(req.Term.Value)) {
				return ErrTermRequired
			}
		case FieldDefinition:
			if req.Definition.Set && (req.Definition.Null || blank(req.Definition.Value)) {
				return ErrDefinitionRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateEmail(email string) error {
	if blank(email) {
		return ErrEmailRequired
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}

	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
