package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-flashcards/internal/app"
	"github.com/MKhiriev/go-flashcards/internal/service"
	"github.com/MKhiriev/go-flashcards/internal/store"
	"github.com/MKhiriev/go-flashcards/internal/validators"
)

// errorStatus binds a sentinel to its HTTP status and public message.
// An empty message means the error text itself is safe to show.
type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatusTable is checked in order; the first errors.Is match wins.
var errorStatusTable = []errorStatus{
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON},
	{ErrInvalidID, http.StatusBadRequest, app.MsgInvalidID},
	{ErrDigestMismatch, http.StatusBadRequest, ""},
	{validators.ErrValidation, http.StatusBadRequest, ""},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrNothingToUpdate, http.StatusBadRequest, app.MsgNothingToUpdate},
	{service.ErrFolderIDRequired, http.StatusBadRequest, app.MsgFolderIDRequired},
	{service.ErrUnsupportedImageType, http.StatusBadRequest, app.MsgUnsupportedImageType},
	{store.ErrEmailAlreadyExists, http.StatusBadRequest, app.MsgUserAlreadyExists},

	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidCredentials},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgInvalidToken},

	{service.ErrNothingUpdated, http.StatusNotFound, app.MsgNothingUpdated},
	{store.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
	{store.ErrFolderNotFound, http.StatusNotFound, app.MsgFolderNotFound},
	{store.ErrDeckNotFound, http.StatusNotFound, app.MsgDeckNotFound},
	{store.ErrCardNotFound, http.StatusNotFound, app.MsgCardNotFound},
	{store.ErrImageNotFound, http.StatusNotFound, app.MsgImageNotFound},
	{store.ErrInvalidImageKey, http.StatusNotFound, app.MsgImageNotFound},

	{service.ErrImageTooLarge, http.StatusRequestEntityTooLarge, app.MsgImageTooLarge},
	{ErrBodyTooLarge, http.StatusRequestEntityTooLarge, app.MsgBodyTooLarge},
}

// statusFromError returns the HTTP status and response message for err.
// Anything not listed is a 500 with a generic message.
func statusFromError(err error) (int, string) {
	for _, e := range errorStatusTable {
		if errors.Is(err, e.target) {
			if e.message == "" {
				return e.status, err.Error()
			}
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
