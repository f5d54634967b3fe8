// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-flashcards/internal/adapter"
	"github.com/MKhiriev/go-flashcards/internal/app"
	"github.com/MKhiriev/go-flashcards/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrNoToken):
		return ErrNotLoggedIn

	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgUserAlreadyExists:
			return store.ErrEmailAlreadyExists
		case app.MsgNothingToUpdate:
			return ErrNothingToUpdate
		case app.MsgFolderIDRequired:
			return ErrFolderIDRequired
		case app.MsgUnsupportedImageType:
			return ErrUnsupportedImageType
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgInvalidCredentials {
			return ErrWrongPassword
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgUserNotFound:
			return store.ErrUserNotFound
		case app.MsgFolderNotFound:
			return store.ErrFolderNotFound
		case app.MsgDeckNotFound:
			return store.ErrDeckNotFound
		case app.MsgCardNotFound:
			return store.ErrCardNotFound
		case app.MsgImageNotFound:
			return store.ErrImageNotFound
		case app.MsgNothingUpdated:
			return ErrNothingUpdated
		}

	case errors.Is(err, adapter.ErrPayloadTooLarge):
		return ErrImageTooLarge
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
