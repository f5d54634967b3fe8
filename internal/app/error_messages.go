// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-flashcards server handlers and the client service layer.
//
// All Msg* constants are human-readable message strings written into the
// "error" or "message" field of API responses. The client matches on the
// same constants to turn a response body back into a typed error, so the
// wording must stay in one place.
package app

// Error messages.
const (
	// MsgInvalidDataProvided is returned when a body passes JSON decoding but
	// fails validation without a more specific message.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidJSON is returned when the request body is not valid JSON.
	MsgInvalidJSON = "invalid JSON body"

	// MsgInvalidGzip is returned when a gzip-encoded body cannot be read.
	MsgInvalidGzip = "invalid gzip body"

	// MsgNotFound answers unknown paths and unsupported methods.
	MsgNotFound = "Not found"

	// MsgInvalidID is returned when a path id is not a positive integer.
	MsgInvalidID = "invalid id"

	MsgNoTokenProvided = "No token provided"
	MsgInvalidToken    = "Invalid token"

	// MsgInvalidCredentials covers both an unknown email and a wrong password.
	MsgInvalidCredentials = "Invalid credentials"

	MsgUserAlreadyExists = "User already exists"
	MsgUserNotFound      = "User not found"
	MsgFolderNotFound    = "Folder not found"
	MsgDeckNotFound      = "Deck not found"
	MsgCardNotFound      = "Card not found"
	MsgImageNotFound     = "Image not found"

	// MsgNothingUpdated is the profile update answer when no field was sent.
	MsgNothingUpdated = "Nothing updated"

	// MsgNothingToUpdate is returned for folder, deck and card updates
	// without any field.
	MsgNothingToUpdate = "Nothing to update"

	// MsgFolderIDRequired is returned when strict ownership is on and a deck
	// is created outside any folder.
	MsgFolderIDRequired = "folder_id is required"

	MsgBodyTooLarge         = "Request body too large"
	MsgImageTooLarge        = "Image too large"
	MsgUnsupportedImageType = "Unsupported image type"

	// MsgInternalServerError hides the cause of an unexpected failure.
	// The cause is logged instead.
	MsgInternalServerError = "internal server error"
)

// Success messages.
const (
	MsgUserCreated     = "User created successfully"
	MsgLoginSuccessful = "Login successful"
	MsgFolderDeleted   = "Folder deleted"
	MsgDeckDeleted     = "Deck deleted"
	MsgCardDeleted     = "Card deleted"
	MsgBackendRunning  = "Backend is running"
)
