// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the saved session or runs the login flow, then hands control to
// the library browser until the user quits or logs out.
package client
