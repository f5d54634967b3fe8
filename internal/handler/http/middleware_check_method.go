// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-flashcards/internal/app"
	"github.com/MKhiriev/go-flashcards/internal/utils"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method
// is not handled. This function answers the same JSON 404 as an unknown
// path instead, hiding which methods a path supports.
//
// If the router does resolve the method for the path, the request is
// forwarded to the router's normal ServeHTTP pipeline.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			notFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}

// notFound is the router's NotFound handler.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}
