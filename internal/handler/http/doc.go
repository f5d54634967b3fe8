// Package http serves the flashcards REST API.
//
// Routes live under /api. Registration, login, image download and the
// version endpoint are public; folders, decks, cards and the profile require
// a bearer token issued at login. Errors are answered as {"error": "..."}
// with the status picked by statusFromError.
package http
