package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-flashcards/internal/app"
	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.RegisterUser(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", user.ID).Msg("user registered")
	h.issueToken(w, r, user, app.MsgUserCreated, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("user_id", user.ID).Msg("user successfully logged in")
	h.issueToken(w, r, user, app.MsgLoginSuccessful, http.StatusOK)
}

// issueToken answers with {message, token, user} and repeats the token in
// the Authorization header.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, user models.User, message string, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	writeJSON(w, r, models.AuthResponse{
		Message: message,
		Token:   token.SignedString,
		User:    user,
	}, status)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.GetProfile(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request) {
	var req models.UserUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.UpdateProfile(r.Context(), userID(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, user, http.StatusOK)
}
