package http

import (
	"net/http"

	"github.com/MKhiriev/go-flashcards/internal/app"
	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the user's ID in the request
// context under [utils.UserIDCtxKey] before delegating to the next handler.
// The request logger is tagged with the same id.
//
// A missing header answers 401 "No token provided"; a malformed header or a
// rejected token answers 401 "Invalid token".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, app.MsgNoTokenProvided, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			utils.WriteError(w, app.MsgInvalidToken, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, app.MsgInvalidToken, http.StatusUnauthorized)
			return
		}

		ctx = utils.WithUserID(ctx, token.UserID)
		ctx = log.WithUserID(token.UserID).WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
