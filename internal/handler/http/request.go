package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/internal/utils"
)

// maxJSONBytes caps a decoded JSON body, after gzip decoding.
const maxJSONBytes = 1 << 20

// decodeJSON reads at most maxJSONBytes of r's body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxJSONBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, tooLarge.Limit)
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// pathID parses the named chi URL parameter as a positive id.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidID, name, chi.URLParam(r, name))
	}
	return id, nil
}

// userID returns the caller set by the auth middleware. Routes using it are
// always mounted behind auth, so a missing id is a wiring bug.
func userID(r *http.Request) int64 {
	id, _ := utils.GetUserIDFromContext(r.Context())
	return id
}

// writeError logs err and writes the mapped {"error": ...} response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, msg, status)
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
	}
}
