package http

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-flashcards/internal/service"
)

const contentDigestHeader = "X-Content-SHA256"

// withContentDigest checks an upload against the hex SHA-256 sent in
// X-Content-SHA256. Requests without the header pass through unchanged.
// The body is restored for the next handler.
func (h *Handler) withContentDigest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		want := strings.ToLower(strings.TrimSpace(r.Header.Get(contentDigestHeader)))
		if want == "" {
			next.ServeHTTP(w, r)
			return
		}

		h.logger.Debug().Str("func", "*Handler.withContentDigest").Msg("checking digest begins")

		body := r.Body
		if h.maxImageBytes > 0 {
			body = http.MaxBytesReader(w, r.Body, h.maxImageBytes)
		}

		data, err := io.ReadAll(body)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, r, service.ErrImageTooLarge)
				return
			}
			h.logger.Err(err).Str("func", "*Handler.withContentDigest").Msg("failed to read request body")
			writeError(w, r, err)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(data))

		sum := sha256.Sum256(data)
		if got := hex.EncodeToString(sum[:]); got != want {
			h.logger.Debug().Str("func", "*Handler.withContentDigest").
				Str("digest from request", want).
				Str("digest of body", got).
				Msg("digests are not equal")
			writeError(w, r, fmt.Errorf("%w: expected %s", ErrDigestMismatch, want))
			return
		}

		next.ServeHTTP(w, r)
	})
}
