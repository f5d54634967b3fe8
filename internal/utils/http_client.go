package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so the adapter can call R() directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a resty client rooted at baseURL that sends and
// expects JSON. A zero timeout leaves resty's default (none).
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		c.SetTimeout(timeout)
	}

	return &HTTPClient{Client: c}
}
