// Package utils provides small helpers shared across the client:
// HTTP client construction, outbound request identifiers and
// bearer-token normalization.
package utils

import (
	"net/http/cookiejar"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while fixing the pieces every exchange with the configuration
// API relies on.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient with an in-memory cookie jar
// installed. Session cookies set by the server are carried on every
// subsequent request made through the same client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool and cookie state.
func NewHTTPClient() (*HTTPClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetCookieJar(jar)

	return &HTTPClient{Client: client}, nil
}
