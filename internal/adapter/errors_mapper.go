package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// errorDetail extracts the "detail" message from an error response body.
// The second return value reports whether a usable message was found:
// malformed bodies, missing fields, and non-string detail values all
// yield false rather than an error, so the caller can fall back to the
// HTTP status text.
func errorDetail(body []byte) (string, bool) {
	var envelope struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", false
	}
	if envelope.Detail == "" {
		return "", false
	}
	return envelope.Detail, true
}

// mapAPIError normalizes resp into an error value: nil for 2xx, an
// [*APIError] otherwise. The error message is the body's "detail" field
// when present, the status reason phrase when not, and a generic
// formatted message for status codes the standard library has no text
// for.
func mapAPIError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	detail, ok := errorDetail(resp.Body())
	if !ok {
		detail = http.StatusText(resp.StatusCode())
	}
	if detail == "" {
		detail = fmt.Sprintf("request failed with status %d", resp.StatusCode())
	}

	return &APIError{StatusCode: resp.StatusCode(), Detail: detail}
}
