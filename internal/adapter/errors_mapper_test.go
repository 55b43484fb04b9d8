package adapter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// doRequest performs a throwaway GET against handler and returns the resty
// response for mapping.
func doRequest(t *testing.T, handler http.HandlerFunc) *resty.Response {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	resp, err := resty.New().SetBaseURL(srv.URL).R().Get("/")
	require.NoError(t, err)
	return resp
}

func respondWith(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

// ── errorDetail ──────────────────────────────────────────────────────────────

func TestErrorDetail(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		want   string
		wantOK bool
	}{
		{"string detail", `{"detail": "weights must sum to 1"}`, "weights must sum to 1", true},
		{"detail among other fields", `{"code": 42, "detail": "nope"}`, "nope", true},
		{"missing detail", `{"error": "other convention"}`, "", false},
		{"empty detail", `{"detail": ""}`, "", false},
		{"null detail", `{"detail": null}`, "", false},
		{"object detail", `{"detail": {"loc": ["body"], "msg": "invalid"}}`, "", false},
		{"array detail", `{"detail": [{"msg": "invalid"}]}`, "", false},
		{"numeric detail", `{"detail": 500}`, "", false},
		{"malformed body", `{"detail": "unterminated`, "", false},
		{"plain text body", `internal server error`, "", false},
		{"empty body", ``, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := errorDetail([]byte(tt.body))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── mapAPIError ──────────────────────────────────────────────────────────────

func TestMapAPIError_SuccessStatusesPass(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusCreated, http.StatusNoContent} {
		resp := doRequest(t, respondWith(status, ""))
		assert.NoError(t, mapAPIError(resp))
	}
}

func TestMapAPIError_UsesDetailVerbatim(t *testing.T) {
	resp := doRequest(t, respondWith(http.StatusUnprocessableEntity, `{"detail": "Invalid weights: personal and work must sum to 1.0"}`))

	err := mapAPIError(resp)
	require.Error(t, err)
	assert.EqualError(t, err, "Invalid weights: personal and work must sum to 1.0")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "Invalid weights: personal and work must sum to 1.0", apiErr.Detail)
}

func TestMapAPIError_FallsBackToStatusText(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"empty body", http.StatusNotFound, "", "Not Found"},
		{"plain text body", http.StatusInternalServerError, "boom", "Internal Server Error"},
		{"structured detail", http.StatusUnprocessableEntity, `{"detail": [{"msg": "bad"}]}`, "Unprocessable Entity"},
		{"other error convention", http.StatusBadGateway, `{"error": "upstream down"}`, "Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, respondWith(tt.status, tt.body))

			err := mapAPIError(resp)
			require.Error(t, err)
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestMapAPIError_UnknownStatusCode(t *testing.T) {
	// 599 has no registered reason phrase
	resp := doRequest(t, respondWith(599, ""))

	err := mapAPIError(resp)
	require.Error(t, err)
	assert.EqualError(t, err, "request failed with status 599")
}

func TestMapAPIError_RedirectIsFailure(t *testing.T) {
	// resty follows redirects; a raw 304 reaches the mapper unfollowed
	resp := doRequest(t, respondWith(http.StatusNotModified, ""))

	err := mapAPIError(resp)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotModified, apiErr.StatusCode)
}
