// Package credentials supplies the bearer token attached to outbound API
// requests.
//
// A token may come from the environment (via config) or from a local
// credentials file managed by the auth commands. An empty token is a valid
// state: the client simply sends unauthenticated requests.
package credentials

// Source yields the bearer token for outbound requests.
//
// Implementations must be safe for concurrent use. An empty return value
// means no credentials are available and the Authorization header must be
// omitted entirely.
type Source interface {
	Token() string
}

// Static is a fixed-value Source, used when the token comes from an
// environment variable or a command-line flag.
type Static string

// Token returns the fixed token value.
func (s Static) Token() string {
	return string(s)
}
