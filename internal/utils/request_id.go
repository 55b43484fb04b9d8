package utils

import "github.com/google/uuid"

// RequestID returns an identifier for an outbound API request. UUIDv7
// keeps identifiers time-ordered in server logs; a random UUID is the
// fallback when v7 generation fails.
func RequestID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
