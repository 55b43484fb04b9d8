package adapter

// APIError is the uniform failure shape for every non-success response
// from the configuration API.
//
// Error returns exactly the normalized server message: the body's
// "detail" field when the body carries one, the HTTP status text
// otherwise. The value is directly presentable to the user. Callers
// that need the status code can recover it with errors.As.
type APIError struct {
	// StatusCode is the HTTP status of the failed response.
	StatusCode int

	// Detail is the normalized human-readable message.
	Detail string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Detail
}
