package api

import "errors"

// Error is a non-2xx backend response. Message follows the backend contract:
// the JSON "message" field when present, the raw text body otherwise, and
// "Request failed" when neither exists.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// AsError unwraps err into an *Error if it is one.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsUnauthorized reports whether err is a 401 response.
func IsUnauthorized(err error) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Status == 401
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Status == 404
}
