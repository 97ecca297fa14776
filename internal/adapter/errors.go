package adapter

import "errors"

var (
	// ErrUnauthorized maps HTTP 401: missing/expired token or bad credentials.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrBadRequest maps HTTP 400: the server rejected the request payload.
	ErrBadRequest = errors.New("bad request")
	// ErrConflict maps HTTP 409: uniqueness violation (e.g. duplicate email).
	ErrConflict = errors.New("conflict")
)
