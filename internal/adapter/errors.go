package adapter

import "errors"

// Transport errors mapped from HTTP status codes by mapHTTPError. The
// server's message is appended after ": ".
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// ErrSessionExpired is returned when a 401 cannot be recovered by a token
// refresh. The local session has been cleared by then.
var ErrSessionExpired = errors.New("session expired")
