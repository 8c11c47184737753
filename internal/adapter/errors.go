package adapter

import "errors"

// Sentinel errors mapped from transport failures and HTTP status classes by
// the response classifier. Callers match them with [errors.Is].
var (
	ErrTimeout      = errors.New("request timed out")
	ErrNetwork      = errors.New("server unreachable")
	ErrBadRequest   = errors.New("invalid request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("access denied")
	ErrNotFound     = errors.New("resource not found")
	ErrServer       = errors.New("server error")
)
