package common

import "errors"

// Sentinel errors shared by the local and the delegated authentication
// paths. Callers should use errors.Is to match these values; the gRPC and
// HTTP boundaries translate them into status codes and back.
var (
	// Repository-level errors.
	ErrorNotFound           = errors.New("not found")
	ErrorLoginAlreadyExists = errors.New("login already exists")

	// Input validation errors.
	ErrorValidation = errors.New("validation error")

	// Credential verification errors. Deliberately a single value for both
	// "unknown login" and "wrong password".
	ErrorInvalidCredentials = errors.New("invalid login/password")

	// Token errors (invalid signature, malformed, missing subject).
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired is distinguished internally so clients can attempt a
	// refresh; at the API boundary it still surfaces as unauthenticated.
	ErrTokenExpired = errors.New("token expired")

	// Request-level errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Transport/service errors.
	ErrorUnavailable = errors.New("service unavailable")
	ErrorInternal    = errors.New("internal error")
)
