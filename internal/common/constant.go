// Package common contains shared constants and sentinel errors used across
// ssocore components.
package common

const (
	// AuthHeaderName is the gRPC/HTTP metadata key used to carry the
	// caller's credentials on requests that need an authenticated principal.
	AuthHeaderName = "authorization"

	// BearerPrefix is the credential scheme expected in AuthHeaderName.
	BearerPrefix = "Bearer "
)
