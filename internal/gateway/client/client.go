// Package client implements the gateway's connection to the remote
// authentication service. All user management is delegated over gRPC; the
// gateway itself holds no credential state.
package client

import (
	"context"
	"time"
)

// TokenPair bundles the access and refresh tokens returned by the remote
// service.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// UserInfo is the remote user profile as seen by the gateway.
type UserInfo struct {
	ID        int64
	Login     string
	Email     string
	FullName  string
	IsAdmin   bool
	CreatedAt time.Time
}

// Client is the delegate used by the HTTP layer. Privileged operations
// (Refresh, UpdatePassword, RemoveUser) forward the caller's bearer token.
type Client interface {
	Connect() error
	Close() error

	// WaitReady probes the remote service a bounded number of times and
	// returns common.ErrorUnavailable if it never answers. A failed probe is
	// not fatal: the gateway may start degraded and recover later.
	WaitReady(ctx context.Context) error

	Ping(ctx context.Context) error
	Register(ctx context.Context, login, email, fullName, password string) (int64, error)
	Login(ctx context.Context, login, password, appID string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken, appID string) (*TokenPair, error)
	UserInfo(ctx context.Context, userID int64) (*UserInfo, error)
	IsAdmin(ctx context.Context, userID int64) (bool, error)
	UpdatePassword(ctx context.Context, accessToken string, targetID int64, newPassword string) error
	RemoveUser(ctx context.Context, accessToken string, targetID int64) error
}
