// Package services contains server-side business logic. This file implements
// UserService: registration, login, token refresh, password change, user
// removal, and profile lookups.
package services

import (
	"context"
	"errors"

	"github.com/mkuznetsov/ssocore/internal/common"
	"github.com/mkuznetsov/ssocore/internal/cryptox"
	"github.com/mkuznetsov/ssocore/internal/dbx"
	"github.com/mkuznetsov/ssocore/internal/logging"
	"github.com/mkuznetsov/ssocore/internal/server/auth"
	"github.com/mkuznetsov/ssocore/internal/server/shared/db"
	"github.com/mkuznetsov/ssocore/internal/server/users"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// UserService provides the authentication operations exposed over the wire.
// Authorization rules (self or admin for password change, admin for removal)
// live here, layered on top of the already-authenticated caller id.
type UserService struct {
	manager db.Manager
	hasher  *cryptox.Hasher
	tokens  *auth.TokenService
	logger  logging.Logger
}

func NewUserService(m db.Manager, hasher *cryptox.Hasher, tokens *auth.TokenService, logger logging.Logger) *UserService {
	return &UserService{
		manager: m,
		hasher:  hasher,
		tokens:  tokens,
		logger:  logger.With("module", "user_service"),
	}
}

// Register creates a new user. The pre-flight existence check gives a fast
// answer for the common case; the unique constraint on login is what actually
// prevents a duplicate under a concurrent race.
func (s *UserService) Register(ctx context.Context, login, email, fullName, password string) (*users.User, error) {
	if login == "" || password == "" {
		return nil, common.ErrorValidation
	}

	repo := s.manager.Users(s.manager.Conn())

	exists, err := repo.ExistsByLogin(ctx, login)
	if err != nil {
		s.logger.Error(ctx, "existence check failed", "login", login, "error", err)
		return nil, common.ErrorInternal
	}
	if exists {
		return nil, common.ErrorLoginAlreadyExists
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, cryptox.ErrEmptyPassword) {
			return nil, common.ErrorValidation
		}
		s.logger.Error(ctx, "password hashing failed", "error", err)
		return nil, common.ErrorInternal
	}

	user, err := repo.Create(ctx, &users.User{
		Login:        login,
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, common.ErrorLoginAlreadyExists) {
			return nil, common.ErrorLoginAlreadyExists
		}
		s.logger.Error(ctx, "user creation failed", "login", login, "error", err)
		return nil, common.ErrorInternal
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID, "login", user.Login)
	return user, nil
}

// Login verifies credentials and mints a token pair. Unknown login and wrong
// password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, login, password, audience string) (*TokenPair, error) {
	repo := s.manager.Users(s.manager.Conn())

	user, err := repo.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		s.logger.Error(ctx, "login lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, common.ErrorInvalidCredentials
	}

	return s.issuePair(ctx, user.ID, audience)
}

// Refresh exchanges a valid refresh token for a fresh token pair. The user
// must still exist; a removed account cannot renew its session.
func (s *UserService) Refresh(ctx context.Context, refreshToken, audience string) (*TokenPair, error) {
	userID, err := s.tokens.VerifyRefresh(refreshToken, audience)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	repo := s.manager.Users(s.manager.Conn())
	if _, err := repo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "refresh lookup failed", "user_id", userID, "error", err)
		return nil, common.ErrorInternal
	}

	return s.issuePair(ctx, userID, audience)
}

// GetUser returns the profile of the given user.
func (s *UserService) GetUser(ctx context.Context, id int64) (*users.User, error) {
	repo := s.manager.Users(s.manager.Conn())

	user, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		s.logger.Error(ctx, "user lookup failed", "user_id", id, "error", err)
		return nil, common.ErrorInternal
	}
	return user, nil
}

// IsAdmin reports whether the given user has administrator privileges.
func (s *UserService) IsAdmin(ctx context.Context, id int64) (bool, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return false, err
	}
	return user.IsAdmin, nil
}

// UpdatePassword replaces the target user's password hash. The caller must be
// the target user or an administrator. The read-back and the update run in
// one transaction so concurrent readers never observe a partial change.
func (s *UserService) UpdatePassword(ctx context.Context, callerID, targetID int64, newPassword string) error {
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		if errors.Is(err, cryptox.ErrEmptyPassword) {
			return common.ErrorValidation
		}
		s.logger.Error(ctx, "password hashing failed", "error", err)
		return common.ErrorInternal
	}

	err = dbx.WithTx(ctx, s.manager.Conn(), nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.manager.Users(tx)

		if callerID != targetID {
			caller, err := repo.GetByID(ctx, callerID)
			if err != nil {
				if errors.Is(err, common.ErrorNotFound) {
					return common.ErrorUnauthorized
				}
				return err
			}
			if !caller.IsAdmin {
				return common.ErrorForbidden
			}
		}

		if _, err := repo.GetByID(ctx, targetID); err != nil {
			return err
		}
		return repo.UpdatePasswordHash(ctx, targetID, hash)
	})

	switch {
	case err == nil:
		s.logger.Info(ctx, "password updated", "user_id", targetID)
		return nil
	case errors.Is(err, common.ErrorNotFound),
		errors.Is(err, common.ErrorForbidden),
		errors.Is(err, common.ErrorUnauthorized):
		return err
	default:
		s.logger.Error(ctx, "password update failed", "user_id", targetID, "error", err)
		return common.ErrorInternal
	}
}

// RemoveUser deletes the target user. Administrator privilege is required.
func (s *UserService) RemoveUser(ctx context.Context, callerID, targetID int64) error {
	err := dbx.WithTx(ctx, s.manager.Conn(), nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.manager.Users(tx)

		caller, err := repo.GetByID(ctx, callerID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorUnauthorized
			}
			return err
		}
		if !caller.IsAdmin {
			return common.ErrorForbidden
		}

		return repo.Delete(ctx, targetID)
	})

	switch {
	case err == nil:
		s.logger.Info(ctx, "user removed", "user_id", targetID)
		return nil
	case errors.Is(err, common.ErrorNotFound),
		errors.Is(err, common.ErrorForbidden),
		errors.Is(err, common.ErrorUnauthorized):
		return err
	default:
		s.logger.Error(ctx, "user removal failed", "user_id", targetID, "error", err)
		return common.ErrorInternal
	}
}

func (s *UserService) issuePair(ctx context.Context, userID int64, audience string) (*TokenPair, error) {
	access, err := s.tokens.IssueAccess(userID, audience)
	if err != nil {
		s.logger.Error(ctx, "access token minting failed", "error", err)
		return nil, common.ErrorInternal
	}
	refresh, err := s.tokens.IssueRefresh(userID, audience)
	if err != nil {
		s.logger.Error(ctx, "refresh token minting failed", "error", err)
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
