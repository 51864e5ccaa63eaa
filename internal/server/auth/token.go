// Package auth implements the token service: minting and verifying signed
// session tokens (JWT, HS256). Tokens are stateless; there is no revocation
// besides expiry and secret rotation.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mkuznetsov/ssocore/internal/common"
)

// Token kinds carried in the token_use claim. A refresh token is never
// accepted where an access token is expected and vice versa.
const (
	TokenUseAccess  = "access"
	TokenUseRefresh = "refresh"
)

// Claims extends the registered claim set with the token kind. The subject
// claim holds the user id in decimal form.
type Claims struct {
	jwt.RegisteredClaims
	TokenUse string `json:"token_use"`
}

// TokenService mints and validates access and refresh tokens with a shared
// HMAC secret. The secret and algorithm are fixed per deployment and must
// match between issuance and verification.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(secret []byte, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{secret: secret, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// IssueAccess mints a short-lived access token for the given user.
// The audience is optional and scopes the token to one consuming application.
func (s *TokenService) IssueAccess(userID int64, audience string) (string, error) {
	return s.issue(userID, audience, TokenUseAccess, s.accessTTL)
}

// IssueRefresh mints a longer-lived refresh token, usable only to obtain a
// new access token.
func (s *TokenService) IssueRefresh(userID int64, audience string) (string, error) {
	return s.issue(userID, audience, TokenUseRefresh, s.refreshTTL)
}

func (s *TokenService) issue(userID int64, audience, use string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		TokenUse: use,
	}
	if audience != "" {
		claims.Audience = jwt.ClaimStrings{audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyAccess validates an access token and returns its subject user id.
// Expired tokens yield common.ErrTokenExpired so callers may refresh; every
// other failure collapses to common.ErrInvalidToken.
func (s *TokenService) VerifyAccess(tokenString string) (int64, error) {
	return s.verify(tokenString, TokenUseAccess, "")
}

// VerifyRefresh validates a refresh token scoped to the given audience.
func (s *TokenService) VerifyRefresh(tokenString, audience string) (int64, error) {
	return s.verify(tokenString, TokenUseRefresh, audience)
}

func (s *TokenService) verify(tokenString, use, audience string) (int64, error) {
	claims := &Claims{}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, common.ErrTokenExpired
		}
		return 0, common.ErrInvalidToken
	}
	if !token.Valid || claims.TokenUse != use {
		return 0, common.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return 0, common.ErrInvalidToken
	}
	return userID, nil
}
