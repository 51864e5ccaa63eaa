package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/mkuznetsov/ssocore/internal/common"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	bearerKey contextKey = "bearer"
)

// requireAuth verifies the Authorization bearer token locally and stores the
// caller id and the raw token in the request context. The raw token is kept
// so privileged delegate calls can forward it. Every failure yields the same
// generic 401.
func (a *API) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, common.BearerPrefix) {
			writeError(w, common.ErrorUnauthorized)
			return
		}
		token := strings.TrimPrefix(header, common.BearerPrefix)

		userID, err := a.tokens.VerifyAccess(token)
		if err != nil {
			writeError(w, common.ErrorUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, bearerKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func callerID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

func callerBearer(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(bearerKey).(string)
	return token, ok
}
