package grpc

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/mkuznetsov/ssocore/internal/common"
	pb "github.com/mkuznetsov/ssocore/internal/proto"
)

type ctxKey string

// UserIDKey holds the authenticated caller's user id in the request context.
// BearerTokenKey holds the raw bearer token for methods that consume the
// token itself (RefreshToken carries a refresh token, not an access token).
const (
	UserIDKey      ctxKey = "userID"
	BearerTokenKey ctxKey = "bearerToken"
)

// Methods that require an access token in the "authorization" metadata.
var accessTokenRequired = map[string]bool{
	pb.Auth_UpdatePassword_FullMethodName: true,
	pb.Auth_RemoveUser_FullMethodName:     true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if info.FullMethod == pb.Auth_RefreshToken_FullMethodName {
		token, err := bearerFromMetadata(ctx)
		if err != nil {
			return nil, err
		}
		return handler(context.WithValue(ctx, BearerTokenKey, token), req)
	}

	if accessTokenRequired[info.FullMethod] {
		token, err := bearerFromMetadata(ctx)
		if err != nil {
			return nil, err
		}

		userID, err := s.tokens.VerifyAccess(token)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		ctx = context.WithValue(ctx, UserIDKey, userID)
	}

	return handler(ctx, req)
}

func bearerFromMetadata(ctx context.Context) (string, error) {
	var header string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AuthHeaderName)
		if len(values) > 0 {
			header = values[0]
		}
	}
	if header == "" {
		return "", status.Error(codes.Unauthenticated, "missing token")
	}

	token := strings.TrimPrefix(header, common.BearerPrefix)
	if token == "" {
		return "", status.Error(codes.Unauthenticated, "missing token")
	}
	return token, nil
}

// UserIDFromContext returns the caller id stored by the interceptor.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(UserIDKey).(int64)
	return id, ok
}

// BearerFromContext returns the raw bearer token stored by the interceptor.
func BearerFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(BearerTokenKey).(string)
	return token, ok
}
