package client

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/mkuznetsov/ssocore/internal/common"
	"github.com/mkuznetsov/ssocore/internal/logging"
	pb "github.com/mkuznetsov/ssocore/internal/proto"
)

const (
	defaultRequestTimeout = 5 * time.Second
	defaultReadyAttempts  = 3
	defaultReadyDelay     = 1 * time.Second
)

type GRPCClient struct {
	endpointURL    string
	conn           *grpc.ClientConn
	client         pb.AuthClient
	logger         logging.Logger
	requestTimeout time.Duration
	readyAttempts  int
	readyDelay     time.Duration
}

func NewGRPCClient(endpointURL string, logger logging.Logger) *GRPCClient {
	return &GRPCClient{
		endpointURL:    endpointURL,
		logger:         logger.With("module", "grpc_client"),
		requestTimeout: defaultRequestTimeout,
		readyAttempts:  defaultReadyAttempts,
		readyDelay:     defaultReadyDelay,
	}
}

// Connect establishes the gRPC channel. It is idempotent; repeated calls on
// a connected client are no-ops. The channel itself connects lazily, so a
// successful Connect does not imply the remote service is up.
func (s *GRPCClient) Connect() error {
	if s.conn != nil {
		return nil
	}

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAuthClient(conn)
	return nil
}

// Close releases the channel. The client is unusable afterwards until
// Connect is called again.
func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	s.client = nil
	return err
}

// WaitReady pings the remote service up to readyAttempts times. Each failed
// attempt is logged; after the last one the caller gets
// common.ErrorUnavailable and decides whether to continue degraded.
func (s *GRPCClient) WaitReady(ctx context.Context) error {
	if err := s.Connect(); err != nil {
		return err
	}

	for attempt := 1; attempt <= s.readyAttempts; attempt++ {
		err := s.Ping(ctx)
		if err == nil {
			s.logger.Info(ctx, "Auth service is ready", "attempt", attempt)
			return nil
		}

		s.logger.Warn(ctx, "Auth service not ready", "attempt", attempt, "error", err)

		if attempt == s.readyAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.readyDelay):
		}
	}

	s.logger.Error(ctx, "Auth service unreachable, starting degraded", "attempts", s.readyAttempts)
	return common.ErrorUnavailable
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return common.ErrorUnavailable
	}
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, login, email, fullName, password string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	req := &pb.RegisterRequest{Login: login, Email: email, FullName: fullName, Password: password}

	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.UserId, nil
}

func (s *GRPCClient) Login(ctx context.Context, login, password, appID string) (*TokenPair, error) {
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	req := &pb.LoginRequest{Login: login, Password: password, AppId: appID}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return &TokenPair{AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken}, nil
}

func (s *GRPCClient) Refresh(ctx context.Context, refreshToken, appID string) (*TokenPair, error) {
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	ctx = withBearer(ctx, refreshToken)

	resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{AppId: appID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &TokenPair{AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken}, nil
}

func (s *GRPCClient) UserInfo(ctx context.Context, userID int64) (*UserInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	resp, err := s.client.UserInfo(ctx, &pb.UserInfoRequest{UserId: userID})
	if err != nil {
		return nil, s.mapError(err)
	}

	return &UserInfo{
		ID:        resp.UserId,
		Login:     resp.Login,
		Email:     resp.Email,
		FullName:  resp.FullName,
		IsAdmin:   resp.IsAdmin,
		CreatedAt: time.Unix(resp.CreatedAtUnix, 0).UTC(),
	}, nil
}

func (s *GRPCClient) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	resp, err := s.client.IsAdmin(ctx, &pb.IsAdminRequest{UserId: userID})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.IsAdmin, nil
}

func (s *GRPCClient) UpdatePassword(ctx context.Context, accessToken string, targetID int64, newPassword string) error {
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	ctx = withBearer(ctx, accessToken)

	_, err := s.client.UpdatePassword(ctx, &pb.UpdatePasswordRequest{UserId: targetID, NewPassword: newPassword})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) RemoveUser(ctx context.Context, accessToken string, targetID int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	ctx = withBearer(ctx, accessToken)

	_, err := s.client.RemoveUser(ctx, &pb.RemoveUserRequest{UserId: targetID})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

// withBearer attaches the bearer token to the outgoing metadata, replacing
// any token already present.
func withBearer(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	md.Delete(common.AuthHeaderName)
	md.Set(common.AuthHeaderName, common.BearerPrefix+token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.InvalidArgument:
		return common.ErrorValidation
	case codes.AlreadyExists:
		return common.ErrorLoginAlreadyExists
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.Unauthenticated:
		return common.ErrorUnauthorized
	case codes.PermissionDenied:
		return common.ErrorForbidden
	case codes.Unavailable, codes.DeadlineExceeded:
		return common.ErrorUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
