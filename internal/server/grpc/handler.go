package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mkuznetsov/ssocore/internal/common"
	pb "github.com/mkuznetsov/ssocore/internal/proto"
)

// statusFromError maps domain sentinels onto gRPC status codes. Anything
// unrecognized is reported as Internal without leaking the cause.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorLoginAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrorInvalidCredentials),
		errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, common.ErrorForbidden):
		return status.Error(codes.PermissionDenied, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request", "login", req.Login)

	user, err := s.users.Register(ctx, req.Login, req.Email, req.FullName, req.Password)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.RegisterResponse{UserId: user.ID}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	tokens, err := s.users.Login(ctx, req.Login, req.Password, req.AppId)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.LoginResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {

	token, ok := BearerFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	tokens, err := s.users.Refresh(ctx, token, req.AppId)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) UserInfo(ctx context.Context, req *pb.UserInfoRequest) (*pb.UserInfoResponse, error) {

	user, err := s.users.GetUser(ctx, req.UserId)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.UserInfoResponse{
		UserId:        user.ID,
		Login:         user.Login,
		Email:         user.Email,
		FullName:      user.FullName,
		IsAdmin:       user.IsAdmin,
		CreatedAtUnix: user.CreatedAt.Unix(),
	}, nil
}

func (s *GRPCServer) IsAdmin(ctx context.Context, req *pb.IsAdminRequest) (*pb.IsAdminResponse, error) {

	isAdmin, err := s.users.IsAdmin(ctx, req.UserId)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.IsAdminResponse{IsAdmin: isAdmin}, nil
}

func (s *GRPCServer) UpdatePassword(ctx context.Context, req *pb.UpdatePasswordRequest) (*pb.UpdatePasswordResponse, error) {

	callerID, ok := UserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	if err := s.users.UpdatePassword(ctx, callerID, req.UserId, req.NewPassword); err != nil {
		return nil, statusFromError(err)
	}

	return &pb.UpdatePasswordResponse{Message: "password updated"}, nil
}

func (s *GRPCServer) RemoveUser(ctx context.Context, req *pb.RemoveUserRequest) (*pb.RemoveUserResponse, error) {

	callerID, ok := UserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	if err := s.users.RemoveUser(ctx, callerID, req.UserId); err != nil {
		return nil, statusFromError(err)
	}

	return &pb.RemoveUserResponse{Message: "user removed"}, nil
}
