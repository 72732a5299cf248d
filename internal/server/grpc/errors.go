package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/taskmanager/internal/common"
)

var errorCodes = []struct {
	err  error
	code codes.Code
}{
	{common.ErrInvalidCredentials, codes.Unauthenticated},
	{common.ErrUnauthorized, codes.Unauthenticated},
	{common.ErrInvalidToken, codes.Unauthenticated},
	{common.ErrTokenExpired, codes.Unauthenticated},
	{common.ErrAccessDenied, codes.PermissionDenied},
	{common.ErrDuplicateUser, codes.AlreadyExists},
	{common.ErrPasswordMismatch, codes.InvalidArgument},
	{common.ErrUnknownUser, codes.InvalidArgument},
	{common.ErrInvalidDate, codes.InvalidArgument},
	{common.ErrPastDueDate, codes.InvalidArgument},
	{common.ErrReportNotFound, codes.NotFound},
}

// toStatus maps a service error to a gRPC status. Domain errors keep their
// message so clients can match them again; anything else is logged and
// reported as an internal error.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			return status.Error(e.code, e.err.Error())
		}
	}
	s.logger.Error(ctx, err.Error())
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}
