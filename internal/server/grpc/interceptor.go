package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/taskmanager/internal/common"
	pb "github.com/dmitrijs2005/taskmanager/internal/proto"
	"github.com/dmitrijs2005/taskmanager/internal/server/auth"
)

type ctxKey string

const userNameKey ctxKey = "userName"

type access int

const (
	accessPublic access = iota
	accessUser
	accessAdmin
)

// methodAccess lists the gate of every method; unknown methods need a login.
var methodAccess = map[string]access{
	pb.MethodLogin:           accessPublic,
	pb.MethodPing:            accessPublic,
	pb.MethodAddTask:         accessUser,
	pb.MethodListTasks:       accessUser,
	pb.MethodRegister:        accessAdmin,
	pb.MethodGenerateReports: accessAdmin,
	pb.MethodGetReports:      accessAdmin,
}

// userNameFrom returns the username put into ctx by the interceptor.
func userNameFrom(ctx context.Context) string {
	v, _ := ctx.Value(userNameKey).(string)
	return v
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	level, ok := methodAccess[info.FullMethod]
	if !ok {
		level = accessUser
	}
	if level == accessPublic {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, common.ErrUnauthorized.Error())
	}

	userName, err := auth.GetUserFromToken(accessToken, s.jwtSecret)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	if level == accessAdmin && userName != common.AdminUsername {
		s.logger.Warn(ctx, "access denied", "method", info.FullMethod, "username", userName)
		return nil, status.Error(codes.PermissionDenied, common.ErrAccessDenied.Error())
	}

	ctx = context.WithValue(ctx, userNameKey, userName)

	return handler(ctx, req)
}
