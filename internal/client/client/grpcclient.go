package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/dmitrijs2005/taskmanager/internal/common"
	"github.com/dmitrijs2005/taskmanager/internal/models"
	pb "github.com/dmitrijs2005/taskmanager/internal/proto"
	"github.com/dmitrijs2005/taskmanager/internal/services"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.TaskManagerClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the current access token to every call.
// An expired token is dropped so the prompt no longer shows a session.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}

	err := invoker(ctx, method, req, reply, cc, opts...)
	if err != nil {
		st, ok := status.FromError(err)
		if ok && st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error() {
			s.accessToken = ""
		}
	}
	return err
}

// NewGRPCClient dials endpointURL lazily; the first call opens the
// connection. timeout bounds every call, zero means no deadline.
func NewGRPCClient(endpointURL string, timeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewTaskManagerClient(conn)
	return nil
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) Login(ctx context.Context, userName, password string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := pb.NewStruct(map[string]any{pb.FieldUserName: userName, pb.FieldPassword: password})

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	s.accessToken = pb.String(resp, pb.FieldAccessToken)
	return nil
}

func (s *GRPCClient) Logout() {
	s.accessToken = ""
}

func (s *GRPCClient) Register(ctx context.Context, userName, password, confirm string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := pb.NewStruct(map[string]any{
		pb.FieldUserName: userName,
		pb.FieldPassword: password,
		pb.FieldConfirm:  confirm,
	})

	if _, err := s.client.Register(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) AddTask(ctx context.Context, t services.NewTask) (*models.Task, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := pb.NewStruct(map[string]any{
		pb.FieldOwner:       t.Owner,
		pb.FieldTitle:       t.Title,
		pb.FieldDescription: t.Description,
		pb.FieldDueDate:     t.DueDate,
	})

	resp, err := s.client.AddTask(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	task, err := pb.TaskFromStruct(resp.GetFields()[pb.FieldTask].GetStructValue())
	if err != nil {
		return nil, fmt.Errorf("bad response: %w", err)
	}
	return &task, nil
}

func (s *GRPCClient) ListTasks(ctx context.Context, mine bool) ([]models.Task, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.ListTasks(ctx, pb.NewStruct(map[string]any{pb.FieldMine: mine}))
	if err != nil {
		return nil, s.mapError(err)
	}

	tasks, err := pb.TasksFromStruct(resp)
	if err != nil {
		return nil, fmt.Errorf("bad response: %w", err)
	}
	return tasks, nil
}

func (s *GRPCClient) GenerateReports(ctx context.Context) (*Reports, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GenerateReports(ctx, pb.NewStruct(nil))
	if err != nil {
		return nil, s.mapError(err)
	}
	return reportsFromStruct(resp), nil
}

func (s *GRPCClient) GetReports(ctx context.Context) (*Reports, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetReports(ctx, pb.NewStruct(nil))
	if err != nil {
		return nil, s.mapError(err)
	}
	return reportsFromStruct(resp), nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Ping(ctx, pb.NewStruct(nil))
	if err != nil {
		return s.mapError(err)
	}

	if pb.String(resp, pb.FieldStatus) != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func reportsFromStruct(resp *structpb.Struct) *Reports {
	return &Reports{
		TaskOverview: pb.String(resp, pb.FieldTaskOverview),
		UserOverview: pb.String(resp, pb.FieldUserOverview),
	}
}

// mapError turns a gRPC status back into the domain sentinel carried in its
// message. Transport failures become ErrUnavailable.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	}
	if de, ok := common.DomainError(errors.New(st.Message())); ok {
		return de
	}
	switch st.Code() {
	case codes.Unauthenticated:
		return common.ErrUnauthorized
	case codes.PermissionDenied:
		return common.ErrAccessDenied
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
