// Package proto describes the taskmanager.v1.TaskManager gRPC service.
//
// Requests and responses are google.protobuf.Struct values; the helpers in
// messages.go convert them to and from the domain types. The service
// descriptor is declared by hand, so no code generation step is needed.
package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "taskmanager.v1.TaskManager"

// Full method names, as seen by interceptors.
const (
	MethodLogin           = "/" + ServiceName + "/Login"
	MethodRegister        = "/" + ServiceName + "/Register"
	MethodAddTask         = "/" + ServiceName + "/AddTask"
	MethodListTasks       = "/" + ServiceName + "/ListTasks"
	MethodGenerateReports = "/" + ServiceName + "/GenerateReports"
	MethodGetReports      = "/" + ServiceName + "/GetReports"
	MethodPing            = "/" + ServiceName + "/Ping"
)

// TaskManagerServer is the server API of the TaskManager service.
type TaskManagerServer interface {
	Login(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Register(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddTask(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListTasks(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GenerateReports(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetReports(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Ping(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type serverMethod func(TaskManagerServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unary(fullMethod string, call serverMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(TaskManagerServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(TaskManagerServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ServiceDesc is the grpc.ServiceDesc of the TaskManager service.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TaskManagerServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Login", Handler: unary(MethodLogin, TaskManagerServer.Login)},
		{MethodName: "Register", Handler: unary(MethodRegister, TaskManagerServer.Register)},
		{MethodName: "AddTask", Handler: unary(MethodAddTask, TaskManagerServer.AddTask)},
		{MethodName: "ListTasks", Handler: unary(MethodListTasks, TaskManagerServer.ListTasks)},
		{MethodName: "GenerateReports", Handler: unary(MethodGenerateReports, TaskManagerServer.GenerateReports)},
		{MethodName: "GetReports", Handler: unary(MethodGetReports, TaskManagerServer.GetReports)},
		{MethodName: "Ping", Handler: unary(MethodPing, TaskManagerServer.Ping)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "taskmanager/v1/taskmanager.proto",
}

func RegisterTaskManagerServer(s grpc.ServiceRegistrar, srv TaskManagerServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// TaskManagerClient is the client API of the TaskManager service.
type TaskManagerClient interface {
	Login(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Register(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	AddTask(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListTasks(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GenerateReports(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetReports(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Ping(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type taskManagerClient struct {
	cc grpc.ClientConnInterface
}

func NewTaskManagerClient(cc grpc.ClientConnInterface) TaskManagerClient {
	return &taskManagerClient{cc: cc}
}

func (c *taskManagerClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *taskManagerClient) Login(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodLogin, in, opts)
}

func (c *taskManagerClient) Register(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodRegister, in, opts)
}

func (c *taskManagerClient) AddTask(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodAddTask, in, opts)
}

func (c *taskManagerClient) ListTasks(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodListTasks, in, opts)
}

func (c *taskManagerClient) GenerateReports(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodGenerateReports, in, opts)
}

func (c *taskManagerClient) GetReports(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodGetReports, in, opts)
}

func (c *taskManagerClient) Ping(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodPing, in, opts)
}
