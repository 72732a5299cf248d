package grpc

import (
	"context"
	"errors"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/dmitrijs2005/taskmanager/internal/common"
	"github.com/dmitrijs2005/taskmanager/internal/models"
	pb "github.com/dmitrijs2005/taskmanager/internal/proto"
	"github.com/dmitrijs2005/taskmanager/internal/server/auth"
	"github.com/dmitrijs2005/taskmanager/internal/services"
)

func (s *GRPCServer) Login(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	userName := pb.String(req, pb.FieldUserName)

	if err := s.users.Login(ctx, userName, pb.String(req, pb.FieldPassword)); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	token, err := auth.GenerateToken(userName, s.jwtSecret, s.sessionValidity)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Logged in", "username", userName)
	return pb.NewStruct(map[string]any{
		pb.FieldAccessToken: token,
		pb.FieldUserName:    userName,
	}), nil
}

// Register requires the confirm field to match the password; clients that
// only ask once send the password twice.
func (s *GRPCServer) Register(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	userName := pb.String(req, pb.FieldUserName)
	password := pb.String(req, pb.FieldPassword)
	confirm := password
	if pb.Has(req, pb.FieldConfirm) {
		confirm = pb.String(req, pb.FieldConfirm)
	}

	if err := s.users.RegisterConfirmed(ctx, userName, password, confirm); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "username", userName)
	return pb.NewStruct(map[string]any{pb.FieldUserName: userName}), nil
}

func (s *GRPCServer) AddTask(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	task, err := s.tasks.Add(ctx, services.NewTask{
		Owner:       pb.String(req, pb.FieldOwner),
		Title:       pb.String(req, pb.FieldTitle),
		Description: pb.String(req, pb.FieldDescription),
		DueDate:     pb.String(req, pb.FieldDueDate),
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Task added", "owner", task.Owner, "by", userNameFrom(ctx))
	return pb.NewStruct(map[string]any{pb.FieldTask: pb.TaskStruct(*task).AsMap()}), nil
}

// ListTasks returns every task, or only the caller's when "mine" is set.
func (s *GRPCServer) ListTasks(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	var (
		tasks []models.Task
		err   error
	)
	if pb.Bool(req, pb.FieldMine) {
		tasks, err = s.tasks.ListForUser(ctx, userNameFrom(ctx))
	} else {
		tasks, err = s.tasks.List(ctx)
	}
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return pb.TaskListStruct(tasks), nil
}

func (s *GRPCServer) GenerateReports(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	r, err := s.reports.Generate(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	files := r.Files()
	return pb.NewStruct(map[string]any{
		pb.FieldTaskOverview: string(files[common.TaskOverviewFileName]),
		pb.FieldUserOverview: string(files[common.UserOverviewFileName]),
	}), nil
}

// GetReports returns the persisted reports. A report that was never
// generated is left out of the response.
func (s *GRPCServer) GetReports(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	out := map[string]any{}

	text, err := s.reports.TaskOverview(ctx)
	switch {
	case err == nil:
		out[pb.FieldTaskOverview] = text
	case !errors.Is(err, common.ErrReportNotFound):
		return nil, s.toStatus(ctx, err)
	}

	text, err = s.reports.UserOverview(ctx)
	switch {
	case err == nil:
		out[pb.FieldUserOverview] = text
	case !errors.Is(err, common.ErrReportNotFound):
		return nil, s.toStatus(ctx, err)
	}

	return pb.NewStruct(out), nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	return pb.NewStruct(map[string]any{pb.FieldStatus: "OK"}), nil

}
