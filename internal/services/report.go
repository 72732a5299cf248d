package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/taskmanager/internal/common"
	"github.com/dmitrijs2005/taskmanager/internal/models"
	"github.com/dmitrijs2005/taskmanager/internal/reports"
	"github.com/dmitrijs2005/taskmanager/internal/repositories/repomanager"
	"github.com/dmitrijs2005/taskmanager/internal/timex"
)

// ReportService computes statistics and persists the overview reports.
type ReportService struct {
	repomanager repomanager.RepositoryManager
	sink        reports.Sink
	clock       timex.Clock
}

func NewReportService(m repomanager.RepositoryManager, sink reports.Sink, clock timex.Clock) *ReportService {
	if clock == nil {
		clock = timex.SystemClock{}
	}
	return &ReportService{repomanager: m, sink: sink, clock: clock}
}

// Build computes a fresh report from the current stores without persisting it.
func (s *ReportService) Build(ctx context.Context) (*reports.Report, error) {
	users, err := s.repomanager.Users().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading users: %w", err)
	}
	list, err := s.repomanager.Tasks().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading tasks: %w", err)
	}

	today := s.clock.Today()
	return &reports.Report{
		GeneratedOn: today,
		Summary:     models.Summarize(list, today),
		Users:       models.SummarizeByUser(list, users, today),
	}, nil
}

// Generate builds the report and writes both overview files, replacing any
// previous version.
func (s *ReportService) Generate(ctx context.Context) (*reports.Report, error) {
	r, err := s.Build(ctx)
	if err != nil {
		return nil, err
	}

	files := r.Files()
	for _, name := range reports.Names {
		if err := s.sink.Write(ctx, name, files[name]); err != nil {
			return nil, fmt.Errorf("error writing %s: %w", name, err)
		}
	}
	return r, nil
}

// TaskOverview returns the last generated task overview text.
func (s *ReportService) TaskOverview(ctx context.Context) (string, error) {
	return s.read(ctx, common.TaskOverviewFileName)
}

// UserOverview returns the last generated user overview text.
func (s *ReportService) UserOverview(ctx context.Context) (string, error) {
	return s.read(ctx, common.UserOverviewFileName)
}

// File returns a persisted report by file name. Names other than the two
// report files are reported as not found.
func (s *ReportService) File(ctx context.Context, name string) ([]byte, error) {
	if !reports.IsReportName(name) {
		return nil, common.ErrReportNotFound
	}
	return s.sink.Read(ctx, name)
}

func (s *ReportService) read(ctx context.Context, name string) (string, error) {
	data, err := s.sink.Read(ctx, name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Dashboard returns live totals over every task.
func (s *ReportService) Dashboard(ctx context.Context) (models.Summary, error) {
	list, err := s.repomanager.Tasks().Load(ctx)
	if err != nil {
		return models.Summary{}, fmt.Errorf("error loading tasks: %w", err)
	}
	return models.Summarize(list, s.clock.Today()), nil
}
