package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/taskmanager/internal/common"
	"github.com/dmitrijs2005/taskmanager/internal/models"
	"github.com/dmitrijs2005/taskmanager/internal/timex"
)

func sampleReport() *Report {
	return &Report{
		GeneratedOn: timex.Date(2024, 6, 1),
		Summary:     models.Summary{Total: 2, Completed: 0, Incomplete: 2, Overdue: 1},
		Users: []models.UserSummary{
			{UserName: "admin"},
			{UserName: "bob", HasTasks: true, Summary: models.Summary{Total: 2, Incomplete: 2, Overdue: 1}},
		},
	}
}

func TestFormatTaskOverview(t *testing.T) {
	got := FormatTaskOverview(models.Summary{Total: 2, Completed: 0, Incomplete: 2, Overdue: 1})
	assert.Equal(t, "Total: 2\nCompleted: 0\nIncomplete: 2\nOverdue: 1\n", got)
}

func TestFormatUserOverview(t *testing.T) {
	got := FormatUserOverview(sampleReport().Users)
	assert.Equal(t,
		"admin - No tasks assigned.\nbob - Total: 2, Completed: 0, Incomplete: 2, Overdue: 1\n",
		got)

	assert.Equal(t, "", FormatUserOverview(nil))
}

func TestReportFiles(t *testing.T) {
	files := sampleReport().Files()
	require.Len(t, files, 2)
	assert.Equal(t, "Total: 2\nCompleted: 0\nIncomplete: 2\nOverdue: 1\n", string(files[common.TaskOverviewFileName]))
	assert.Contains(t, string(files[common.UserOverviewFileName]), "admin - No tasks assigned.")
}

func TestIsReportName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{common.TaskOverviewFileName, true},
		{common.UserOverviewFileName, true},
		{common.UserFileName, false},
		{"../" + common.TaskOverviewFileName, false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsReportName(tt.name))
		})
	}
}

func TestFileSink_WriteRead(t *testing.T) {
	ctx := context.Background()
	s := NewFileSink(t.TempDir())

	_, err := s.Read(ctx, common.TaskOverviewFileName)
	require.ErrorIs(t, err, common.ErrReportNotFound)

	require.NoError(t, s.Write(ctx, common.TaskOverviewFileName, []byte("Total: 0\n")))
	data, err := s.Read(ctx, common.TaskOverviewFileName)
	require.NoError(t, err)
	assert.Equal(t, "Total: 0\n", string(data))

	// overwrite replaces the whole content
	require.NoError(t, s.Write(ctx, common.TaskOverviewFileName, []byte("x")))
	data, err = s.Read(ctx, common.TaskOverviewFileName)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestFileSink_WriteMissingDir(t *testing.T) {
	s := NewFileSink(t.TempDir() + "/missing")
	err := s.Write(context.Background(), common.TaskOverviewFileName, []byte("x"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrReportNotFound)
}

func TestRenderCSV(t *testing.T) {
	data, err := RenderCSV(sampleReport())
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"User", "Total", "Completed", "Incomplete", "Overdue"},
		{"(all)", "2", "0", "2", "1"},
		{"admin", "", "", "", ""},
		{"bob", "2", "0", "2", "1"},
	}, rows)
}

func TestRenderPDF(t *testing.T) {
	data, err := RenderPDF(sampleReport())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF-")), "not a pdf document")
}

func TestNewPDF_Translator(t *testing.T) {
	_, tr := newPDF()
	assert.Equal(t, "Zo\xeb", tr("Zoë"))
	assert.Equal(t, ".ukasz", tr("Łukasz"))
	assert.Equal(t, "plain", tr("plain"))
}

func TestRenderPDF_NonASCIIUser(t *testing.T) {
	r := sampleReport()
	r.Users = append(r.Users, models.UserSummary{UserName: "Zoë"})
	data, err := RenderPDF(r)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}
