// Package reports renders task statistics and stores the rendered reports.
//
// Two plain-text reports are produced: the task overview (four "Name: N"
// lines) and the per-user overview (one line per known user). They are
// written through a Sink, so they can live next to the data files or in an
// S3 bucket.
package reports

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskmanager/internal/common"
	"github.com/dmitrijs2005/taskmanager/internal/models"
)

// Report is a computed snapshot of the statistics.
type Report struct {
	GeneratedOn time.Time
	Summary     models.Summary
	Users       []models.UserSummary
}

// Names of the persisted report files, in the order they are written.
var Names = []string{common.TaskOverviewFileName, common.UserOverviewFileName}

// IsReportName reports whether name is one of the persisted report files.
func IsReportName(name string) bool {
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}

func FormatTaskOverview(s models.Summary) string {
	return fmt.Sprintf("Total: %d\nCompleted: %d\nIncomplete: %d\nOverdue: %d\n",
		s.Total, s.Completed, s.Incomplete, s.Overdue)
}

func FormatUserOverview(users []models.UserSummary) string {
	var b strings.Builder
	for _, u := range users {
		b.WriteString(FormatUserLine(u))
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatUserLine renders one per-user line without the newline.
func FormatUserLine(u models.UserSummary) string {
	if !u.HasTasks {
		return u.UserName + " - No tasks assigned."
	}
	s := u.Summary
	return fmt.Sprintf("%s - Total: %d, Completed: %d, Incomplete: %d, Overdue: %d",
		u.UserName, s.Total, s.Completed, s.Incomplete, s.Overdue)
}

// Files returns the rendered reports keyed by file name.
func (r *Report) Files() map[string][]byte {
	return map[string][]byte{
		common.TaskOverviewFileName: []byte(FormatTaskOverview(r.Summary)),
		common.UserOverviewFileName: []byte(FormatUserOverview(r.Users)),
	}
}
