package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/taskmanager/internal/client/client"
	"github.com/dmitrijs2005/taskmanager/internal/common"
)

// Report regenerates both overview reports and prints them.
func (a *App) Report(ctx context.Context) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}

	r, err := a.client.GenerateReports(ctx)
	if err != nil {
		return a.checkSession(err)
	}

	printlnFn("Reports generated.")
	printReports(r)
	return nil
}

// Stats prints the last generated reports.
func (a *App) Stats(ctx context.Context) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}

	r, err := a.client.GetReports(ctx)
	if err != nil {
		return a.checkSession(err)
	}

	printReports(r)
	return nil
}

func printReports(r *client.Reports) {
	printReport(common.TaskOverviewFileName, r.TaskOverview)
	printReport(common.UserOverviewFileName, r.UserOverview)
}

func printReport(name, text string) {
	printlnFn("==", name, "==")
	if text == "" {
		printlnFn("Reports not generated yet.")
		return
	}
	printlnFn(strings.TrimRight(text, "\n"))
}
