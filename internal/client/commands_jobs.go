package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/kardash/models"
)

func (a *App) dashboard(ctx context.Context, args []string) error {
	fs := newFlagSet("dashboard")
	search := fs.String("search", "", "search in title and description")
	sortBy := fs.String("sort", "", "budget-high or budget-low; newest first by default")
	urgent := fs.Bool("urgent", false, "urgent jobs only")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	query := models.AvailableJobsQuery{Search: *search, SortBy: *sortBy}
	if *urgent {
		query.FilterType = "urgent"
	}

	board, err := a.services.DashboardService.FreelancerDashboard(ctx, query)
	if err != nil {
		return err
	}
	return a.printJSON(board)
}

func (a *App) earnings(ctx context.Context, args []string) error {
	fs := newFlagSet("earnings")
	period := fs.String("period", models.PeriodMonthly, "daily, weekly or monthly")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	report, err := a.services.DashboardService.Earnings(ctx, *period)
	if err != nil {
		return err
	}
	return a.printJSON(report)
}

func (a *App) jobs(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing jobs action", ErrUsage)
	}

	action := args[0]
	id, rest, err := leadingID(args[1:])
	if err != nil {
		return err
	}

	switch action {
	case "get":
		if err = parseFlags(newFlagSet("jobs get"), rest); err != nil {
			return err
		}
		job, err := a.services.JobService.Get(ctx, id)
		if err != nil {
			return err
		}
		return a.printJSON(job)

	case "apply":
		fs := newFlagSet("jobs apply")
		proposal := fs.String("proposal", "", "cover letter")
		bid := fs.Float64("bid", 0, "bid amount")
		if err = parseFlags(fs, rest); err != nil {
			return err
		}
		application, err := a.services.JobService.Apply(ctx, id, *proposal, *bid)
		if err != nil {
			return err
		}
		return a.printJSON(application)

	case "deliver":
		fs := newFlagSet("jobs deliver")
		notes := fs.String("notes", "", "delivery notes")
		files := fs.String("files", "", "URL of the delivered files")
		if err = parseFlags(fs, rest); err != nil {
			return err
		}
		msg, err := a.services.JobService.Deliver(ctx, id, *notes, *files)
		if err != nil {
			return err
		}
		return a.printJSON(msg)
	}

	return fmt.Errorf("%w: unknown jobs action %q", ErrUsage, action)
}
