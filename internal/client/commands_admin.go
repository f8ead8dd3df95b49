package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/kardash/models"
)

func (a *App) admin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing admin action", ErrUsage)
	}

	action, rest := args[0], args[1:]
	switch action {
	case "overview":
		return a.adminOverview(ctx, rest)
	case "stats":
		if err := parseFlags(newFlagSet("admin stats"), rest); err != nil {
			return err
		}
		stats, err := a.services.DashboardService.UserStats(ctx)
		if err != nil {
			return err
		}
		return a.printJSON(stats)
	case "activate-user":
		return a.idAction(ctx, "admin activate-user", rest, a.services.DashboardService.ActivateUser)
	case "deactivate-user":
		return a.idAction(ctx, "admin deactivate-user", rest, a.services.DashboardService.DeactivateUser)
	case "create-job":
		return a.createJob(ctx, rest)
	case "update-job":
		return a.updateJob(ctx, rest)
	case "delete-job":
		return a.deleteJob(ctx, rest)
	case "complete":
		return a.completeJob(ctx, rest)
	case "create-bot":
		return a.createBot(ctx, rest)
	case "activate-bot":
		return a.idAction(ctx, "admin activate-bot", rest, a.services.DashboardService.ActivateBotAccount)
	case "pause-bot":
		return a.idAction(ctx, "admin pause-bot", rest, a.services.DashboardService.PauseBotAccount)
	case "bot-stats":
		if err := parseFlags(newFlagSet("admin bot-stats"), rest); err != nil {
			return err
		}
		stats, err := a.services.DashboardService.BotAccountStats(ctx)
		if err != nil {
			return err
		}
		return a.printJSON(stats)
	}

	return fmt.Errorf("%w: unknown admin action %q", ErrUsage, action)
}

func (a *App) adminOverview(ctx context.Context, args []string) error {
	fs := newFlagSet("admin overview")
	search := fs.String("search", "", "search in title and description")
	status := fs.String("status", "", "job status")
	platform := fs.String("platform", "", "source platform")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	overview, err := a.services.DashboardService.AdminOverview(ctx, models.JobFilter{
		Search:   *search,
		Status:   models.JobStatus(*status),
		Platform: *platform,
	})
	if err != nil {
		return err
	}
	return a.printJSON(overview)
}

func (a *App) createJob(ctx context.Context, args []string) error {
	fs := newFlagSet("admin create-job")
	title := fs.String("title", "", "job title")
	description := fs.String("description", "", "job description")
	budget := fs.String("budget", "", "budget, e.g. 1200")
	platform := fs.String("platform", "", "source platform")
	kind := fs.String("type", "", "job type, e.g. development")
	tags := fs.String("tags", "", "comma separated tags")
	urgency := fs.String("urgency", "", "low, medium, high or urgent")
	urgent := fs.Bool("urgent", false, "mark the job urgent")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	job, err := a.services.JobService.Create(ctx, models.JobCreate{
		Title:       *title,
		Description: *description,
		Budget:      models.Budget(*budget),
		Platform:    optional(*platform),
		Type:        optional(*kind),
		Tags:        optional(*tags),
		Urgency:     optional(*urgency),
		IsUrgent:    *urgent,
	})
	if err != nil {
		return err
	}
	return a.printJSON(job)
}

// updateJob sends only the flags given on the command line.
func (a *App) updateJob(ctx context.Context, args []string) error {
	id, rest, err := leadingID(args)
	if err != nil {
		return err
	}

	fs := newFlagSet("admin update-job")
	title := fs.String("title", "", "job title")
	description := fs.String("description", "", "job description")
	budget := fs.String("budget", "", "budget, e.g. 1200")
	status := fs.String("status", "", "job status")
	kind := fs.String("type", "", "job type")
	tags := fs.String("tags", "", "comma separated tags")
	urgency := fs.String("urgency", "", "low, medium, high or urgent")
	urgent := fs.Bool("urgent", false, "mark the job urgent")
	if err = parseFlags(fs, rest); err != nil {
		return err
	}

	var update models.JobUpdate
	if isSet(fs, "title") {
		update.Title = title
	}
	if isSet(fs, "description") {
		update.Description = description
	}
	if isSet(fs, "budget") {
		b := models.Budget(*budget)
		update.Budget = &b
	}
	if isSet(fs, "status") {
		st := models.JobStatus(*status)
		update.Status = &st
	}
	if isSet(fs, "type") {
		update.Type = kind
	}
	if isSet(fs, "tags") {
		update.Tags = tags
	}
	if isSet(fs, "urgency") {
		update.Urgency = urgency
	}
	if isSet(fs, "urgent") {
		update.IsUrgent = urgent
	}

	job, err := a.services.JobService.Update(ctx, id, update)
	if err != nil {
		return err
	}
	return a.printJSON(job)
}

func (a *App) deleteJob(ctx context.Context, args []string) error {
	id, rest, err := leadingID(args)
	if err != nil {
		return err
	}
	if err = parseFlags(newFlagSet("admin delete-job"), rest); err != nil {
		return err
	}

	if err = a.services.JobService.Delete(ctx, id); err != nil {
		return err
	}
	return a.printJSON(models.Message{Message: "Job deleted successfully"})
}

func (a *App) completeJob(ctx context.Context, args []string) error {
	id, rest, err := leadingID(args)
	if err != nil {
		return err
	}

	fs := newFlagSet("admin complete")
	feedback := fs.String("feedback", "", "feedback for the freelancer")
	rating := fs.Float64("rating", 0, "rating from 1 to 5")
	if err = parseFlags(fs, rest); err != nil {
		return err
	}

	job, err := a.services.JobService.Complete(ctx, id, *feedback, *rating)
	if err != nil {
		return err
	}
	return a.printJSON(job)
}

func (a *App) createBot(ctx context.Context, args []string) error {
	fs := newFlagSet("admin create-bot")
	name := fs.String("name", "", "bot account name")
	platform := fs.String("platform", "", "platform the bot works on")
	profile := fs.String("profile", "", "profile text")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	bot, err := a.services.DashboardService.CreateBotAccount(ctx, models.BotAccountCreate{
		Name:     *name,
		Platform: *platform,
		Profile:  optional(*profile),
	})
	if err != nil {
		return err
	}
	return a.printJSON(bot)
}

// idAction runs an admin action that takes only an id and prints the
// server's acknowledgement.
func (a *App) idAction(ctx context.Context, name string, args []string, action func(context.Context, int64) (models.Message, error)) error {
	id, rest, err := leadingID(args)
	if err != nil {
		return err
	}
	if err = parseFlags(newFlagSet(name), rest); err != nil {
		return err
	}

	msg, err := action(ctx, id)
	if err != nil {
		return err
	}
	return a.printJSON(msg)
}
