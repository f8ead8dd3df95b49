package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/kardash/internal/workers"
	"github.com/MKhiriev/kardash/models"
)

func (a *App) notifications(ctx context.Context, args []string) error {
	action, rest := "list", args
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		action, rest = args[0], args[1:]
	}

	switch action {
	case "list":
		fs := newFlagSet("notifications list")
		unread := fs.Bool("unread", false, "unread notifications only")
		if err := parseFlags(fs, rest); err != nil {
			return err
		}
		items, err := a.services.NotificationService.List(ctx, *unread)
		if err != nil {
			return err
		}
		return a.printJSON(items)

	case "count":
		if err := parseFlags(newFlagSet("notifications count"), rest); err != nil {
			return err
		}
		count, err := a.services.NotificationService.UnreadCount(ctx)
		if err != nil {
			return err
		}
		return a.printJSON(models.UnreadCount{UnreadCount: count})

	case "read":
		id, rest, err := leadingID(rest)
		if err != nil {
			return err
		}
		if err = parseFlags(newFlagSet("notifications read"), rest); err != nil {
			return err
		}
		if err = a.services.NotificationService.MarkRead(ctx, id); err != nil {
			return err
		}
		return a.printJSON(models.Message{Message: "Notification marked as read"})

	case "read-all":
		if err := parseFlags(newFlagSet("notifications read-all"), rest); err != nil {
			return err
		}
		if err := a.services.NotificationService.MarkAllRead(ctx); err != nil {
			return err
		}
		return a.printJSON(models.Message{Message: "All notifications marked as read"})
	}

	return fmt.Errorf("%w: unknown notifications action %q", ErrUsage, action)
}

// watch prints the unread count every time it changes until ctx is done.
func (a *App) watch(ctx context.Context, args []string) error {
	if err := parseFlags(newFlagSet("watch"), args); err != nil {
		return err
	}

	changes := make(chan int, 1)
	poller := workers.NewNotificationPoller(a.services.NotificationService, a.workers.PollInterval, func(count int) {
		select {
		case changes <- count:
		case <-ctx.Done():
		}
	}, a.logger)

	w := workers.NewWorkers(poller)
	w.Run(ctx)
	defer w.Stop()

	a.logger.Info().Dur("interval", a.workers.PollInterval).Msg("watching notifications")
	for {
		select {
		case <-ctx.Done():
			return nil
		case count := <-changes:
			if err := a.printJSON(models.UnreadCount{UnreadCount: count}); err != nil {
				return err
			}
		}
	}
}
