package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/kardash/internal/adapter"
	"github.com/MKhiriev/kardash/internal/logger"
	"github.com/MKhiriev/kardash/models"
)

type clientDashboardService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientDashboardService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientDashboardService {
	return &clientDashboardService{adapter: serverAdapter, logger: logger}
}

// FreelancerDashboard loads stats, open jobs and the user's own jobs at once.
// The first failure cancels the remaining calls.
func (d *clientDashboardService) FreelancerDashboard(ctx context.Context, query models.AvailableJobsQuery) (models.FreelancerDashboard, error) {
	var dashboard models.FreelancerDashboard

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		dashboard.Stats, err = d.adapter.FreelancerStats(gctx)
		return err
	})
	g.Go(func() (err error) {
		dashboard.AvailableJobs, err = d.adapter.AvailableJobs(gctx, query)
		return err
	})
	g.Go(func() (err error) {
		dashboard.MyJobs, err = d.adapter.MyJobs(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return models.FreelancerDashboard{}, fmt.Errorf("load dashboard: %w", mapAdapterError(err))
	}
	return dashboard, nil
}

// AdminOverview loads the admin panel: headline, jobs, bot accounts and users.
func (d *clientDashboardService) AdminOverview(ctx context.Context, filter models.JobFilter) (models.AdminOverview, error) {
	var overview models.AdminOverview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		overview.Overview, err = d.adapter.DashboardOverview(gctx)
		return err
	})
	g.Go(func() (err error) {
		overview.Jobs, err = d.adapter.ListJobs(gctx, filter)
		return err
	})
	g.Go(func() (err error) {
		overview.BotAccounts, err = d.adapter.BotAccounts(gctx)
		return err
	})
	g.Go(func() (err error) {
		overview.Users, err = d.adapter.ListUsers(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return models.AdminOverview{}, fmt.Errorf("load admin overview: %w", mapAdapterError(err))
	}
	return overview, nil
}

func (d *clientDashboardService) Earnings(ctx context.Context, period string) (models.EarningsReport, error) {
	switch period {
	case "":
		period = models.PeriodMonthly
	case models.PeriodDaily, models.PeriodWeekly, models.PeriodMonthly:
	default:
		return models.EarningsReport{}, fmt.Errorf("%w: unknown period %q", ErrInvalidInput, period)
	}

	report := models.EarningsReport{Period: period}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		report.Overview, err = d.adapter.EarningsOverview(gctx)
		return err
	})
	g.Go(func() (err error) {
		report.Chart, err = d.adapter.EarningsChart(gctx, period)
		return err
	})

	if err := g.Wait(); err != nil {
		return models.EarningsReport{}, fmt.Errorf("load earnings: %w", mapAdapterError(err))
	}
	return report, nil
}

func (d *clientDashboardService) UserStats(ctx context.Context) (models.UserStats, error) {
	stats, err := d.adapter.UserStats(ctx)
	if err != nil {
		return models.UserStats{}, mapAdapterError(err)
	}
	return stats, nil
}

func (d *clientDashboardService) ActivateUser(ctx context.Context, userID int64) (models.Message, error) {
	return d.setUserActive(ctx, userID, true)
}

func (d *clientDashboardService) DeactivateUser(ctx context.Context, userID int64) (models.Message, error) {
	return d.setUserActive(ctx, userID, false)
}

func (d *clientDashboardService) setUserActive(ctx context.Context, userID int64, active bool) (models.Message, error) {
	if err := validateID("user", userID); err != nil {
		return models.Message{}, err
	}

	call := d.adapter.DeactivateUser
	if active {
		call = d.adapter.ActivateUser
	}

	msg, err := call(ctx, userID)
	if err != nil {
		return models.Message{}, mapAdapterError(err)
	}

	d.logger.Info().Int64("user_id", userID).Bool("active", active).Msg("user status changed")
	return msg, nil
}

func (d *clientDashboardService) CreateBotAccount(ctx context.Context, account models.BotAccountCreate) (models.BotAccount, error) {
	account.Name = strings.TrimSpace(account.Name)
	account.Platform = strings.TrimSpace(account.Platform)
	if err := validateInput(account); err != nil {
		return models.BotAccount{}, err
	}

	bot, err := d.adapter.CreateBotAccount(ctx, account)
	if err != nil {
		return models.BotAccount{}, mapAdapterError(err)
	}

	d.logger.Info().Int64("bot_id", bot.ID).Str("platform", bot.Platform).Msg("bot account created")
	return bot, nil
}

func (d *clientDashboardService) ActivateBotAccount(ctx context.Context, botID int64) (models.Message, error) {
	return d.setBotStatus(ctx, botID, models.BotActive)
}

func (d *clientDashboardService) PauseBotAccount(ctx context.Context, botID int64) (models.Message, error) {
	return d.setBotStatus(ctx, botID, models.BotPaused)
}

func (d *clientDashboardService) setBotStatus(ctx context.Context, botID int64, status string) (models.Message, error) {
	if err := validateID("bot account", botID); err != nil {
		return models.Message{}, err
	}

	call := d.adapter.PauseBotAccount
	if status == models.BotActive {
		call = d.adapter.ActivateBotAccount
	}

	msg, err := call(ctx, botID)
	if err != nil {
		return models.Message{}, mapAdapterError(err)
	}

	d.logger.Info().Int64("bot_id", botID).Str("status", status).Msg("bot account status changed")
	return msg, nil
}

func (d *clientDashboardService) BotAccountStats(ctx context.Context) (models.BotAccountStats, error) {
	stats, err := d.adapter.BotAccountStats(ctx)
	if err != nil {
		return models.BotAccountStats{}, mapAdapterError(err)
	}
	return stats, nil
}
