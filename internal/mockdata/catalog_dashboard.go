package mockdata

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/kardash/models"
)

// earnings figures are fixed placeholders, as on the real backend.
var (
	placeholderEarnings = models.EarningsOverview{
		TotalEarnings:   15000,
		MonthlyEarnings: 2500,
		WeeklyEarnings:  600,
		DailyEarnings:   85,
		CommissionRate:  0.15,
		PlatformFees:    2250,
		NetEarnings:     12750,
	}

	placeholderCharts = map[string]models.EarningsChart{
		models.PeriodMonthly: {
			Labels: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"},
			Data:   []float64{1200, 1800, 2200, 1900, 2500, 2800},
		},
		models.PeriodWeekly: {
			Labels: []string{"Week 1", "Week 2", "Week 3", "Week 4"},
			Data:   []float64{500, 600, 700, 800},
		},
		models.PeriodDaily: {
			Labels: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
			Data:   []float64{100, 120, 90, 110, 130, 80, 95},
		},
	}
)

func (c *Catalog) DashboardOverview() models.DashboardOverview {
	c.mu.RLock()
	defer c.mu.RUnlock()

	overview := models.DashboardOverview{
		TotalJobs:       len(c.jobs),
		TotalUsers:      len(c.accounts),
		TotalEarnings:   placeholderEarnings.TotalEarnings,
		MonthlyEarnings: placeholderEarnings.MonthlyEarnings,
		CommissionRate:  c.commissionRate,
	}
	for _, job := range c.jobs {
		if job.Status == models.JobOpen {
			overview.ActiveJobs++
		}
	}
	return overview
}

// FreelancerStats summarizes the jobs assigned to userID.
func (c *Catalog) FreelancerStats(userID int64) models.FreelancerStats {
	var stats models.FreelancerStats
	for _, job := range c.MyJobs(userID) {
		stats.TotalJobs++
		switch job.Status {
		case models.JobCompleted:
			stats.CompletedJobs++
			stats.TotalEarnings += budget(job)
		case models.JobInProgress:
			stats.ActiveJobs++
		}
	}

	if stats.TotalJobs > 0 {
		stats.SuccessRate = float64(stats.CompletedJobs) / float64(stats.TotalJobs)
	}
	if stats.CompletedJobs > 0 {
		stats.AverageJobValue = stats.TotalEarnings / float64(stats.CompletedJobs)
	}
	return stats
}

func (c *Catalog) EarningsOverview() models.EarningsOverview {
	return placeholderEarnings
}

// EarningsChart returns the series for period; empty means monthly.
func (c *Catalog) EarningsChart(period string) (models.EarningsChart, error) {
	if period == "" {
		period = models.PeriodMonthly
	}

	chart, ok := placeholderCharts[period]
	if !ok {
		return models.EarningsChart{}, ErrUnknownEarningsPeriod
	}
	return models.EarningsChart{Labels: slices.Clone(chart.Labels), Data: slices.Clone(chart.Data)}, nil
}

func (c *Catalog) BotAccounts() []models.BotAccount {
	c.mu.RLock()
	defer c.mu.RUnlock()

	bots := make([]models.BotAccount, 0, len(c.bots))
	for _, bot := range c.bots {
		bots = append(bots, *bot)
	}
	return bots
}

func (c *Catalog) CreateBotAccount(ownerID int64, create models.BotAccountCreate) (models.BotAccount, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if slices.ContainsFunc(c.bots, func(b *models.BotAccount) bool { return strings.EqualFold(b.Name, create.Name) }) {
		return models.BotAccount{}, ErrBotNameTaken
	}

	now := models.NewTimestamp(c.now())
	c.nextBotID++
	bot := &models.BotAccount{
		ID:        c.nextBotID,
		Name:      create.Name,
		Platform:  create.Platform,
		Profile:   create.Profile,
		Status:    models.BotActive,
		OwnerID:   &ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	c.bots = append(c.bots, bot)

	return *bot, nil
}

// SetBotStatus moves a bot account to status, one of models.BotActive or
// models.BotPaused.
func (c *Catalog) SetBotStatus(id int64, status string) (models.Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := slices.IndexFunc(c.bots, func(b *models.BotAccount) bool { return b.ID == id })
	if i < 0 {
		return models.Message{}, ErrBotNotFound
	}

	bot := c.bots[i]
	bot.Status = status
	bot.UpdatedAt = models.NewTimestamp(c.now())

	verb := "activated"
	if status == models.BotPaused {
		verb = "paused"
	}
	return models.Message{Message: fmt.Sprintf("Bot account %s %s successfully", bot.Name, verb)}, nil
}

func (c *Catalog) BotAccountStats() models.BotAccountStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var (
		stats       models.BotAccountStats
		successRate float64
	)
	for _, bot := range c.bots {
		stats.TotalBotAccounts++
		switch bot.Status {
		case models.BotActive:
			stats.ActiveBotAccounts++
		case models.BotPaused:
			stats.PausedBotAccounts++
		}
		stats.TotalJobsApplied += bot.JobsApplied
		successRate += bot.SuccessRate
	}
	if stats.TotalBotAccounts > 0 {
		stats.AverageSuccessRate = successRate / float64(stats.TotalBotAccounts)
	}
	return stats
}
