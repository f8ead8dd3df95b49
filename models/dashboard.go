package models

// DashboardOverview is the admin panel headline.
type DashboardOverview struct {
	TotalJobs       int     `json:"total_jobs"`
	ActiveJobs      int     `json:"active_jobs"`
	TotalUsers      int     `json:"total_users"`
	TotalEarnings   float64 `json:"total_earnings"`
	MonthlyEarnings float64 `json:"monthly_earnings"`
	CommissionRate  float64 `json:"commission_rate"`
}

// FreelancerStats is the freelancer dashboard headline.
type FreelancerStats struct {
	TotalJobs       int     `json:"total_jobs"`
	CompletedJobs   int     `json:"completed_jobs"`
	ActiveJobs      int     `json:"active_jobs"`
	TotalEarnings   float64 `json:"total_earnings"`
	SuccessRate     float64 `json:"success_rate"`
	AverageJobValue float64 `json:"average_job_value"`
}

// EarningsOverview summarizes earnings over several windows.
type EarningsOverview struct {
	TotalEarnings   float64 `json:"total_earnings"`
	MonthlyEarnings float64 `json:"monthly_earnings"`
	WeeklyEarnings  float64 `json:"weekly_earnings"`
	DailyEarnings   float64 `json:"daily_earnings"`
	CommissionRate  float64 `json:"commission_rate"`
	PlatformFees    float64 `json:"platform_fees"`
	NetEarnings     float64 `json:"net_earnings"`
}

// EarningsChart is a labelled series; Labels and Data have equal length.
type EarningsChart struct {
	Labels []string  `json:"labels" validate:"required"`
	Data   []float64 `json:"data" validate:"required,eqfield=Labels"`
}

// Earnings chart periods.
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// FreelancerDashboard is everything the freelancer dashboard shows at once.
type FreelancerDashboard struct {
	Stats         FreelancerStats `json:"stats"`
	AvailableJobs []Job           `json:"available_jobs"`
	MyJobs        []Job           `json:"my_jobs"`
}

// AdminOverview is everything the admin panel shows at once.
type AdminOverview struct {
	Overview    DashboardOverview `json:"overview"`
	Jobs        []Job             `json:"jobs"`
	BotAccounts []BotAccount      `json:"bot_accounts"`
	Users       []User            `json:"users"`
}

// EarningsReport pairs the earnings summary with one chart.
type EarningsReport struct {
	Period   string           `json:"period"`
	Overview EarningsOverview `json:"overview"`
	Chart    EarningsChart    `json:"chart"`
}
