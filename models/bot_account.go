package models

// Bot account states.
const (
	BotActive = "active"
	BotPaused = "paused"
)

// BotAccount is an automation account that scrapes and applies on an
// external platform.
type BotAccount struct {
	ID           int64      `json:"id" validate:"required"`
	Name         string     `json:"name" validate:"required"`
	Platform     string     `json:"platform" validate:"required"`
	Profile      *string    `json:"profile,omitempty"`
	Status       string     `json:"status"`
	JobsApplied  int        `json:"jobs_applied"`
	SuccessRate  float64    `json:"success_rate"`
	LastActivity *Timestamp `json:"last_activity,omitempty"`
	OwnerID      *int64     `json:"owner_id,omitempty"`
	Config       *string    `json:"config,omitempty"`
	CreatedAt    Timestamp  `json:"created_at"`
	UpdatedAt    Timestamp  `json:"updated_at"`
}

// BotAccountCreate registers a new bot account.
type BotAccountCreate struct {
	Name     string  `json:"name" validate:"required"`
	Platform string  `json:"platform" validate:"required"`
	Profile  *string `json:"profile,omitempty"`
}

// BotAccountStats is the admin summary of all bot accounts.
type BotAccountStats struct {
	TotalBotAccounts   int     `json:"total_bot_accounts"`
	ActiveBotAccounts  int     `json:"active_bot_accounts"`
	PausedBotAccounts  int     `json:"paused_bot_accounts"`
	TotalJobsApplied   int     `json:"total_jobs_applied"`
	AverageSuccessRate float64 `json:"average_success_rate"`
}
