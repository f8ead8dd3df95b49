package models

// UserRole is the account role.
type UserRole string

const (
	RoleFreelancer UserRole = "freelancer"
	RoleAdmin      UserRole = "admin"
)

// User is a KARDASH account as returned by /users endpoints.
type User struct {
	ID            int64     `json:"id" validate:"required"`
	Email         string    `json:"email" validate:"required"`
	Name          string    `json:"name"`
	Role          UserRole  `json:"role" validate:"required"`
	IsActive      bool      `json:"is_active"`
	SkillTags     *string   `json:"skill_tags,omitempty"`
	HourlyRate    float64   `json:"hourly_rate"`
	TotalEarnings float64   `json:"total_earnings"`
	Rating        float64   `json:"rating"`
	CompletedJobs int       `json:"completed_jobs"`
	CreatedAt     Timestamp `json:"created_at"`
	UpdatedAt     Timestamp `json:"updated_at"`
}

// IsAdmin reports whether the user may use the admin panel.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserUpdate is a partial profile update; nil fields are left unchanged.
type UserUpdate struct {
	Name       *string  `json:"name,omitempty"`
	Role       *string  `json:"role,omitempty"`
	Status     *string  `json:"status,omitempty"`
	SkillTags  *string  `json:"skill_tags,omitempty"`
	HourlyRate *float64 `json:"hourly_rate,omitempty" validate:"omitempty,gte=0"`
}

// UserStats is the admin user summary.
type UserStats struct {
	TotalUsers        int `json:"total_users"`
	ActiveUsers       int `json:"active_users"`
	Freelancers       int `json:"freelancers"`
	Admins            int `json:"admins"`
	NewUsersThisMonth int `json:"new_users_this_month"`
}
