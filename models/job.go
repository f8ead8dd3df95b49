package models

// JobStatus is the lifecycle state of a job.
type JobStatus string

const (
	JobOpen       JobStatus = "open"
	JobAvailable  JobStatus = "available"
	JobInProgress JobStatus = "in_progress"
	JobDelivered  JobStatus = "delivered"
	JobCompleted  JobStatus = "completed"
	JobCancelled  JobStatus = "cancelled"
)

// Job is a freelance job aggregated from an external platform.
type Job struct {
	ID                    int64      `json:"id" validate:"required"`
	Title                 string     `json:"title" validate:"required"`
	Description           string     `json:"description"`
	Budget                Budget     `json:"budget"`
	Deadline              *Timestamp `json:"deadline,omitempty"`
	Type                  *string    `json:"type,omitempty"`
	Platform              *string    `json:"platform,omitempty"`
	Tags                  *string    `json:"tags,omitempty"`
	Urgency               *string    `json:"urgency,omitempty"`
	ClientRating          *float64   `json:"client_rating,omitempty"`
	EstimatedHours        *string    `json:"estimated_hours,omitempty"`
	Status                JobStatus  `json:"status" validate:"required"`
	OriginalPlatformJobID *string    `json:"original_platform_job_id,omitempty"`
	BotAccountID          *int64     `json:"bot_account_id,omitempty"`
	AssignedToUserID      *int64     `json:"assigned_to_user_id,omitempty"`
	CommissionRate        float64    `json:"commission_rate"`
	ClientResponse        *string    `json:"client_response,omitempty"`
	AppliedAt             *Timestamp `json:"applied_at,omitempty"`
	DeliveryNotes         *string    `json:"delivery_notes,omitempty"`
	DeliveryFilesURL      *string    `json:"delivery_files_url,omitempty"`
	ClientFeedback        *string    `json:"client_feedback,omitempty"`
	FreelancerRating      *float64   `json:"freelancer_rating,omitempty"`
	CompletedAt           *Timestamp `json:"completed_at,omitempty"`
	IsUrgent              bool       `json:"is_urgent"`
	UserID                int64      `json:"user_id"`
	CreatedAt             Timestamp  `json:"created_at"`
	UpdatedAt             Timestamp  `json:"updated_at"`
}

// JobCreate is the admin request body for a new job.
type JobCreate struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Budget      Budget  `json:"budget" validate:"required"`
	Platform    *string `json:"platform,omitempty"`
	Type        *string `json:"type,omitempty"`
	Tags        *string `json:"tags,omitempty"`
	Urgency     *string `json:"urgency,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	IsUrgent    bool    `json:"is_urgent"`
}

// JobUpdate is the admin edit of a job; nil fields are left unchanged.
type JobUpdate struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=1"`
	Description *string    `json:"description,omitempty"`
	Budget      *Budget    `json:"budget,omitempty"`
	Status      *JobStatus `json:"status,omitempty" validate:"omitempty,oneof=open available in_progress delivered completed cancelled"`
	Deadline    *Timestamp `json:"deadline,omitempty"`
	Type        *string    `json:"type,omitempty"`
	Tags        *string    `json:"tags,omitempty"`
	Urgency     *string    `json:"urgency,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	IsUrgent    *bool      `json:"is_urgent,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u JobUpdate) IsEmpty() bool {
	return u == JobUpdate{}
}

// JobFilter narrows the admin job list. Empty fields are not sent.
type JobFilter struct {
	Search   string
	Status   JobStatus
	Platform string
}

// AvailableJobsQuery narrows the freelancer's list of open jobs.
type AvailableJobsQuery struct {
	Search string
	// SortBy is "created_at" (default), "budget-high" or "budget-low".
	SortBy string
	// FilterType "urgent" keeps urgent jobs only.
	FilterType string
}

// JobApplicationCreate is the body of an application.
type JobApplicationCreate struct {
	Proposal  string  `json:"proposal" validate:"required"`
	BidAmount float64 `json:"bid_amount" validate:"gt=0"`
}

// JobApplication is a stored application.
type JobApplication struct {
	ID        int64     `json:"id" validate:"required"`
	JobID     int64     `json:"job_id" validate:"required"`
	UserID    int64     `json:"user_id"`
	Proposal  string    `json:"proposal"`
	BidAmount float64   `json:"bid_amount"`
	Status    string    `json:"status"`
	CreatedAt Timestamp `json:"created_at"`
}

// JobDelivery is the freelancer's hand-in.
type JobDelivery struct {
	Notes    string `json:"notes" validate:"required"`
	FilesURL string `json:"files_url" validate:"required,url"`
}

// JobCompletion closes a delivered job with feedback for the freelancer.
type JobCompletion struct {
	Feedback string  `json:"feedback" validate:"required"`
	Rating   float64 `json:"rating" validate:"gte=1,lte=5"`
}

// Message is the generic acknowledgement body of the backend.
type Message struct {
	Message string `json:"message"`
}
