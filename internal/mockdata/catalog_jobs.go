package mockdata

import (
	"cmp"
	"slices"
	"strings"

	"github.com/MKhiriev/kardash/models"
)

// Jobs returns every job matching filter.
func (c *Catalog) Jobs(filter models.JobFilter) []models.Job {
	c.mu.RLock()
	defer c.mu.RUnlock()

	jobs := make([]models.Job, 0, len(c.jobs))
	for _, job := range c.jobs {
		if filter.Status != "" && job.Status != filter.Status {
			continue
		}
		if filter.Platform != "" && (job.Platform == nil || *job.Platform != filter.Platform) {
			continue
		}
		if !matchesSearch(job, filter.Search) {
			continue
		}
		jobs = append(jobs, *job)
	}
	return jobs
}

// AvailableJobs returns open jobs, newest first unless query.SortBy asks for
// "budget-high" or "budget-low".
func (c *Catalog) AvailableJobs(query models.AvailableJobsQuery) []models.Job {
	c.mu.RLock()
	jobs := make([]models.Job, 0, len(c.jobs))
	for _, job := range c.jobs {
		if job.Status != models.JobOpen {
			continue
		}
		if query.FilterType == "urgent" && !job.IsUrgent {
			continue
		}
		if !matchesSearch(job, query.Search) {
			continue
		}
		jobs = append(jobs, *job)
	}
	c.mu.RUnlock()

	switch query.SortBy {
	case "budget-high":
		slices.SortStableFunc(jobs, func(a, b models.Job) int { return cmp.Compare(budget(b), budget(a)) })
	case "budget-low":
		slices.SortStableFunc(jobs, func(a, b models.Job) int { return cmp.Compare(budget(a), budget(b)) })
	default:
		slices.SortStableFunc(jobs, func(a, b models.Job) int { return b.CreatedAt.Compare(a.CreatedAt.Time) })
	}
	return jobs
}

// MyJobs returns the jobs assigned to userID.
func (c *Catalog) MyJobs(userID int64) []models.Job {
	c.mu.RLock()
	defer c.mu.RUnlock()

	jobs := []models.Job{}
	for _, job := range c.jobs {
		if job.AssignedToUserID != nil && *job.AssignedToUserID == userID {
			jobs = append(jobs, *job)
		}
	}
	return jobs
}

func (c *Catalog) Job(id int64) (models.Job, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	job := c.jobByID(id)
	if job == nil {
		return models.Job{}, ErrJobNotFound
	}
	return *job, nil
}

func (c *Catalog) CreateJob(ownerID int64, create models.JobCreate) models.Job {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := models.NewTimestamp(c.now())
	c.nextJobID++
	job := &models.Job{
		ID:             c.nextJobID,
		Title:          create.Title,
		Description:    create.Description,
		Budget:         create.Budget,
		Platform:       create.Platform,
		Type:           create.Type,
		Tags:           create.Tags,
		Urgency:        create.Urgency,
		IsUrgent:       create.IsUrgent,
		Status:         models.JobOpen,
		CommissionRate: c.commissionRate,
		UserID:         ownerID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	c.jobs = append(c.jobs, job)

	return *job
}

// UpdateJob applies the non-nil fields of update.
func (c *Catalog) UpdateJob(id int64, update models.JobUpdate) (models.Job, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	job := c.jobByID(id)
	if job == nil {
		return models.Job{}, ErrJobNotFound
	}

	if update.Title != nil {
		job.Title = *update.Title
	}
	if update.Description != nil {
		job.Description = *update.Description
	}
	if update.Budget != nil {
		job.Budget = *update.Budget
	}
	if update.Status != nil {
		job.Status = *update.Status
	}
	if update.Deadline != nil {
		job.Deadline = update.Deadline
	}
	if update.Type != nil {
		job.Type = update.Type
	}
	if update.Tags != nil {
		job.Tags = update.Tags
	}
	if update.Urgency != nil {
		job.Urgency = update.Urgency
	}
	if update.IsUrgent != nil {
		job.IsUrgent = *update.IsUrgent
	}
	job.UpdatedAt = models.NewTimestamp(c.now())

	return *job, nil
}

func (c *Catalog) DeleteJob(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := slices.IndexFunc(c.jobs, func(j *models.Job) bool { return j.ID == id })
	if i < 0 {
		return ErrJobNotFound
	}
	c.jobs = slices.Delete(c.jobs, i, i+1)
	return nil
}

// Apply records userID's application for an open job. A user applies once
// per job.
func (c *Catalog) Apply(userID, jobID int64, create models.JobApplicationCreate) (models.JobApplication, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	job := c.jobByID(jobID)
	if job == nil {
		return models.JobApplication{}, ErrJobNotFound
	}
	if job.Status != models.JobOpen {
		return models.JobApplication{}, ErrJobNotOpen
	}
	if slices.ContainsFunc(c.applications, func(a *models.JobApplication) bool {
		return a.JobID == jobID && a.UserID == userID
	}) {
		return models.JobApplication{}, ErrAlreadyApplied
	}

	c.nextApplicationID++
	application := &models.JobApplication{
		ID:        c.nextApplicationID,
		JobID:     jobID,
		UserID:    userID,
		Proposal:  create.Proposal,
		BidAmount: create.BidAmount,
		Status:    "pending",
		CreatedAt: models.NewTimestamp(c.now()),
	}
	c.applications = append(c.applications, application)

	return *application, nil
}

// Deliver hands in an in-progress job assigned to userID.
func (c *Catalog) Deliver(userID, jobID int64, delivery models.JobDelivery) (models.Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	job := c.jobByID(jobID)
	if job == nil || job.AssignedToUserID == nil || *job.AssignedToUserID != userID {
		return models.Message{}, ErrJobNotFound
	}
	if job.Status != models.JobInProgress {
		return models.Message{}, ErrJobNotInProgress
	}

	job.Status = models.JobDelivered
	job.DeliveryNotes = &delivery.Notes
	job.DeliveryFilesURL = &delivery.FilesURL
	job.UpdatedAt = models.NewTimestamp(c.now())

	return models.Message{Message: "Job delivered successfully"}, nil
}

// Complete closes a delivered job, pays the freelancer the budget minus the
// commission and notifies them.
func (c *Catalog) Complete(jobID int64, completion models.JobCompletion) (models.Job, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	job := c.jobByID(jobID)
	if job == nil {
		return models.Job{}, ErrJobNotFound
	}
	if job.Status != models.JobDelivered {
		return models.Job{}, ErrJobNotDelivered
	}

	now := models.NewTimestamp(c.now())
	job.Status = models.JobCompleted
	job.ClientFeedback = &completion.Feedback
	job.FreelancerRating = &completion.Rating
	job.CompletedAt = &now
	job.UpdatedAt = now

	if job.AssignedToUserID != nil {
		if acc := c.accountByID(*job.AssignedToUserID); acc != nil {
			commission := job.CommissionRate
			if commission == 0 {
				commission = c.commissionRate
			}
			acc.user.TotalEarnings += budget(*job) * (1 - commission)
			acc.user.CompletedJobs++
			c.notifyLocked(acc.user.ID, "job_completed", "Job \""+job.Title+"\" was completed and paid")
		}
	}

	return *job, nil
}

func (c *Catalog) jobByID(id int64) *models.Job {
	i := slices.IndexFunc(c.jobs, func(j *models.Job) bool { return j.ID == id })
	if i < 0 {
		return nil
	}
	return c.jobs[i]
}

func matchesSearch(job *models.Job, search string) bool {
	if search == "" {
		return true
	}
	search = strings.ToLower(search)
	return strings.Contains(strings.ToLower(job.Title), search) ||
		strings.Contains(strings.ToLower(job.Description), search)
}

func budget(job models.Job) float64 {
	v, _ := job.Budget.Float()
	return v
}
