package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/kardash/internal/adapter"
	"github.com/MKhiriev/kardash/internal/logger"
	"github.com/MKhiriev/kardash/models"
)

type clientJobService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientJobService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientJobService {
	return &clientJobService{adapter: serverAdapter, logger: logger}
}

func (j *clientJobService) Get(ctx context.Context, jobID int64) (models.Job, error) {
	if err := validateJobID(jobID); err != nil {
		return models.Job{}, err
	}

	job, err := j.adapter.GetJob(ctx, jobID)
	if err != nil {
		return models.Job{}, mapAdapterError(err)
	}
	return job, nil
}

func (j *clientJobService) Apply(ctx context.Context, jobID int64, proposal string, bidAmount float64) (models.JobApplication, error) {
	if err := validateJobID(jobID); err != nil {
		return models.JobApplication{}, err
	}

	application := models.JobApplicationCreate{Proposal: strings.TrimSpace(proposal), BidAmount: bidAmount}
	if err := validateInput(application); err != nil {
		return models.JobApplication{}, err
	}

	created, err := j.adapter.ApplyForJob(ctx, jobID, application)
	if err != nil {
		return models.JobApplication{}, mapAdapterError(err)
	}

	j.logger.Info().Int64("job_id", jobID).Int64("application_id", created.ID).Msg("applied for job")
	return created, nil
}

func (j *clientJobService) Deliver(ctx context.Context, jobID int64, notes, filesURL string) (models.Message, error) {
	if err := validateJobID(jobID); err != nil {
		return models.Message{}, err
	}

	delivery := models.JobDelivery{Notes: strings.TrimSpace(notes), FilesURL: strings.TrimSpace(filesURL)}
	if err := validateInput(delivery); err != nil {
		return models.Message{}, err
	}

	msg, err := j.adapter.DeliverJob(ctx, jobID, delivery)
	if err != nil {
		return models.Message{}, mapAdapterError(err)
	}
	return msg, nil
}

func (j *clientJobService) Complete(ctx context.Context, jobID int64, feedback string, rating float64) (models.Job, error) {
	if err := validateJobID(jobID); err != nil {
		return models.Job{}, err
	}

	completion := models.JobCompletion{Feedback: strings.TrimSpace(feedback), Rating: rating}
	if err := validateInput(completion); err != nil {
		return models.Job{}, err
	}

	job, err := j.adapter.CompleteJob(ctx, jobID, completion)
	if err != nil {
		return models.Job{}, mapAdapterError(err)
	}
	return job, nil
}

func (j *clientJobService) Create(ctx context.Context, job models.JobCreate) (models.Job, error) {
	job.Title = strings.TrimSpace(job.Title)
	if err := validateInput(job); err != nil {
		return models.Job{}, err
	}

	created, err := j.adapter.CreateJob(ctx, job)
	if err != nil {
		return models.Job{}, mapAdapterError(err)
	}
	return created, nil
}

func (j *clientJobService) Update(ctx context.Context, jobID int64, update models.JobUpdate) (models.Job, error) {
	if err := validateJobID(jobID); err != nil {
		return models.Job{}, err
	}
	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return models.Job{}, fmt.Errorf("%w: title cannot be blank", ErrInvalidInput)
		}
		update.Title = &title
	}
	if update.IsEmpty() {
		return models.Job{}, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if err := validateInput(update); err != nil {
		return models.Job{}, err
	}

	job, err := j.adapter.UpdateJob(ctx, jobID, update)
	if err != nil {
		return models.Job{}, mapAdapterError(err)
	}

	j.logger.Info().Int64("job_id", jobID).Msg("job updated")
	return job, nil
}

func (j *clientJobService) Delete(ctx context.Context, jobID int64) error {
	if err := validateJobID(jobID); err != nil {
		return err
	}

	if err := j.adapter.DeleteJob(ctx, jobID); err != nil {
		return mapAdapterError(err)
	}
	return nil
}

func validateJobID(jobID int64) error {
	return validateID("job", jobID)
}

func validateID(kind string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s id must be positive, got %d", ErrInvalidInput, kind, id)
	}
	return nil
}
