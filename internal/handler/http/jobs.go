package http

import (
	"net/http"

	"github.com/MKhiriev/kardash/internal/app"
	"github.com/MKhiriev/kardash/internal/logger"
	"github.com/MKhiriev/kardash/internal/utils"
	"github.com/MKhiriev/kardash/models"
)

const jobIDParam = "job_id"

func (h *Handler) listJobs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	jobs := h.catalog.Jobs(models.JobFilter{
		Search:   query.Get("search"),
		Status:   models.JobStatus(query.Get("status")),
		Platform: query.Get("platform"),
	})
	utils.WriteJSON(w, jobs, http.StatusOK)
}

func (h *Handler) availableJobs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	jobs := h.catalog.AvailableJobs(models.AvailableJobsQuery{
		Search:     query.Get("search"),
		SortBy:     query.Get("sort_by"),
		FilterType: query.Get("filter_type"),
	})
	utils.WriteJSON(w, jobs, http.StatusOK)
}

func (h *Handler) myJobs(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.catalog.MyJobs(currentUserID(r)), http.StatusOK)
}

func (h *Handler) getJob(w http.ResponseWriter, r *http.Request) {
	jobID, ok := pathID(w, r, jobIDParam)
	if !ok {
		return
	}

	job, err := h.catalog.Job(jobID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, job, http.StatusOK)
}

func (h *Handler) createJob(w http.ResponseWriter, r *http.Request) {
	var create models.JobCreate
	if !h.decodeBody(w, r, &create) {
		return
	}

	job := h.catalog.CreateJob(currentUserID(r), create)
	logger.FromRequest(r).Info().Int64("job_id", job.ID).Msg("job created")
	utils.WriteJSON(w, job, http.StatusOK)
}

func (h *Handler) updateJob(w http.ResponseWriter, r *http.Request) {
	jobID, ok := pathID(w, r, jobIDParam)
	if !ok {
		return
	}

	var update models.JobUpdate
	if !h.decodeBody(w, r, &update) {
		return
	}

	job, err := h.catalog.UpdateJob(jobID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, job, http.StatusOK)
}

func (h *Handler) deleteJob(w http.ResponseWriter, r *http.Request) {
	jobID, ok := pathID(w, r, jobIDParam)
	if !ok {
		return
	}

	if err := h.catalog.DeleteJob(jobID); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("job_id", jobID).Msg("job deleted")
	utils.WriteJSON(w, models.Message{Message: app.MsgJobDeleted}, http.StatusOK)
}

func (h *Handler) applyForJob(w http.ResponseWriter, r *http.Request) {
	jobID, ok := pathID(w, r, jobIDParam)
	if !ok {
		return
	}

	var create models.JobApplicationCreate
	if !h.decodeBody(w, r, &create) {
		return
	}

	application, err := h.catalog.Apply(currentUserID(r), jobID, create)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, application, http.StatusOK)
}

func (h *Handler) deliverJob(w http.ResponseWriter, r *http.Request) {
	jobID, ok := pathID(w, r, jobIDParam)
	if !ok {
		return
	}

	var delivery models.JobDelivery
	if !h.decodeBody(w, r, &delivery) {
		return
	}

	msg, err := h.catalog.Deliver(currentUserID(r), jobID, delivery)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, msg, http.StatusOK)
}

func (h *Handler) completeJob(w http.ResponseWriter, r *http.Request) {
	jobID, ok := pathID(w, r, jobIDParam)
	if !ok {
		return
	}

	var completion models.JobCompletion
	if !h.decodeBody(w, r, &completion) {
		return
	}

	job, err := h.catalog.Complete(jobID, completion)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, job, http.StatusOK)
}
