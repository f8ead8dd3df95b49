package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/kardash/internal/app"
	"github.com/MKhiriev/kardash/internal/utils"
	"github.com/MKhiriev/kardash/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteDetail(w, app.MsgNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteDetail(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	})

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Post("/auth/login", h.login)
		r.Post("/auth/register", h.register)
		r.Get("/jobs/available", h.availableJobs)
		r.Get("/jobs/{job_id}", h.getJob)
	})

	// any signed in user
	router.Group(func(r chi.Router) {
		r.Use(h.withAuth)

		r.Get("/users/me", h.me)
		r.Put("/users/me", h.updateMe)

		r.Get("/jobs/my", h.myJobs)
		r.Post("/jobs/{job_id}/apply", h.applyForJob)
		r.Post("/jobs/{job_id}/deliver", h.deliverJob)

		r.With(requireRole(models.RoleFreelancer, errAccessDenied)).
			Get("/dashboard/freelancer/stats", h.freelancerStats)

		r.Get("/notifications/", h.listNotifications)
		r.Get("/notifications/unread-count", h.unreadCount)
		r.Post("/notifications/{notification_id}/mark-read", h.markRead)
		r.Post("/notifications/mark-all-read", h.markAllRead)
	})

	// admin panel
	router.Group(func(r chi.Router) {
		r.Use(h.withAuth, requireRole(models.RoleAdmin, ErrNotEnoughPermissions))

		r.Get("/users/", h.listUsers)
		r.Get("/users/stats/overview", h.userStats)
		r.Post("/users/{user_id}/activate", h.activateUser)
		r.Post("/users/{user_id}/deactivate", h.deactivateUser)

		r.Get("/jobs/", h.listJobs)
		r.Post("/jobs/", h.createJob)
		r.Put("/jobs/{job_id}", h.updateJob)
		r.Delete("/jobs/{job_id}", h.deleteJob)
		r.Post("/jobs/{job_id}/complete", h.completeJob)

		r.Get("/dashboard/overview", h.dashboardOverview)
		r.Get("/dashboard/earnings/overview", h.earningsOverview)
		r.Get("/dashboard/earnings/chart", h.earningsChart)

		r.Get("/bot-accounts/", h.listBotAccounts)
		r.Post("/bot-accounts/", h.createBotAccount)
		r.Get("/bot-accounts/stats/overview", h.botAccountStats)
		r.Post("/bot-accounts/{bot_id}/activate", h.activateBotAccount)
		r.Post("/bot-accounts/{bot_id}/pause", h.pauseBotAccount)
	})

	return router
}
