package http

import (
	"net/http"

	"github.com/MKhiriev/kardash/internal/logger"
	"github.com/MKhiriev/kardash/internal/utils"
	"github.com/MKhiriev/kardash/models"
)

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, err := h.catalog.User(currentUserID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, user, http.StatusOK)
}

// updateMe ignores role and status: users cannot promote themselves.
func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request) {
	var update models.UserUpdate
	if !h.decodeBody(w, r, &update) {
		return
	}
	update.Role, update.Status = nil, nil

	user, err := h.catalog.UpdateUser(currentUserID(r), update)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.catalog.Users(), http.StatusOK)
}

func (h *Handler) userStats(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.catalog.UserStats(), http.StatusOK)
}

func (h *Handler) activateUser(w http.ResponseWriter, r *http.Request) {
	h.setUserActive(w, r, true)
}

func (h *Handler) deactivateUser(w http.ResponseWriter, r *http.Request) {
	h.setUserActive(w, r, false)
}

func (h *Handler) setUserActive(w http.ResponseWriter, r *http.Request, active bool) {
	userID, ok := pathID(w, r, "user_id")
	if !ok {
		return
	}

	msg, err := h.catalog.SetUserActive(currentUserID(r), userID, active)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", userID).Bool("active", active).Msg("user status changed")
	utils.WriteJSON(w, msg, http.StatusOK)
}
