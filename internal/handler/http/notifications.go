package http

import (
	"net/http"

	"github.com/MKhiriev/kardash/internal/app"
	"github.com/MKhiriev/kardash/internal/utils"
	"github.com/MKhiriev/kardash/models"
)

const notificationIDParam = "notification_id"

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	notifications := h.catalog.Notifications(currentUserID(r), queryBool(r, "unread_only"))
	utils.WriteJSON(w, notifications, http.StatusOK)
}

func (h *Handler) unreadCount(w http.ResponseWriter, r *http.Request) {
	count := h.catalog.UnreadCount(currentUserID(r))
	utils.WriteJSON(w, models.UnreadCount{UnreadCount: count}, http.StatusOK)
}

// markRead answers 204 without a body.
func (h *Handler) markRead(w http.ResponseWriter, r *http.Request) {
	notificationID, ok := pathID(w, r, notificationIDParam)
	if !ok {
		return
	}

	if err := h.catalog.MarkRead(currentUserID(r), notificationID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) markAllRead(w http.ResponseWriter, r *http.Request) {
	h.catalog.MarkAllRead(currentUserID(r))
	utils.WriteJSON(w, models.Message{Message: app.MsgAllNotificationsRead}, http.StatusOK)
}
