package mockdata

import (
	"slices"

	"github.com/MKhiriev/kardash/models"
)

// Notifications returns userID's notifications, newest first.
func (c *Catalog) Notifications(userID int64, unreadOnly bool) []models.Notification {
	c.mu.RLock()
	defer c.mu.RUnlock()

	notifications := []models.Notification{}
	for _, n := range c.notifications {
		if n.UserID != userID || (unreadOnly && n.IsRead) {
			continue
		}
		notifications = append(notifications, *n)
	}

	slices.SortStableFunc(notifications, func(a, b models.Notification) int { return b.Time.Compare(a.Time.Time) })
	return notifications
}

func (c *Catalog) UnreadCount(userID int64) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	count := 0
	for _, n := range c.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count
}

func (c *Catalog) MarkRead(userID, notificationID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := slices.IndexFunc(c.notifications, func(n *models.Notification) bool {
		return n.ID == notificationID && n.UserID == userID
	})
	if i < 0 {
		return ErrNotificationNotFound
	}
	c.notifications[i].IsRead = true
	return nil
}

func (c *Catalog) MarkAllRead(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, n := range c.notifications {
		if n.UserID == userID {
			n.IsRead = true
		}
	}
}

// Notify adds an unread notification for userID.
func (c *Catalog) Notify(userID int64, kind, message string) models.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.notifyLocked(userID, kind, message)
}

func (c *Catalog) notifyLocked(userID int64, kind, message string) models.Notification {
	c.nextNotificationID++
	n := &models.Notification{
		ID:      c.nextNotificationID,
		UserID:  userID,
		Type:    kind,
		Message: message,
		Time:    models.NewTimestamp(c.now()),
	}
	c.notifications = append(c.notifications, n)
	return *n
}
