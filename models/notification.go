package models

// Notification is a message for the current user.
type Notification struct {
	ID      int64     `json:"id" validate:"required"`
	UserID  int64     `json:"user_id"`
	Type    string    `json:"type" validate:"required"`
	Message string    `json:"message"`
	Time    Timestamp `json:"time"`
	IsRead  bool      `json:"is_read"`
}

// UnreadCount is the reply of /notifications/unread-count.
type UnreadCount struct {
	UnreadCount int `json:"unread_count" validate:"gte=0"`
}
