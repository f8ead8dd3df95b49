package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/kardash/internal/adapter"
	"github.com/MKhiriev/kardash/models"
)

type clientNotificationService struct {
	adapter adapter.ServerAdapter
}

func NewClientNotificationService(serverAdapter adapter.ServerAdapter) ClientNotificationService {
	return &clientNotificationService{adapter: serverAdapter}
}

func (n *clientNotificationService) List(ctx context.Context, unreadOnly bool) ([]models.Notification, error) {
	notifications, err := n.adapter.Notifications(ctx, unreadOnly)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return notifications, nil
}

func (n *clientNotificationService) UnreadCount(ctx context.Context) (int, error) {
	count, err := n.adapter.UnreadCount(ctx)
	if err != nil {
		return 0, mapAdapterError(err)
	}
	return count, nil
}

func (n *clientNotificationService) MarkRead(ctx context.Context, notificationID int64) error {
	if notificationID <= 0 {
		return fmt.Errorf("%w: notification id must be positive, got %d", ErrInvalidInput, notificationID)
	}

	if err := n.adapter.MarkNotificationRead(ctx, notificationID); err != nil {
		return mapAdapterError(err)
	}
	return nil
}

func (n *clientNotificationService) MarkAllRead(ctx context.Context) error {
	if err := n.adapter.MarkAllNotificationsRead(ctx); err != nil {
		return mapAdapterError(err)
	}
	return nil
}
