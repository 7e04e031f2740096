package notification

import (
	"context"
)

// NotificationRepository defines data access methods for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	GetByID(ctx context.Context, id string) (Notification, error)
	ListByRecipient(ctx context.Context, recipientID string, page, limit int, unreadOnly bool) ([]Notification, int64, error)
	CountUnread(ctx context.Context, recipientID string) (int, error)
	MarkAsRead(ctx context.Context, recipientID string, ids []string) error
	MarkAllAsRead(ctx context.Context, recipientID string) error
	Delete(ctx context.Context, recipientID, id string) error
}
