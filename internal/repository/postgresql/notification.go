package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffledger/attendance-backend-go/internal/domain/notification"
	"github.com/staffledger/attendance-backend-go/internal/pkg/database"
)

type notificationRepositoryImpl struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.NotificationRepository {
	return &notificationRepositoryImpl{db: db}
}

func scanNotification(row pgx.Row) (notification.Notification, error) {
	var n notification.Notification
	var data []byte
	err := row.Scan(
		&n.ID, &n.RecipientID, &n.SenderID, &n.Type, &n.Title, &n.Message,
		&data, &n.IsRead, &n.ReadAt, &n.CreatedAt,
	)
	if err != nil {
		return notification.Notification{}, err
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &n.Data); err != nil {
			return notification.Notification{}, fmt.Errorf("failed to decode notification data: %w", err)
		}
	}
	return n, nil
}

// Create implements notification.NotificationRepository.
func (r *notificationRepositoryImpl) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	var data []byte
	if n.Data != nil {
		encoded, err := json.Marshal(n.Data)
		if err != nil {
			return notification.Notification{}, fmt.Errorf("failed to encode notification data: %w", err)
		}
		data = encoded
	}

	if n.ID == "" {
		n.ID = uuid.New().String()
	}

	query := `
		INSERT INTO notifications (id, recipient_id, sender_id, type, title, message, data)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		n.ID, n.RecipientID, n.SenderID, n.Type, n.Title, n.Message, data,
	).Scan(&n.CreatedAt)
	if err != nil {
		return notification.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}

	return n, nil
}

// GetByID implements notification.NotificationRepository.
func (r *notificationRepositoryImpl) GetByID(ctx context.Context, id string) (notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, recipient_id, sender_id, type, title, message, data, is_read, read_at, created_at
		FROM notifications
		WHERE id = $1
	`

	n, err := scanNotification(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notification.Notification{}, notification.ErrNotificationNotFound
		}
		return notification.Notification{}, err
	}

	return n, nil
}

// ListByRecipient implements notification.NotificationRepository.
func (r *notificationRepositoryImpl) ListByRecipient(ctx context.Context, recipientID string, page, limit int, unreadOnly bool) ([]notification.Notification, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "recipient_id = $1"
	if unreadOnly {
		baseWhere += " AND is_read = FALSE"
	}

	countQuery := "SELECT COUNT(*) FROM notifications WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, recipientID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	if limit == 0 {
		limit = 20
	}
	offset := (page - 1) * limit

	selectQuery := fmt.Sprintf(`
		SELECT id, recipient_id, sender_id, type, title, message, data, is_read, read_at, created_at
		FROM notifications
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, baseWhere)

	rows, err := q.Query(ctx, selectQuery, recipientID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []notification.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	return notifications, total, rows.Err()
}

// CountUnread implements notification.NotificationRepository.
func (r *notificationRepositoryImpl) CountUnread(ctx context.Context, recipientID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	query := `SELECT COUNT(*) FROM notifications WHERE recipient_id = $1 AND is_read = FALSE`
	if err := q.QueryRow(ctx, query, recipientID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

// MarkAsRead implements notification.NotificationRepository.
func (r *notificationRepositoryImpl) MarkAsRead(ctx context.Context, recipientID string, ids []string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notifications
		SET is_read = TRUE, read_at = NOW()
		WHERE recipient_id = $1 AND id = ANY($2) AND is_read = FALSE
	`

	if _, err := q.Exec(ctx, query, recipientID, ids); err != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", err)
	}

	return nil
}

// MarkAllAsRead implements notification.NotificationRepository.
func (r *notificationRepositoryImpl) MarkAllAsRead(ctx context.Context, recipientID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notifications
		SET is_read = TRUE, read_at = NOW()
		WHERE recipient_id = $1 AND is_read = FALSE
	`

	if _, err := q.Exec(ctx, query, recipientID); err != nil {
		return fmt.Errorf("failed to mark all notifications as read: %w", err)
	}

	return nil
}

// Delete implements notification.NotificationRepository.
func (r *notificationRepositoryImpl) Delete(ctx context.Context, recipientID, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM notifications WHERE recipient_id = $1 AND id = $2`, recipientID, id)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}

	return nil
}
