package notification

// CreateNotificationRequest queues one notification for delivery.
type CreateNotificationRequest struct {
	RecipientID string                 `json:"recipient_id"`
	SenderID    *string                `json:"sender_id,omitempty"`
	Type        NotificationType       `json:"type"`
	Title       string                 `json:"title"`
	Message     string                 `json:"message"`
	Data        map[string]interface{} `json:"data,omitempty"`

	// SendEmail also delivers the notification over SMTP when the
	// recipient has an email address.
	SendEmail bool `json:"-"`
}

type NotificationResponse struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Data      map[string]interface{} `json:"data,omitempty"`
	IsRead    bool                   `json:"is_read"`
	ReadAt    *string                `json:"read_at,omitempty"`
	CreatedAt string                 `json:"created_at"`
}

type NotificationListResponse struct {
	TotalCount    int64                  `json:"total_count"`
	UnreadCount   int                    `json:"unread_count"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
	Notifications []NotificationResponse `json:"notifications"`
}

type MarkAsReadRequest struct {
	NotificationIDs []string `json:"notification_ids"`
}

// SSEEvent is one event pushed to a live subscriber.
type SSEEvent struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}
