package notification

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/staffledger/attendance-backend-go/internal/domain/notification"
	"github.com/staffledger/attendance-backend-go/internal/domain/user"
	"github.com/staffledger/attendance-backend-go/internal/pkg/email"
	"github.com/staffledger/attendance-backend-go/internal/pkg/sse"
)

const (
	defaultWorkers   = 4
	defaultQueueSize = 256
)

type NotificationServiceImpl struct {
	notificationRepo notification.NotificationRepository
	userRepo         user.UserRepository
	emailService     email.EmailService
	hub              *sse.Hub

	queue    chan notification.CreateNotificationRequest
	quit     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func NewNotificationService(
	notificationRepo notification.NotificationRepository,
	userRepo user.UserRepository,
	emailService email.EmailService,
	hub *sse.Hub,
) notification.Service {
	s := &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		emailService:     emailService,
		hub:              hub,
		queue:            make(chan notification.CreateNotificationRequest, defaultQueueSize),
		quit:             make(chan struct{}),
	}

	for i := 0; i < defaultWorkers; i++ {
		s.wg.Add(1)
		go s.worker()
	}

	return s
}

func (s *NotificationServiceImpl) worker() {
	defer s.wg.Done()

	for {
		select {
		case req := <-s.queue:
			s.deliver(context.Background(), req)
		case <-s.quit:
			// Drain whatever is still queued before exiting.
			for {
				select {
				case req := <-s.queue:
					s.deliver(context.Background(), req)
				default:
					return
				}
			}
		}
	}
}

// QueueNotification implements notification.Service.
func (s *NotificationServiceImpl) QueueNotification(ctx context.Context, req notification.CreateNotificationRequest) error {
	select {
	case <-s.quit:
		return s.deliver(ctx, req)
	default:
	}

	select {
	case s.queue <- req:
		return nil
	default:
		// Queue is full, deliver inline rather than drop.
		return s.deliver(ctx, req)
	}
}

// QueueBulkNotification implements notification.Service.
func (s *NotificationServiceImpl) QueueBulkNotification(ctx context.Context, reqs []notification.CreateNotificationRequest) error {
	for _, req := range reqs {
		if err := s.QueueNotification(ctx, req); err != nil {
			return err
		}
	}
	return nil
}

func (s *NotificationServiceImpl) deliver(ctx context.Context, req notification.CreateNotificationRequest) error {
	created, err := s.notificationRepo.Create(ctx, notification.Notification{
		RecipientID: req.RecipientID,
		SenderID:    req.SenderID,
		Type:        req.Type,
		Title:       req.Title,
		Message:     req.Message,
		Data:        req.Data,
	})
	if err != nil {
		slog.Error("failed to persist notification", "recipient_id", req.RecipientID, "type", req.Type, "error", err)
		return fmt.Errorf("failed to persist notification: %w", err)
	}

	s.hub.Publish(req.RecipientID, sse.Event{
		UserID: req.RecipientID,
		Event:  "notification",
		Data:   mapNotificationToResponse(created),
	})

	if req.SendEmail {
		recipient, err := s.userRepo.GetByID(ctx, req.RecipientID)
		if err != nil {
			slog.Warn("failed to load recipient for notification email", "recipient_id", req.RecipientID, "error", err)
			return nil
		}
		if err := s.emailService.SendNotification(recipient.Email, recipient.Email, req.Title, req.Message); err != nil {
			slog.Warn("failed to send notification email", "recipient_id", req.RecipientID, "error", err)
		}
	}

	return nil
}

// GetNotifications implements notification.Service.
func (s *NotificationServiceImpl) GetNotifications(ctx context.Context, userID string, page, limit int, unreadOnly bool) (*notification.NotificationListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	notifications, total, err := s.notificationRepo.ListByRecipient(ctx, userID, page, limit, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	unread, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	responses := make([]notification.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, mapNotificationToResponse(n))
	}

	return &notification.NotificationListResponse{
		TotalCount:    total,
		UnreadCount:   unread,
		Page:          page,
		Limit:         limit,
		Notifications: responses,
	}, nil
}

// GetUnreadCount implements notification.Service.
func (s *NotificationServiceImpl) GetUnreadCount(ctx context.Context, userID string) (int, error) {
	return s.notificationRepo.CountUnread(ctx, userID)
}

// MarkAsRead implements notification.Service.
func (s *NotificationServiceImpl) MarkAsRead(ctx context.Context, userID string, req notification.MarkAsReadRequest) error {
	if len(req.NotificationIDs) == 0 {
		return nil
	}
	return s.notificationRepo.MarkAsRead(ctx, userID, req.NotificationIDs)
}

// MarkAllAsRead implements notification.Service.
func (s *NotificationServiceImpl) MarkAllAsRead(ctx context.Context, userID string) error {
	return s.notificationRepo.MarkAllAsRead(ctx, userID)
}

// Delete implements notification.Service.
func (s *NotificationServiceImpl) Delete(ctx context.Context, userID string, notificationID string) error {
	return s.notificationRepo.Delete(ctx, userID, notificationID)
}

// Subscribe implements notification.Service.
func (s *NotificationServiceImpl) Subscribe(ctx context.Context, userID string) (<-chan notification.SSEEvent, func()) {
	ch, cleanup := s.hub.Subscribe(userID)

	out := make(chan notification.SSEEvent, cap(ch))
	go func() {
		defer close(out)
		for event := range ch {
			out <- notification.SSEEvent{Event: event.Event, Data: event.Data}
		}
	}()

	return out, cleanup
}

// Stop implements notification.Service. It waits for queued notifications to
// drain, then closes all live SSE subscriptions.
func (s *NotificationServiceImpl) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
		s.wg.Wait()
		s.hub.Shutdown()
	})
}

func mapNotificationToResponse(n notification.Notification) notification.NotificationResponse {
	resp := notification.NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Data:      n.Data,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if n.ReadAt != nil {
		readAt := n.ReadAt.Format("2006-01-02 15:04:05")
		resp.ReadAt = &readAt
	}
	return resp
}
