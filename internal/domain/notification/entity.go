package notification

import (
	"time"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeAttendanceCheckIn      NotificationType = "attendance_check_in"
	TypeAttendanceCheckOut     NotificationType = "attendance_check_out"
	TypeAttendanceMarkedAbsent NotificationType = "attendance_marked_absent"
	TypeCheckoutReminder       NotificationType = "checkout_reminder"
	TypeLeaveRequest           NotificationType = "leave_request"
	TypeLeaveApproved          NotificationType = "leave_approved"
	TypeLeaveRejected          NotificationType = "leave_rejected"
	TypeMeetingReminder        NotificationType = "meeting_reminder"
	TypeMeetingCancelled       NotificationType = "meeting_cancelled"
)

// Notification represents a notification entity
type Notification struct {
	ID          string
	RecipientID string
	SenderID    *string
	Type        NotificationType
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
