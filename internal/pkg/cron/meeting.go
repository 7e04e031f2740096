package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/staffledger/attendance-backend-go/internal/domain/employee"
	"github.com/staffledger/attendance-backend-go/internal/domain/meeting"
	"github.com/staffledger/attendance-backend-go/internal/domain/notification"
)

const meetingReminderHourUTC = 6

type MeetingJobs struct {
	instanceRepo    meeting.InstanceRepository
	attendeeRepo    meeting.AttendeeRepository
	employeeRepo    employee.EmployeeRepository
	notificationSvc notification.Service
}

func NewMeetingJobs(
	instanceRepo meeting.InstanceRepository,
	attendeeRepo meeting.AttendeeRepository,
	employeeRepo employee.EmployeeRepository,
	notificationSvc notification.Service,
) *MeetingJobs {
	return &MeetingJobs{
		instanceRepo:    instanceRepo,
		attendeeRepo:    attendeeRepo,
		employeeRepo:    employeeRepo,
		notificationSvc: notificationSvc,
	}
}

func (j *MeetingJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddDailyJob("meeting_reminder", meetingReminderHourUTC, j.MeetingReminder)
}

// MeetingReminder notifies every attendee of today's non-cancelled meeting
// instances.
func (j *MeetingJobs) MeetingReminder(ctx context.Context) error {
	today := time.Now().UTC().Format("2006-01-02")

	slog.Info("Cron: Starting meeting reminder job", "date", today)

	instances, err := j.instanceRepo.ListOnDate(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to list meeting instances: %w", err)
	}

	if len(instances) == 0 {
		slog.Info("Cron: No meetings scheduled today")
		return nil
	}

	reminded := 0
	for _, instance := range instances {
		title := "Meeting"
		if instance.Title != nil {
			title = *instance.Title
		}

		attendees, err := j.attendeeRepo.ListByInstance(ctx, instance.ID)
		if err != nil {
			slog.Error("Cron: Failed to list attendees", "instance_id", instance.ID, "error", err)
			continue
		}

		for _, attendee := range attendees {
			emp, err := j.employeeRepo.GetByID(ctx, attendee.EmployeeID)
			if err != nil || emp.UserID == nil {
				continue
			}

			if j.notificationSvc != nil {
				_ = j.notificationSvc.QueueNotification(ctx, notification.CreateNotificationRequest{
					RecipientID: *emp.UserID,
					Type:        notification.TypeMeetingReminder,
					Title:       "Meeting Today",
					Message:     fmt.Sprintf("You have a meeting today at %s: %s", instance.StartTime, title),
					Data: map[string]interface{}{
						"instance_id": instance.ID,
						"series_id":   instance.SeriesID,
						"date":        today,
						"start_time":  instance.StartTime,
					},
				})
			}
			reminded++
		}
	}

	slog.Info("Cron: Sent meeting reminders", "count", reminded)
	return nil
}
