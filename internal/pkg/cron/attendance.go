package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/staffledger/attendance-backend-go/internal/domain/attendance"
	"github.com/staffledger/attendance-backend-go/internal/domain/employee"
	"github.com/staffledger/attendance-backend-go/internal/domain/leave"
	"github.com/staffledger/attendance-backend-go/internal/domain/notification"
	"github.com/staffledger/attendance-backend-go/internal/domain/user"
)

const (
	markAbsentHourUTC       = 0
	checkoutReminderHourUTC = 17
)

type AttendanceJobs struct {
	attendanceRepo  attendance.AttendanceRepository
	employeeRepo    employee.EmployeeRepository
	leaveRepo       leave.LeaveRepository
	userRepo        user.UserRepository
	notificationSvc notification.Service
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRepository,
	userRepo user.UserRepository,
	notificationSvc notification.Service,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo:  attendanceRepo,
		employeeRepo:    employeeRepo,
		leaveRepo:       leaveRepo,
		userRepo:        userRepo,
		notificationSvc: notificationSvc,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddDailyJob("mark_absent_employees", markAbsentHourUTC, j.MarkAbsentEmployees)
	scheduler.AddDailyJob("mark_weekend_days", markAbsentHourUTC, j.MarkWeekendDays)
	scheduler.AddDailyJob("checkout_reminder", checkoutReminderHourUTC, j.CheckoutReminder)
}

// MarkAbsentEmployees writes an absent record for every active employee who
// has no attendance record for yesterday. Weekends and approved leave days
// are skipped; the weekend job and leave approval stamp those separately.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	yesterday := time.Now().UTC().AddDate(0, 0, -1).Truncate(24 * time.Hour)

	if wd := yesterday.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return nil
	}

	slog.Info("Cron: Starting mark absent employees job", "date", yesterday.Format("2006-01-02"))

	employees, err := j.employeeRepo.GetActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to get active employees: %w", err)
	}

	approvedLeaves, err := j.leaveRepo.GetApprovedOnDate(ctx, yesterday)
	if err != nil {
		return fmt.Errorf("failed to get approved leaves: %w", err)
	}
	onLeave := make(map[string]struct{}, len(approvedLeaves))
	for _, lv := range approvedLeaves {
		onLeave[lv.EmployeeID] = struct{}{}
	}

	checkInAbsent := attendance.CheckInAbsent

	var absences []attendance.Attendance
	for _, emp := range employees {
		if _, ok := onLeave[emp.ID]; ok {
			continue
		}
		absences = append(absences, attendance.Attendance{
			EmployeeID:    emp.ID,
			Date:          yesterday,
			ShiftID:       emp.ShiftID,
			CheckInStatus: &checkInAbsent,
			DayStatus:     attendance.DayAbsent,
		})
	}

	if len(absences) == 0 {
		slog.Info("Cron: No employees to mark absent")
		return nil
	}

	inserted, err := j.attendanceRepo.BulkCreate(ctx, absences)
	if err != nil {
		return fmt.Errorf("failed to bulk create absences: %w", err)
	}

	if inserted > 0 && j.notificationSvc != nil {
		admins, _ := j.userRepo.GetAdmins(ctx)
		for _, admin := range admins {
			_ = j.notificationSvc.QueueNotification(ctx, notification.CreateNotificationRequest{
				RecipientID: admin.ID,
				Type:        notification.TypeAttendanceMarkedAbsent,
				Title:       "Employees Marked Absent",
				Message:     fmt.Sprintf("%d employees were marked absent for %s", inserted, yesterday.Format("2006-01-02")),
				Data: map[string]interface{}{
					"count": inserted,
					"date":  yesterday.Format("2006-01-02"),
				},
			})
		}
	}

	slog.Info("Cron: Marked absent employees", "count", inserted)
	return nil
}

// MarkWeekendDays writes a weekend record for every active employee when
// yesterday was a Saturday or Sunday, so reports have an explicit row.
func (j *AttendanceJobs) MarkWeekendDays(ctx context.Context) error {
	yesterday := time.Now().UTC().AddDate(0, 0, -1).Truncate(24 * time.Hour)

	if wd := yesterday.Weekday(); wd != time.Saturday && wd != time.Sunday {
		return nil
	}

	slog.Info("Cron: Starting mark weekend days job", "date", yesterday.Format("2006-01-02"))

	employees, err := j.employeeRepo.GetActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to get active employees: %w", err)
	}

	var records []attendance.Attendance
	for _, emp := range employees {
		records = append(records, attendance.Attendance{
			EmployeeID: emp.ID,
			Date:       yesterday,
			ShiftID:    emp.ShiftID,
			DayStatus:  attendance.DayWeekend,
		})
	}

	if len(records) == 0 {
		return nil
	}

	inserted, err := j.attendanceRepo.BulkCreate(ctx, records)
	if err != nil {
		return fmt.Errorf("failed to bulk create weekend records: %w", err)
	}

	slog.Info("Cron: Marked weekend days", "count", inserted)
	return nil
}

// CheckoutReminder notifies employees who checked in today but have not
// checked out yet.
func (j *AttendanceJobs) CheckoutReminder(ctx context.Context) error {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	slog.Info("Cron: Starting checkout reminder job", "date", today.Format("2006-01-02"))

	openSessions, err := j.attendanceRepo.GetOpenSessions(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to get open sessions: %w", err)
	}

	if len(openSessions) == 0 {
		slog.Info("Cron: No open sessions found")
		return nil
	}

	reminded := 0
	for _, session := range openSessions {
		emp, err := j.employeeRepo.GetByID(ctx, session.EmployeeID)
		if err != nil || emp.UserID == nil {
			continue
		}

		if j.notificationSvc != nil {
			_ = j.notificationSvc.QueueNotification(ctx, notification.CreateNotificationRequest{
				RecipientID: *emp.UserID,
				Type:        notification.TypeCheckoutReminder,
				Title:       "Don't Forget to Check Out",
				Message:     "You are still checked in for today. Remember to check out before you leave.",
				Data: map[string]interface{}{
					"attendance_id": session.ID,
					"date":          today.Format("2006-01-02"),
				},
			})
		}
		reminded++
	}

	slog.Info("Cron: Sent checkout reminders", "count", reminded)
	return nil
}
