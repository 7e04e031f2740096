package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/staffledger/attendance-backend-go/internal/domain/attendance"
	"github.com/staffledger/attendance-backend-go/internal/domain/notification"
	"github.com/staffledger/attendance-backend-go/internal/domain/shift"
)

type AttendanceServiceImpl struct {
	attendanceRepo  attendance.AttendanceRepository
	shiftRepo       shift.ShiftRepository
	notificationSvc notification.Service

	// now is swappable for tests
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	shiftRepo shift.ShiftRepository,
	notificationSvc notification.Service,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo:  attendanceRepo,
		shiftRepo:       shiftRepo,
		notificationSvc: notificationSvc,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.now()
	today := now.Truncate(24 * time.Hour)

	existing, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	if existing != nil && existing.CheckInTime != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	assignedShift, err := a.shiftRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNoShiftAssigned
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get shift: %w", err)
	}

	// Anchor the shift's start clock onto today's date
	shiftStart := time.Date(today.Year(), today.Month(), today.Day(),
		assignedShift.StartTime.Hour(), assignedShift.StartTime.Minute(), assignedShift.StartTime.Second(),
		0, time.UTC)

	status := attendance.ClassifyCheckIn(now, shiftStart, assignedShift.GraceMinutes)

	record := attendance.Attendance{
		EmployeeID:    req.EmployeeID,
		Date:          today,
		ShiftID:       &assignedShift.ID,
		CheckInTime:   &now,
		CheckInStatus: &status,
		DayStatus:     attendance.DayPresent,
		Note:          req.Note,
	}

	if existing != nil {
		// The batch jobs may have pre-created a weekend/absent row
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
		if err := a.attendanceRepo.Update(ctx, record); err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
		}
	} else {
		record, err = a.attendanceRepo.Create(ctx, record)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance: %w", err)
		}
	}

	a.notifyAttendance(ctx, notification.TypeAttendanceCheckIn, "Checked In",
		fmt.Sprintf("Check-in recorded at %s (%s)", now.Format("15:04:05"), status), record)

	return mapAttendanceToResponse(record), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.now()
	today := now.Truncate(24 * time.Hour)

	record, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	if record == nil || record.CheckInTime == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if record.CheckOutTime != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	result, err := attendance.ClassifyWork(*record.CheckInTime, now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	inStatus := attendance.CheckInOnTime
	if record.CheckInStatus != nil {
		inStatus = *record.CheckInStatus
	}

	dayStatus, err := attendance.ResolveDayStatus(inStatus, result.Status, result.WorkedHours)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record.CheckOutTime = &now
	record.CheckOutStatus = &result.Status
	record.WorkHours = &result.WorkHours
	record.DayStatus = dayStatus
	if req.Note != nil {
		record.Note = req.Note
	}

	if err := a.attendanceRepo.Update(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	a.notifyAttendance(ctx, notification.TypeAttendanceCheckOut, "Checked Out",
		fmt.Sprintf("Check-out recorded at %s, worked %s (%s)", now.Format("15:04:05"), result.WorkHours, dayStatus), *record)

	return mapAttendanceToResponse(*record), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	records, total, err := a.attendanceRepo.GetMyAttendance(ctx, employeeID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	return buildListResponse(records, total, filter.Page, filter.Limit), nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := a.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	return buildListResponse(records, total, filter.Page, filter.Limit), nil
}

// GetAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	record, err := a.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(record), nil
}

// ManualUpdate implements attendance.AttendanceService.
// Lets an admin fix wrong times or override statuses; explicitly provided
// statuses win over recomputation.
func (a *AttendanceServiceImpl) ManualUpdate(ctx context.Context, req attendance.ManualUpdateRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := a.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.Date != nil && *req.Date != "" {
		parsed, _ := time.Parse("2006-01-02", *req.Date)
		record.Date = parsed
	}

	if req.CheckInTime != nil && *req.CheckInTime != "" {
		checkIn, err := parseTimeOnDate(*req.CheckInTime, record.Date)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		record.CheckInTime = &checkIn
	}
	if req.CheckOutTime != nil && *req.CheckOutTime != "" {
		checkOut, err := parseTimeOnDate(*req.CheckOutTime, record.Date)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		record.CheckOutTime = &checkOut
	}

	// Recompute from the corrected times, then let explicit overrides win
	if record.CheckInTime != nil && record.CheckOutTime != nil {
		result, err := attendance.ClassifyWork(*record.CheckInTime, *record.CheckOutTime)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		record.CheckOutStatus = &result.Status
		record.WorkHours = &result.WorkHours

		inStatus := attendance.CheckInManual
		if record.CheckInStatus != nil {
			inStatus = *record.CheckInStatus
		}
		dayStatus, err := attendance.ResolveDayStatus(inStatus, result.Status, result.WorkedHours)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		record.DayStatus = dayStatus
	}

	if req.CheckInStatus != nil {
		status := attendance.CheckInStatus(*req.CheckInStatus)
		record.CheckInStatus = &status
	}
	if req.CheckOutStatus != nil {
		status := attendance.WorkStatus(*req.CheckOutStatus)
		record.CheckOutStatus = &status
	}
	if req.DayStatus != nil {
		record.DayStatus = attendance.DayStatus(*req.DayStatus)
	}
	if req.Note != nil {
		record.Note = req.Note
	}

	if err := a.attendanceRepo.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return mapAttendanceToResponse(record), nil
}

// parseTimeOnDate accepts either a full timestamp or a bare HH:MM:SS clock,
// anchoring the latter on the record's date.
func parseTimeOnDate(s string, date time.Time) (time.Time, error) {
	if t, err := attendance.ParseTimestamp(s); err == nil {
		return t, nil
	}
	clock, err := attendance.ParseClock(s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, time.UTC), nil
}

func (a *AttendanceServiceImpl) notifyAttendance(ctx context.Context, notifType notification.NotificationType, title, message string, record attendance.Attendance) {
	if a.notificationSvc == nil {
		return
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return
	}

	_ = a.notificationSvc.QueueNotification(ctx, notification.CreateNotificationRequest{
		RecipientID: userID,
		Type:        notifType,
		Title:       title,
		Message:     message,
		Data: map[string]interface{}{
			"attendance_id": record.ID,
			"date":          record.Date.Format("2006-01-02"),
			"day_status":    string(record.DayStatus),
		},
	})
}

func buildListResponse(records []attendance.Attendance, total int64, page, limit int) attendance.ListAttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, mapAttendanceToResponse(record))
	}

	if limit == 0 {
		limit = 20
	}
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	showing := fmt.Sprintf("%d-%d of %d", (page-1)*limit+1, min(page*limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
		Showing:     showing,
		Attendances: responses,
	}
}

// mapAttendanceToResponse converts an Attendance entity to AttendanceResponse
func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	var employeeName string
	if att.EmployeeName != nil {
		employeeName = *att.EmployeeName
	}

	var checkInStatus, checkOutStatus *string
	if att.CheckInStatus != nil {
		s := string(*att.CheckInStatus)
		checkInStatus = &s
	}
	if att.CheckOutStatus != nil {
		s := string(*att.CheckOutStatus)
		checkOutStatus = &s
	}

	return attendance.AttendanceResponse{
		ID:             att.ID,
		EmployeeID:     att.EmployeeID,
		EmployeeName:   employeeName,
		DepartmentName: att.DepartmentName,
		Date:           att.Date.Format("2006-01-02"),
		CheckInTime:    timePtrToString(att.CheckInTime),
		CheckOutTime:   timePtrToString(att.CheckOutTime),
		CheckInStatus:  checkInStatus,
		CheckOutStatus: checkOutStatus,
		DayStatus:      string(att.DayStatus),
		WorkHours:      att.WorkHours,
		Note:           att.Note,
		CreatedAt:      att.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:      att.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
