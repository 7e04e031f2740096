package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn records a check-in and classifies it against the shift start
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut closes the open session, classifies the worked duration and
	// resolves the overall day status
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// GetMyAttendance retrieves attendance records for the authenticated employee
	GetMyAttendance(ctx context.Context, filter MyAttendanceFilter) (ListAttendanceResponse, error)

	// ListAttendance retrieves attendance records with filters (admin)
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// GetAttendance retrieves a single attendance record by ID
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)

	// ManualUpdate fixes an attendance record (admin) and re-resolves statuses
	ManualUpdate(ctx context.Context, req ManualUpdateRequest) (AttendanceResponse, error)
}
