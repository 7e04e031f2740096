package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// The schema enforces one record per (employee_id, date); callers rely on
// that constraint to avoid duplicate day records under concurrent check-ins.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves attendance by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate retrieves attendance for a specific employee on a
	// specific date. Used to prevent double check-in. Returns nil when none.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, attendance Attendance) error

	// List retrieves attendance records with filters and pagination
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// GetMyAttendance retrieves attendance records for a specific employee
	GetMyAttendance(ctx context.Context, employeeID string, filter MyAttendanceFilter) ([]Attendance, int64, error)

	// GetOpenSessions retrieves records with a check-in but no check-out on
	// the given date, for the checkout reminder job.
	GetOpenSessions(ctx context.Context, date time.Time) ([]Attendance, error)

	// BulkCreate inserts batch-produced records (absence/weekend marking),
	// skipping employee-days that already have one.
	BulkCreate(ctx context.Context, attendances []Attendance) (int, error)

	// SetDayStatusRange stamps day_status over a date range for an employee,
	// creating records where missing. Used by leave approval.
	SetDayStatusRange(ctx context.Context, employeeID string, from, to time.Time, status DayStatus) error
}
