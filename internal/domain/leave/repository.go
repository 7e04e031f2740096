package leave

import (
	"context"
	"time"
)

// LeaveRepository defines data access methods for leave requests.
type LeaveRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter LeaveFilter) ([]LeaveRequest, int64, error)
	Update(ctx context.Context, req LeaveRequest) error

	// HasOverlap reports whether the employee already has a pending or
	// approved request intersecting [start, end].
	HasOverlap(ctx context.Context, employeeID string, start, end time.Time) (bool, error)

	// GetApprovedOnDate retrieves approved leaves covering a calendar day,
	// so the absence-marking job can skip employees on leave.
	GetApprovedOnDate(ctx context.Context, date time.Time) ([]LeaveRequest, error)
}
