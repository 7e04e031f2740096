package leave

import (
	"context"
)

// LeaveService defines business logic for leave requests
type LeaveService interface {
	// RequestLeave files a new leave request for an employee
	RequestLeave(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)

	// ApproveLeave approves a pending request and stamps the attendance
	// records in its range with day_status = leave
	ApproveLeave(ctx context.Context, req DecideLeaveRequest) (LeaveResponse, error)

	// RejectLeave rejects a pending request
	RejectLeave(ctx context.Context, req DecideLeaveRequest) (LeaveResponse, error)

	GetLeave(ctx context.Context, id string) (LeaveResponse, error)
	ListLeaves(ctx context.Context, filter LeaveFilter) (ListLeaveResponse, error)
}
