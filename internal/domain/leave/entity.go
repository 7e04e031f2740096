package leave

import "time"

type LeaveType string

const (
	TypeAnnual LeaveType = "annual"
	TypeSick   LeaveType = "sick"
	TypeUnpaid LeaveType = "unpaid"
)

var LeaveTypeValues = []string{
	string(TypeAnnual),
	string(TypeSick),
	string(TypeUnpaid),
}

type LeaveStatus string

const (
	StatusPending  LeaveStatus = "pending"
	StatusApproved LeaveStatus = "approved"
	StatusRejected LeaveStatus = "rejected"
)

type LeaveRequest struct {
	ID         string
	EmployeeID string
	Type       LeaveType
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     LeaveStatus
	DecidedBy  *string
	DecidedAt  *time.Time
	Note       *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined for responses
	EmployeeName  *string
	EmployeeEmail *string
}
