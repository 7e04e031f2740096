package attendance

import (
	"time"
)

// Attendance is one employee-day record. It is created at check-in, mutated
// at check-out, or created whole by the absence/weekend batch jobs.
type Attendance struct {
	ID             string
	EmployeeID     string
	Date           time.Time // calendar day, time part zeroed
	ShiftID        *string
	CheckInTime    *time.Time
	CheckOutTime   *time.Time
	CheckInStatus  *CheckInStatus
	CheckOutStatus *WorkStatus
	DayStatus      DayStatus
	WorkHours      *string // HH:MM:SS
	Note           *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined for responses
	EmployeeName   *string
	DepartmentName *string
}
