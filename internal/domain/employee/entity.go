package employee

import "time"

type EmploymentStatus string

const (
	StatusActive   EmploymentStatus = "active"
	StatusInactive EmploymentStatus = "inactive"
)

type Employee struct {
	ID           string
	UserID       *string
	FullName     string
	Email        string
	Phone        *string
	Position     *string
	DepartmentID *string
	ShiftID      *string
	Status       EmploymentStatus
	JoinDate     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time

	// Joined for responses
	DepartmentName *string
	ShiftName      *string
}
