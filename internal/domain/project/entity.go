package project

import "time"

type ProjectStatus string

const (
	StatusPlanned   ProjectStatus = "planned"
	StatusActive    ProjectStatus = "active"
	StatusOnHold    ProjectStatus = "on_hold"
	StatusCompleted ProjectStatus = "completed"
)

var ProjectStatusValues = []string{
	string(StatusPlanned),
	string(StatusActive),
	string(StatusOnHold),
	string(StatusCompleted),
}

type Project struct {
	ID          string
	Name        string
	Description *string
	Status      ProjectStatus
	LeadID      *string
	StartDate   *time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time

	// Joined for responses
	MemberCount *int
}

// Member links an employee to a project.
type Member struct {
	ID         string
	ProjectID  string
	EmployeeID string
	Role       *string
	CreatedAt  time.Time

	// Joined for responses
	EmployeeName *string
}
