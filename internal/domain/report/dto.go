package report

import (
	"github.com/staffledger/attendance-backend-go/internal/pkg/validator"
)

// SummaryFilter selects the employees and date range of a report.
type SummaryFilter struct {
	EmployeeID   *string `json:"employee_id,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	StartDate    string  `json:"start_date"` // YYYY-MM-DD
	EndDate      string  `json:"end_date"`   // YYYY-MM-DD
}

func (f *SummaryFilter) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(f.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(f.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EmployeeSummary aggregates one employee's day statuses over the range.
type EmployeeSummary struct {
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name"`
	DepartmentName *string `json:"department_name,omitempty"`
	PresentDays    int     `json:"present_days"`
	AbsentDays     int     `json:"absent_days"`
	HalfDays       int     `json:"half_days"`
	EarlyLeaveDays int     `json:"early_leave_days"`
	LeaveDays      int     `json:"leave_days"`
	LateCheckIns   int     `json:"late_check_ins"`
	TotalWorkHours string  `json:"total_work_hours"` // HH:MM:SS
}

type SummaryResponse struct {
	StartDate string            `json:"start_date"`
	EndDate   string            `json:"end_date"`
	Employees []EmployeeSummary `json:"employees"`
}
