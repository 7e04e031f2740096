package attendance

import (
	"github.com/staffledger/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	EmployeeID string  `json:"employee_id"`
	Note       *string `json:"note,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	EmployeeID string  `json:"employee_id"`
	Note       *string `json:"note,omitempty"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ManualUpdateRequest lets an admin fix an attendance record. Statuses are
// re-resolved after the update.
type ManualUpdateRequest struct {
	ID             string  `json:"-"`
	Date           *string `json:"date,omitempty"`           // YYYY-MM-DD
	CheckInTime    *string `json:"check_in_time,omitempty"`  // HH:MM:SS or full timestamp
	CheckOutTime   *string `json:"check_out_time,omitempty"` // HH:MM:SS or full timestamp
	CheckInStatus  *string `json:"check_in_status,omitempty"`
	CheckOutStatus *string `json:"check_out_status,omitempty"`
	DayStatus      *string `json:"day_status,omitempty"`
	Note           *string `json:"note,omitempty"`
}

var (
	checkInStatusValues = []string{
		string(CheckInOnTime), string(CheckInLate), string(CheckInManual), string(CheckInAbsent),
	}
	workStatusValues = []string{
		string(WorkEarlyLeave), string(WorkHalfDay), string(WorkEarlyGo),
		string(WorkOnTime), string(WorkOvertime), string(WorkManual),
	}
	dayStatusValues = []string{
		string(DayPresent), string(DayAbsent), string(DayHalfDay), string(DayEarlyLeave),
		string(DayManualPresent), string(DayLeave), string(DayHoliday), string(DayWeekend),
		string(DayWorkFromHome),
	}
)

func (r *ManualUpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Date != nil && *r.Date != "" {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.CheckInStatus != nil && !validator.IsInSlice(*r.CheckInStatus, checkInStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in_status",
			Message: "invalid check-in status",
		})
	}

	if r.CheckOutStatus != nil && !validator.IsInSlice(*r.CheckOutStatus, workStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out_status",
			Message: "invalid check-out status",
		})
	}

	if r.DayStatus != nil && !validator.IsInSlice(*r.DayStatus, dayStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "day_status",
			Message: "invalid day status",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name"`
	DepartmentName *string `json:"department_name,omitempty"`
	Date           string  `json:"date"`
	CheckInTime    *string `json:"check_in_time,omitempty"`
	CheckOutTime   *string `json:"check_out_time,omitempty"`
	CheckInStatus  *string `json:"check_in_status,omitempty"`
	CheckOutStatus *string `json:"check_out_status,omitempty"`
	DayStatus      string  `json:"day_status"`
	WorkHours      *string `json:"work_hours,omitempty"`
	Note           *string `json:"note,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

type AttendanceFilter struct {
	// Search & Filter
	EmployeeID   *string `json:"employee_id,omitempty"`
	EmployeeName *string `json:"employee_name,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	Date         *string `json:"date,omitempty"`       // YYYY-MM-DD
	StartDate    *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate      *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	DayStatus    *string `json:"day_status,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`    // date, employee_name, check_in_time, day_status
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		f.Limit = 100
	}

	for field, v := range map[string]*string{"date": f.Date, "start_date": f.StartDate, "end_date": f.EndDate} {
		if v != nil && *v != "" {
			if _, ok := validator.IsValidDate(*v); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: field + " must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if f.DayStatus != nil && *f.DayStatus != "" && !validator.IsInSlice(*f.DayStatus, dayStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "day_status",
			Message: "invalid day status",
		})
	}

	validSortBy := []string{"", "date", "employee_name", "check_in_time", "day_status"}
	if !validator.IsInSlice(f.SortBy, validSortBy) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_by",
			Message: "invalid sort_by field",
		})
	}
	if f.SortBy == "" {
		f.SortBy = "date"
	}

	if f.SortOrder != "" && f.SortOrder != "asc" && f.SortOrder != "desc" {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_order",
			Message: "sort_order must be asc or desc",
		})
	}
	if f.SortOrder == "" {
		f.SortOrder = "desc"
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MyAttendanceFilter struct {
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	DayStatus *string `json:"day_status,omitempty"`
	Page      int     `json:"page"`
	Limit     int     `json:"limit"`
}

func (f *MyAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		f.Limit = 100
	}

	for field, v := range map[string]*string{"start_date": f.StartDate, "end_date": f.EndDate} {
		if v != nil && *v != "" {
			if _, ok := validator.IsValidDate(*v); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: field + " must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if f.DayStatus != nil && *f.DayStatus != "" && !validator.IsInSlice(*f.DayStatus, dayStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "day_status",
			Message: "invalid day status",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Showing     string               `json:"showing"`
	Attendances []AttendanceResponse `json:"attendances"`
}
