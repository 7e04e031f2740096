package meeting

import (
	"github.com/staffledger/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// MEETING DTOs
// ========================================

type CreateSeriesRequest struct {
	Title          string   `json:"title"`
	Description    *string  `json:"description,omitempty"`
	RecurrenceType string   `json:"recurrence_type"`
	RecurrenceRule *string  `json:"recurrence_rule,omitempty"` // weekday name for weekly
	StartDate      string   `json:"start_date"`                // YYYY-MM-DD
	EndDate        string   `json:"end_date"`                  // YYYY-MM-DD
	StartTime      string   `json:"start_time"`                // HH:MM:SS
	EndTime        string   `json:"end_time"`                  // HH:MM:SS
	AttendeeIDs    []string `json:"attendee_ids,omitempty"`
}

var weekdayNames = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

func (r *CreateSeriesRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if !validator.IsInSlice(r.RecurrenceType, RecurrenceTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "recurrence_type",
			Message: "recurrence_type must be one_time, daily, weekly or monthly",
		})
	}

	if r.RecurrenceType == string(RecurrenceWeekly) {
		if r.RecurrenceRule == nil || validator.IsEmpty(*r.RecurrenceRule) {
			errs = append(errs, validator.ValidationError{
				Field:   "recurrence_rule",
				Message: "recurrence_rule is required for weekly series",
			})
		} else if !validator.IsInSlice(validator.ToLower(*r.RecurrenceRule), weekdayNames) {
			errs = append(errs, validator.ValidationError{
				Field:   "recurrence_rule",
				Message: "recurrence_rule must be a weekday name",
			})
		}
	}

	startDate, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	endDate, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if !validator.IsValidClock(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM:SS format",
		})
	}
	if !validator.IsValidClock(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM:SS format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type InstanceFilter struct {
	SeriesID  *string `json:"series_id,omitempty"`
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *InstanceFilter) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MarkAttendanceRequest struct {
	InstanceID string `json:"-"`
	EmployeeID string `json:"employee_id"`
	Attended   bool   `json:"attended"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.InstanceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "instance_id",
			Message: "instance_id is required",
		})
	}
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

type SeriesResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Description    *string `json:"description,omitempty"`
	OrganizerID    string  `json:"organizer_id"`
	RecurrenceType string  `json:"recurrence_type"`
	RecurrenceRule *string `json:"recurrence_rule,omitempty"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	InstanceCount  int     `json:"instance_count"`
	CreatedAt      string  `json:"created_at"`
}

type InstanceResponse struct {
	ID           string  `json:"id"`
	SeriesID     string  `json:"series_id"`
	Title        *string `json:"title,omitempty"`
	InstanceDate string  `json:"instance_date"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	Cancelled    bool    `json:"cancelled"`
}

type ListInstancesResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Instances  []InstanceResponse `json:"instances"`
}
