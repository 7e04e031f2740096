package shift

import (
	"github.com/staffledger/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// SHIFT DTOs
// ========================================

type CreateShiftRequest struct {
	Name                       string  `json:"name"`
	StartTime                  string  `json:"start_time"` // HH:MM:SS
	EndTime                    string  `json:"end_time"`   // HH:MM:SS
	GraceMinutes               int     `json:"grace_minutes"`
	HalfDayHours               float64 `json:"half_day_hours"`
	EarlyLeaveThresholdMinutes int     `json:"early_leave_threshold_minutes"`
	BreakDurationMinutes       int     `json:"break_duration_minutes"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
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

	if r.GraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_minutes",
			Message: "grace_minutes must not be negative",
		})
	}
	if r.HalfDayHours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "half_day_hours",
			Message: "half_day_hours must be positive",
		})
	}
	if r.EarlyLeaveThresholdMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "early_leave_threshold_minutes",
			Message: "early_leave_threshold_minutes must not be negative",
		})
	}
	if r.BreakDurationMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_duration_minutes",
			Message: "break_duration_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateShiftRequest struct {
	ID                         string   `json:"-"`
	Name                       *string  `json:"name,omitempty"`
	StartTime                  *string  `json:"start_time,omitempty"`
	EndTime                    *string  `json:"end_time,omitempty"`
	GraceMinutes               *int     `json:"grace_minutes,omitempty"`
	HalfDayHours               *float64 `json:"half_day_hours,omitempty"`
	EarlyLeaveThresholdMinutes *int     `json:"early_leave_threshold_minutes,omitempty"`
	BreakDurationMinutes       *int     `json:"break_duration_minutes,omitempty"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.StartTime != nil && !validator.IsValidClock(*r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM:SS format",
		})
	}
	if r.EndTime != nil && !validator.IsValidClock(*r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM:SS format",
		})
	}
	if r.GraceMinutes != nil && *r.GraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_minutes",
			Message: "grace_minutes must not be negative",
		})
	}
	if r.HalfDayHours != nil && *r.HalfDayHours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "half_day_hours",
			Message: "half_day_hours must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ShiftResponse struct {
	ID                         string  `json:"id"`
	Name                       string  `json:"name"`
	StartTime                  string  `json:"start_time"`
	EndTime                    string  `json:"end_time"`
	GraceMinutes               int     `json:"grace_minutes"`
	HalfDayHours               float64 `json:"half_day_hours"`
	EarlyLeaveThresholdMinutes int     `json:"early_leave_threshold_minutes"`
	BreakDurationMinutes       int     `json:"break_duration_minutes"`
	CreatedAt                  string  `json:"created_at"`
	UpdatedAt                  string  `json:"updated_at"`
}
