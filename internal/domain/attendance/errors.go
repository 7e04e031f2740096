package attendance

import "errors"

// Attendance domain errors
var (
	// Core classification errors
	ErrInvalidFormat = errors.New("invalid timestamp format")
	ErrInvalidRange  = errors.New("check-out before check-in")
	ErrMissingInput  = errors.New("missing classification input")

	// Check-in / check-out errors
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrAlreadyCheckedOut = errors.New("already checked out today")
	ErrNotCheckedIn      = errors.New("no open check-in found")
	ErrNoShiftAssigned   = errors.New("no shift assigned for this employee")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
