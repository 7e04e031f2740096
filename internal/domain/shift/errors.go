package shift

import "errors"

// Shift domain errors
var (
	ErrShiftNotFound   = errors.New("shift not found")
	ErrShiftNameExists = errors.New("shift name already exists")
	ErrShiftInUse      = errors.New("shift is assigned to employees and cannot be deleted")
)
